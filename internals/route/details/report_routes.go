// file: internals/route/details/report_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	reportController "sekolahku_backend/internals/features/school/reports/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func ReportRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	reports := reportController.NewReportController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("reports"), constants.AdminTier...)
	teacherUp := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("reports"), constants.TeacherAndAbove...)

	user.Get("/reports/students/:id", teacherUp, reports.StudentReport)
	user.Get("/reports/students/:id/download", teacherUp, reports.DownloadStudentReport)
	admin.Get("/reports/classes/:id/download", adminOnly, reports.DownloadClassReports)
}
