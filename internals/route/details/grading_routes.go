// file: internals/route/details/grading_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	auditService "sekolahku_backend/internals/features/school/audit/service"
	permController "sekolahku_backend/internals/features/school/grading/permissions/controller"
	resultController "sekolahku_backend/internals/features/school/grading/results/controller"
	scaleController "sekolahku_backend/internals/features/school/grading/scales/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func GradingRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	audit := auditService.NewRecorder(db)

	scales := scaleController.NewGradingScaleController(db)
	permissions := permController.NewGradingPermissionController(db)
	results := resultController.NewExamResultController(db, audit)
	views := resultController.NewGradingViewController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("grading"), constants.AdminTier...)
	teacherUp := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("grading"), constants.TeacherAndAbove...)

	// ---- grading scales ----
	user.Get("/grading-scales", teacherUp, scales.ListScales)
	user.Get("/grading-scales/default", teacherUp, scales.GetDefaultScale)
	user.Get("/grading-scales/:id", teacherUp, scales.GetScale)
	admin.Post("/grading-scales", adminOnly, scales.CreateScale)

	// ---- grading permissions ----
	admin.Post("/grading-permissions", adminOnly, permissions.UpsertPermission)
	admin.Get("/grading-permissions", adminOnly, permissions.ListPermissions)

	// ---- exam results ----
	user.Post("/exam-results", teacherUp, results.CreateResult)
	user.Put("/exam-results/:id", teacherUp, results.UpdateResult)
	user.Post("/exam-results/bulk", teacherUp, results.BulkGrade)
	user.Post("/exam-results/grid", teacherUp, results.GridGrade)
	admin.Post("/exam-results/publish", adminOnly, results.PublishResults)

	// ---- read-only grading views ----
	user.Get("/grading/grid", teacherUp, views.ClassGrid)
	user.Get("/grading/grid/slot", teacherUp, views.SubjectGrid)
	user.Get("/grading/subjects/:id/grid", teacherUp, views.SubjectOverview)
	user.Get("/grading/students/:id/history", teacherUp, views.StudentHistory)
}
