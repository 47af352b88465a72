// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classController "sekolahku_backend/internals/features/school/academics/classes/controller"
	peopleController "sekolahku_backend/internals/features/school/academics/people/controller"
	scheduleController "sekolahku_backend/internals/features/school/academics/schedules/controller"
	subjectController "sekolahku_backend/internals/features/school/academics/subjects/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
)

func AcademicRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	subjects := subjectController.NewSubjectController(db)
	classes := classController.NewClassController(db)
	people := peopleController.NewPeopleController(db)
	schedules := scheduleController.NewScheduleController(db)

	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("academics"), constants.AdminTier...)
	teacherUp := authMiddleware.OnlyRoles(constants.RoleErrorTeacher("academics"), constants.TeacherAndAbove...)

	// ---- read side (teacher and up) ----
	user.Get("/subjects", teacherUp, subjects.ListSubjects)
	user.Get("/subjects/:id", teacherUp, subjects.GetSubject)
	user.Get("/classes", teacherUp, classes.ListClasses)
	user.Get("/classes/:id/subjects", teacherUp, classes.ListClassSubjects)
	user.Get("/teachers", teacherUp, people.ListTeachers)
	user.Get("/students", teacherUp, people.ListStudents)
	user.Get("/calendar-entries", teacherUp, schedules.ListCalendarEntries)
	user.Get("/exam-schedules", teacherUp, schedules.ListExamSchedules)
	user.Get("/exam-slots", teacherUp, schedules.ListExamSlots)

	// ---- master data (admin) ----
	admin.Post("/subjects", adminOnly, subjects.CreateSubject)
	admin.Post("/classes", adminOnly, classes.CreateClass)
	admin.Post("/classes/:id/subjects", adminOnly, classes.AssignSubject)
	admin.Post("/teachers", adminOnly, people.CreateTeacher)
	admin.Post("/students", adminOnly, people.CreateStudent)
	admin.Post("/calendar-entries", adminOnly, schedules.CreateCalendarEntry)
	admin.Post("/exam-schedules", adminOnly, schedules.CreateExamSchedule)
	admin.Post("/exam-slots", adminOnly, schedules.CreateExamSlot)
}
