// file: internals/features/school/academics/people/controller/people_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	peopleModel "sekolahku_backend/internals/features/school/academics/people/model"
	helper "sekolahku_backend/internals/helpers"
)

type PeopleController struct {
	DB *gorm.DB
}

func NewPeopleController(db *gorm.DB) *PeopleController {
	return &PeopleController{DB: db}
}

/* =========================================================
   Teachers
   ========================================================= */

type createTeacherRequest struct {
	UserID uuid.UUID `json:"teacher_user_id" validate:"required"`
	Name   string    `json:"teacher_name" validate:"required,min=1,max=120"`
}

// POST /api/a/teachers
func (h *PeopleController) CreateTeacher(c *fiber.Ctx) error {
	var req createTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := peopleModel.TeacherModel{
		TeacherUserID:   req.UserID,
		TeacherName:     req.Name,
		TeacherIsActive: true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "User already has a teacher profile")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.JsonCreated(c, "Teacher created", m)
}

// GET /api/u/teachers
func (h *PeopleController) ListTeachers(c *fiber.Ctx) error {
	var teachers []peopleModel.TeacherModel
	if err := h.DB.Where("teacher_is_active = true").
		Order("teacher_name ASC").
		Find(&teachers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list teachers")
	}
	return helper.JsonList(c, "Teachers", teachers, nil)
}

/* =========================================================
   Students
   ========================================================= */

type createStudentRequest struct {
	Name    string     `json:"student_name" validate:"required,min=1,max=120"`
	RollNo  string     `json:"student_roll_no" validate:"required,min=1,max=20"`
	ClassID *uuid.UUID `json:"student_class_id"`
}

// POST /api/a/students
func (h *PeopleController) CreateStudent(c *fiber.Ctx) error {
	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.RollNo = strings.TrimSpace(req.RollNo)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := peopleModel.StudentModel{
		StudentName:     req.Name,
		StudentRollNo:   req.RollNo,
		StudentClassID:  req.ClassID,
		StudentIsActive: true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", m)
}

// GET /api/u/students?class_id=
func (h *PeopleController) ListStudents(c *fiber.Ctx) error {
	q := h.DB.Model(&peopleModel.StudentModel{}).
		Where("student_is_active = true").
		Order("student_roll_no ASC, student_name ASC")
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("student_class_id = ?", classID)
	}
	var students []peopleModel.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list students")
	}
	return helper.JsonList(c, "Students", students, nil)
}
