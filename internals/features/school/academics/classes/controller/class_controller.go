// file: internals/features/school/academics/classes/controller/class_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

type createClassRequest struct {
	Name         string `json:"class_name" validate:"required,min=1,max=120"`
	AcademicYear string `json:"class_academic_year" validate:"required,min=4,max=20"`
}

// POST /api/a/classes
func (h *ClassController) CreateClass(c *fiber.Ctx) error {
	var req createClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.AcademicYear = strings.TrimSpace(req.AcademicYear)
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := classModel.ClassModel{
		ClassName:         req.Name,
		ClassAcademicYear: req.AcademicYear,
		ClassIsActive:     true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", m)
}

// GET /api/u/classes?academic_year=
func (h *ClassController) ListClasses(c *fiber.Ctx) error {
	q := h.DB.Model(&classModel.ClassModel{}).
		Where("class_is_active = true").
		Order("class_name ASC")
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("class_academic_year = ?", year)
	}
	var classes []classModel.ClassModel
	if err := q.Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list classes")
	}
	return helper.JsonList(c, "Classes", classes, nil)
}

type assignSubjectRequest struct {
	SubjectID uuid.UUID  `json:"class_subject_subject_id" validate:"required"`
	TeacherID *uuid.UUID `json:"class_subject_teacher_id"`
}

// POST /api/a/classes/:id/subjects
// Assigns a subject (and optionally its teacher) to the class roster. The
// roster assignment is what implicitly lets the teacher grade the pair.
func (h *ClassController) AssignSubject(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var req assignSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := classModel.ClassSubjectModel{
		ClassSubjectClassID:   classID,
		ClassSubjectSubjectID: req.SubjectID,
		ClassSubjectTeacherID: req.TeacherID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Subject already assigned to this class")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign subject")
	}
	return helper.JsonCreated(c, "Subject assigned to class", m)
}

// GET /api/u/classes/:id/subjects
func (h *ClassController) ListClassSubjects(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var rows []classModel.ClassSubjectModel
	if err := h.DB.Where("class_subject_class_id = ?", classID).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list class subjects")
	}
	return helper.JsonList(c, "Class subjects", rows, nil)
}
