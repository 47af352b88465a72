// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

type createSubjectRequest struct {
	Name      string  `json:"subject_name" validate:"required,min=1,max=120"`
	Code      string  `json:"subject_code" validate:"required,min=1,max=20"`
	MaxMarks  float64 `json:"subject_max_marks" validate:"gt=0"`
	PassMarks float64 `json:"subject_pass_marks" validate:"min=0"`
}

// POST /api/a/subjects
func (h *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req createSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := subjectModel.SubjectModel{
		SubjectName:      req.Name,
		SubjectCode:      req.Code,
		SubjectMaxMarks:  req.MaxMarks,
		SubjectPassMarks: req.PassMarks,
		SubjectIsActive:  true,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", m)
}

// GET /api/u/subjects
func (h *SubjectController) ListSubjects(c *fiber.Ctx) error {
	q := h.DB.Model(&subjectModel.SubjectModel{}).Order("subject_name ASC")
	if c.QueryBool("active_only", true) {
		q = q.Where("subject_is_active = true")
	}
	var subjects []subjectModel.SubjectModel
	if err := q.Find(&subjects).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subjects")
	}
	return helper.JsonList(c, "Subjects", subjects, nil)
}

// GET /api/u/subjects/:id
func (h *SubjectController) GetSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var m subjectModel.SubjectModel
	if err := h.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subject")
	}
	return helper.JsonOK(c, "Subject detail", m)
}
