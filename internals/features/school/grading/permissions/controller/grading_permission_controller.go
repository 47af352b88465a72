// file: internals/features/school/grading/permissions/controller/grading_permission_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	permDTO "sekolahku_backend/internals/features/school/grading/permissions/dto"
	permModel "sekolahku_backend/internals/features/school/grading/permissions/model"
	helper "sekolahku_backend/internals/helpers"
)

type GradingPermissionController struct {
	DB *gorm.DB
}

func NewGradingPermissionController(db *gorm.DB) *GradingPermissionController {
	return &GradingPermissionController{DB: db}
}

// UPSERT (create or update the triple's grant)
// POST /api/a/grading-permissions
func (h *GradingPermissionController) UpsertPermission(c *fiber.Ctx) error {
	var req permDTO.UpsertGradingPermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var out permModel.GradingPermissionModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing permModel.GradingPermissionModel
		err := tx.First(&existing,
			"grading_permission_teacher_id = ? AND grading_permission_subject_id = ? AND grading_permission_class_id = ?",
			req.TeacherID, req.SubjectID, req.ClassID).Error
		switch {
		case err == nil:
			existing.GradingPermissionCanGrade = req.CanGrade
			existing.GradingPermissionCanModify = req.CanModify
			if err := tx.Model(&permModel.GradingPermissionModel{}).
				Where("grading_permission_id = ?", existing.GradingPermissionID).
				Updates(map[string]any{
					"grading_permission_can_grade":  req.CanGrade,
					"grading_permission_can_modify": req.CanModify,
				}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update grading permission")
			}
			out = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			m := req.ToModel()
			if err := tx.Create(&m).Error; err != nil {
				msg := strings.ToLower(err.Error())
				if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
					return fiber.NewError(fiber.StatusConflict, "Permission for this teacher/subject/class already exists")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create grading permission")
			}
			out = m
			return nil
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load grading permission")
		}
	}); err != nil {
		return err
	}

	return helper.JsonOK(c, "Grading permission saved", permDTO.FromGradingPermissionModel(out))
}

// LIST
// GET /api/a/grading-permissions?teacher_id=&class_id=&subject_id=
func (h *GradingPermissionController) ListPermissions(c *fiber.Ctx) error {
	tx := h.DB.Model(&permModel.GradingPermissionModel{})

	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid teacher_id")
		}
		tx = tx.Where("grading_permission_teacher_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid class_id")
		}
		tx = tx.Where("grading_permission_class_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("subject_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid subject_id")
		}
		tx = tx.Where("grading_permission_subject_id = ?", id)
	}

	var rows []permModel.GradingPermissionModel
	if err := tx.Order("grading_permission_updated_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list grading permissions")
	}
	return helper.JsonList(c, "Grading permissions", permDTO.FromGradingPermissionModels(rows), nil)
}
