// file: internals/features/school/grading/scales/service/scale_registry.go
package service

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

// ScaleRegistry owns creation and lookup of grading scales.
type ScaleRegistry struct {
	DB *gorm.DB
}

func NewScaleRegistry(db *gorm.DB) *ScaleRegistry {
	return &ScaleRegistry{DB: db}
}

// Create validates the definitions and persists scale + bands in one
// transaction. When the new scale is marked default, the previous default of
// the same academic year is cleared so the per-year lookup stays unambiguous.
func (r *ScaleRegistry) Create(scale scaleModel.GradingScaleModel, defs []scaleModel.GradeDefinitionModel) (*scaleModel.GradingScaleModel, error) {
	if err := ValidateGradeDefinitions(defs); err != nil {
		return nil, err
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if scale.GradingScaleIsDefault {
			if err := tx.Model(&scaleModel.GradingScaleModel{}).
				Where("grading_scale_academic_year = ? AND grading_scale_is_default = TRUE AND grading_scale_deleted_at IS NULL",
					scale.GradingScaleAcademicYear).
				Update("grading_scale_is_default", false).Error; err != nil {
				log.Printf("[ScaleRegistry] ERROR clear previous default year=%s err=%v", scale.GradingScaleAcademicYear, err)
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear previous default scale")
			}
		}

		if err := tx.Create(&scale).Error; err != nil {
			log.Printf("[ScaleRegistry] ERROR create scale err=%v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create grading scale")
		}

		for i := range defs {
			defs[i].GradeDefinitionScaleID = scale.GradingScaleID
			defs[i].GradeDefinitionLabel = strings.TrimSpace(defs[i].GradeDefinitionLabel)
		}
		if err := tx.Create(&defs).Error; err != nil {
			log.Printf("[ScaleRegistry] ERROR create definitions scale=%s err=%v", scale.GradingScaleID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create grade definitions")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortDefinitions(defs)
	scale.GradingScaleDefinitions = defs
	return &scale, nil
}

// GetByID loads a scale with its bands ordered by min marks.
func (r *ScaleRegistry) GetByID(id uuid.UUID) (*scaleModel.GradingScaleModel, error) {
	var scale scaleModel.GradingScaleModel
	if err := r.DB.
		Preload("GradingScaleDefinitions", func(db *gorm.DB) *gorm.DB {
			return db.Order("grade_definition_min_marks ASC")
		}).
		First(&scale, "grading_scale_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Grading scale not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load grading scale")
	}
	return &scale, nil
}

// List returns scales, optionally filtered by academic year.
func (r *ScaleRegistry) List(academicYear string) ([]scaleModel.GradingScaleModel, error) {
	tx := r.DB.Model(&scaleModel.GradingScaleModel{}).
		Preload("GradingScaleDefinitions", func(db *gorm.DB) *gorm.DB {
			return db.Order("grade_definition_min_marks ASC")
		})
	if y := strings.TrimSpace(academicYear); y != "" {
		tx = tx.Where("grading_scale_academic_year = ?", y)
	}

	var scales []scaleModel.GradingScaleModel
	if err := tx.Order("grading_scale_created_at DESC").Find(&scales).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list grading scales")
	}
	return scales, nil
}

// DefaultForYear returns the default scale of an academic year, or nil when
// none is configured (results are then stored with an unresolved grade).
func (r *ScaleRegistry) DefaultForYear(academicYear string) (*scaleModel.GradingScaleModel, error) {
	var scale scaleModel.GradingScaleModel
	err := r.DB.
		Preload("GradingScaleDefinitions", func(db *gorm.DB) *gorm.DB {
			return db.Order("grade_definition_min_marks ASC")
		}).
		Where("grading_scale_academic_year = ? AND grading_scale_is_default = TRUE", strings.TrimSpace(academicYear)).
		First(&scale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load default grading scale")
	}
	return &scale, nil
}

func sortDefinitions(defs []scaleModel.GradeDefinitionModel) {
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].GradeDefinitionMinMarks < defs[j].GradeDefinitionMinMarks
	})
}
