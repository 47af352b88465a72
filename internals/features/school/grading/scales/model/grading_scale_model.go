// file: internals/features/school/grading/scales/model/grading_scale_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradingScaleModel is a named set of grade bands valid for an academic year.
// At most one default per academic year; assumed by the registry lookup,
// not DB-enforced.
type GradingScaleModel struct {
	GradingScaleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grading_scale_id" json:"grading_scale_id"`

	GradingScaleName         string `gorm:"type:text;not null;column:grading_scale_name" json:"grading_scale_name"`
	GradingScaleAcademicYear string `gorm:"type:text;not null;column:grading_scale_academic_year;index" json:"grading_scale_academic_year"`
	GradingScaleIsDefault    bool   `gorm:"not null;default:false;column:grading_scale_is_default" json:"grading_scale_is_default"`

	GradingScaleDescription *string `gorm:"type:text;column:grading_scale_description" json:"grading_scale_description,omitempty"`

	GradingScaleCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grading_scale_created_at" json:"grading_scale_created_at"`
	GradingScaleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:grading_scale_updated_at" json:"grading_scale_updated_at"`
	GradingScaleDeletedAt gorm.DeletedAt `gorm:"column:grading_scale_deleted_at;index" json:"grading_scale_deleted_at,omitempty"`

	// Ordered by min marks ascending.
	GradingScaleDefinitions []GradeDefinitionModel `gorm:"foreignKey:GradeDefinitionScaleID;references:GradingScaleID" json:"grading_scale_definitions,omitempty"`
}

func (GradingScaleModel) TableName() string { return "grading_scales" }

func (m *GradingScaleModel) BeforeSave(tx *gorm.DB) error {
	m.GradingScaleName = strings.TrimSpace(m.GradingScaleName)
	m.GradingScaleAcademicYear = strings.TrimSpace(m.GradingScaleAcademicYear)
	if m.GradingScaleDescription != nil {
		d := strings.TrimSpace(*m.GradingScaleDescription)
		if d == "" {
			m.GradingScaleDescription = nil
		} else {
			m.GradingScaleDescription = &d
		}
	}
	return nil
}
