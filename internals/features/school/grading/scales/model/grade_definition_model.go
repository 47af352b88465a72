// file: internals/features/school/grading/scales/model/grade_definition_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeDefinitionModel is one grade band of a scale: an inclusive percentage
// interval mapped to a label. Non-overlap with sibling bands and label
// uniqueness are enforced by the definition validator at scale creation,
// the grade computer relies on that invariant at read time.
type GradeDefinitionModel struct {
	GradeDefinitionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_definition_id" json:"grade_definition_id"`

	GradeDefinitionScaleID uuid.UUID `gorm:"type:uuid;not null;column:grade_definition_scale_id;index" json:"grade_definition_scale_id"`

	GradeDefinitionLabel    string  `gorm:"type:varchar(16);not null;column:grade_definition_label" json:"grade_definition_label"`
	GradeDefinitionMinMarks float64 `gorm:"type:numeric(5,2);not null;column:grade_definition_min_marks" json:"grade_definition_min_marks"`
	GradeDefinitionMaxMarks float64 `gorm:"type:numeric(5,2);not null;column:grade_definition_max_marks" json:"grade_definition_max_marks"`

	GradeDefinitionGradePoint *float64 `gorm:"type:numeric(4,2);column:grade_definition_grade_point" json:"grade_definition_grade_point,omitempty"`
	GradeDefinitionColor      *string  `gorm:"type:varchar(16);column:grade_definition_color" json:"grade_definition_color,omitempty"`

	GradeDefinitionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grade_definition_created_at" json:"grade_definition_created_at"`
	GradeDefinitionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:grade_definition_updated_at" json:"grade_definition_updated_at"`
	GradeDefinitionDeletedAt gorm.DeletedAt `gorm:"column:grade_definition_deleted_at;index" json:"grade_definition_deleted_at,omitempty"`
}

func (GradeDefinitionModel) TableName() string { return "grade_definitions" }

func (m *GradeDefinitionModel) BeforeSave(tx *gorm.DB) error {
	m.GradeDefinitionLabel = strings.TrimSpace(m.GradeDefinitionLabel)
	return nil
}

// Contains reports whether pct falls inside the inclusive [min,max] band.
func (m *GradeDefinitionModel) Contains(pct float64) bool {
	return pct >= m.GradeDefinitionMinMarks && pct <= m.GradeDefinitionMaxMarks
}
