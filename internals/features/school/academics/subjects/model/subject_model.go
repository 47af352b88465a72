// file: internals/features/school/academics/subjects/model/subject_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	SubjectCode string `gorm:"type:varchar(40);not null;column:subject_code" json:"subject_code"`
	SubjectName string `gorm:"type:text;not null;column:subject_name" json:"subject_name"`

	// Marks configuration consumed by the grade computer.
	SubjectMaxMarks  float64 `gorm:"type:numeric(6,2);not null;default:100;column:subject_max_marks" json:"subject_max_marks"`
	SubjectPassMarks float64 `gorm:"type:numeric(6,2);not null;default:40;column:subject_pass_marks" json:"subject_pass_marks"`

	SubjectIsActive bool `gorm:"not null;default:true;column:subject_is_active" json:"subject_is_active"`

	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectCode = strings.TrimSpace(m.SubjectCode)
	m.SubjectName = strings.TrimSpace(m.SubjectName)

	// Mirror CHECK: pass marks within [0, max]
	if m.SubjectMaxMarks <= 0 {
		return errors.New("subject_max_marks must be > 0")
	}
	if m.SubjectPassMarks < 0 || m.SubjectPassMarks > m.SubjectMaxMarks {
		return errors.New("subject_pass_marks must be within [0, subject_max_marks]")
	}
	return nil
}
