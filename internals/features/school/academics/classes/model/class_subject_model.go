// file: internals/features/school/academics/classes/model/class_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSubjectModel is the class-subject roster. The assigned teacher is the
// source of the implicit "may grade" grant evaluated by the permission
// evaluator; it never implies "may modify".
type ClassSubjectModel struct {
	ClassSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_subject_id" json:"class_subject_id"`

	ClassSubjectClassID   uuid.UUID  `gorm:"type:uuid;not null;column:class_subject_class_id;uniqueIndex:uq_class_subjects_pair" json:"class_subject_class_id"`
	ClassSubjectSubjectID uuid.UUID  `gorm:"type:uuid;not null;column:class_subject_subject_id;uniqueIndex:uq_class_subjects_pair" json:"class_subject_subject_id"`
	ClassSubjectTeacherID *uuid.UUID `gorm:"type:uuid;column:class_subject_teacher_id" json:"class_subject_teacher_id,omitempty"`

	ClassSubjectIsActive bool `gorm:"not null;default:true;column:class_subject_is_active" json:"class_subject_is_active"`

	ClassSubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:class_subject_created_at" json:"class_subject_created_at"`
	ClassSubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:class_subject_updated_at" json:"class_subject_updated_at"`
	ClassSubjectDeletedAt gorm.DeletedAt `gorm:"column:class_subject_deleted_at;index" json:"class_subject_deleted_at,omitempty"`
}

func (ClassSubjectModel) TableName() string { return "class_subjects" }
