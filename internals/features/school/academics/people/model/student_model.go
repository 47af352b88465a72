// file: internals/features/school/academics/people/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentName    string     `gorm:"type:text;not null;column:student_name" json:"student_name"`
	StudentClassID *uuid.UUID `gorm:"type:uuid;column:student_class_id;index" json:"student_class_id,omitempty"`
	StudentRollNo  string     `gorm:"type:varchar(24);not null;column:student_roll_no" json:"student_roll_no"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentName = strings.TrimSpace(m.StudentName)
	m.StudentRollNo = strings.TrimSpace(m.StudentRollNo)
	return nil
}
