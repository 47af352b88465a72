// file: internals/features/school/academics/schedules/model/exam_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamSlotModel is the concrete (subject, schedule, date) unit exam results
// are recorded against.
type ExamSlotModel struct {
	ExamSlotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_slot_id" json:"exam_slot_id"`

	ExamSlotExamScheduleID uuid.UUID `gorm:"type:uuid;not null;column:exam_slot_exam_schedule_id;uniqueIndex:uq_exam_slots_schedule_subject" json:"exam_slot_exam_schedule_id"`
	ExamSlotSubjectID      uuid.UUID `gorm:"type:uuid;not null;column:exam_slot_subject_id;uniqueIndex:uq_exam_slots_schedule_subject" json:"exam_slot_subject_id"`

	ExamSlotDate      time.Time  `gorm:"type:timestamptz;not null;column:exam_slot_date" json:"exam_slot_date"`
	ExamSlotStartTime *time.Time `gorm:"type:timestamptz;column:exam_slot_start_time" json:"exam_slot_start_time,omitempty"`
	ExamSlotEndTime   *time.Time `gorm:"type:timestamptz;column:exam_slot_end_time" json:"exam_slot_end_time,omitempty"`

	ExamSlotCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:exam_slot_created_at" json:"exam_slot_created_at"`
	ExamSlotUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:exam_slot_updated_at" json:"exam_slot_updated_at"`
	ExamSlotDeletedAt gorm.DeletedAt `gorm:"column:exam_slot_deleted_at;index" json:"exam_slot_deleted_at,omitempty"`
}

func (ExamSlotModel) TableName() string { return "exam_slots" }
