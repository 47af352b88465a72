// file: internals/features/school/academics/schedules/model/exam_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ExamScheduleModel groups the exam slots of one calendar entry for a set of
// classes. Grid grading resolves subjects to slots within one schedule.
type ExamScheduleModel struct {
	ExamScheduleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_schedule_id" json:"exam_schedule_id"`

	ExamScheduleCalendarEntryID uuid.UUID `gorm:"type:uuid;not null;column:exam_schedule_calendar_entry_id;index" json:"exam_schedule_calendar_entry_id"`

	ExamScheduleName string `gorm:"type:text;not null;column:exam_schedule_name" json:"exam_schedule_name"`
	// Classes this schedule applies to (uuid strings).
	ExamScheduleClassIDs pq.StringArray `gorm:"type:uuid[];column:exam_schedule_class_ids" json:"exam_schedule_class_ids"`

	ExamScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:exam_schedule_created_at" json:"exam_schedule_created_at"`
	ExamScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:exam_schedule_updated_at" json:"exam_schedule_updated_at"`
	ExamScheduleDeletedAt gorm.DeletedAt `gorm:"column:exam_schedule_deleted_at;index" json:"exam_schedule_deleted_at,omitempty"`
}

func (ExamScheduleModel) TableName() string { return "exam_schedules" }

// AppliesToClass reports whether classID is in scope for this schedule.
// An empty class list means "all classes".
func (m *ExamScheduleModel) AppliesToClass(classID uuid.UUID) bool {
	if len(m.ExamScheduleClassIDs) == 0 {
		return true
	}
	want := classID.String()
	for _, id := range m.ExamScheduleClassIDs {
		if id == want {
			return true
		}
	}
	return false
}
