// file: internals/features/school/academics/schedules/model/calendar_entry_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEntryModel is an exam period on the institution calendar
// (e.g. "Mid Term 2026/2027"). Result publishing is scoped to one entry.
type CalendarEntryModel struct {
	CalendarEntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:calendar_entry_id" json:"calendar_entry_id"`

	CalendarEntryName         string `gorm:"type:text;not null;column:calendar_entry_name" json:"calendar_entry_name"`
	CalendarEntryAcademicYear string `gorm:"type:text;not null;column:calendar_entry_academic_year" json:"calendar_entry_academic_year"`
	// Example exam_type: "MIDTERM" | "FINAL" | "QUIZ"
	CalendarEntryExamType string `gorm:"type:varchar(24);not null;column:calendar_entry_exam_type" json:"calendar_entry_exam_type"`

	CalendarEntryStartDate time.Time `gorm:"type:timestamptz;not null;column:calendar_entry_start_date" json:"calendar_entry_start_date"`
	CalendarEntryEndDate   time.Time `gorm:"type:timestamptz;not null;column:calendar_entry_end_date" json:"calendar_entry_end_date"`

	CalendarEntryCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:calendar_entry_created_at" json:"calendar_entry_created_at"`
	CalendarEntryUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:calendar_entry_updated_at" json:"calendar_entry_updated_at"`
	CalendarEntryDeletedAt gorm.DeletedAt `gorm:"column:calendar_entry_deleted_at;index" json:"calendar_entry_deleted_at,omitempty"`
}

func (CalendarEntryModel) TableName() string { return "calendar_entries" }

func (m *CalendarEntryModel) BeforeSave(tx *gorm.DB) error {
	if m.CalendarEntryEndDate.Before(m.CalendarEntryStartDate) {
		return errors.New("calendar_entry_end_date must be >= calendar_entry_start_date")
	}
	m.CalendarEntryName = strings.TrimSpace(m.CalendarEntryName)
	m.CalendarEntryAcademicYear = strings.TrimSpace(m.CalendarEntryAcademicYear)
	m.CalendarEntryExamType = strings.ToUpper(strings.TrimSpace(m.CalendarEntryExamType))
	return nil
}
