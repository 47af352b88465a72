// file: internals/features/school/grading/results/model/exam_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   Status
   ========================================================= */

type ExamResultStatus string

const (
	ExamResultStatusDraft     ExamResultStatus = "DRAFT"
	ExamResultStatusSubmitted ExamResultStatus = "SUBMITTED"
	ExamResultStatusPublished ExamResultStatus = "PUBLISHED"
	ExamResultStatusLocked    ExamResultStatus = "LOCKED"
)

/* =========================================================
   Model
   ========================================================= */

// ExamResultModel is one student's result for one exam slot. The
// (exam_slot_id, student_id) pair is unique and acts as the natural
// idempotency key for upserts: concurrent creates for the same pair are
// race-resolved by unique-constraint rejection, not application locking.
type ExamResultModel struct {
	ExamResultID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_result_id" json:"exam_result_id"`

	ExamResultExamSlotID uuid.UUID `gorm:"type:uuid;not null;column:exam_result_exam_slot_id;uniqueIndex:uq_exam_results_slot_student" json:"exam_result_exam_slot_id"`
	ExamResultStudentID  uuid.UUID `gorm:"type:uuid;not null;column:exam_result_student_id;uniqueIndex:uq_exam_results_slot_student" json:"exam_result_student_id"`

	// NULL when the student is absent.
	ExamResultMarksObtained     *float64   `gorm:"type:numeric(6,2);column:exam_result_marks_obtained" json:"exam_result_marks_obtained,omitempty"`
	ExamResultGradeDefinitionID *uuid.UUID `gorm:"type:uuid;column:exam_result_grade_definition_id" json:"exam_result_grade_definition_id,omitempty"`
	ExamResultGradeLabel        *string    `gorm:"type:varchar(16);column:exam_result_grade_label" json:"exam_result_grade_label,omitempty"`
	ExamResultRemarks           *string    `gorm:"type:text;column:exam_result_remarks" json:"exam_result_remarks,omitempty"`

	ExamResultIsAbsent bool `gorm:"not null;default:false;column:exam_result_is_absent" json:"exam_result_is_absent"`
	ExamResultIsPassed bool `gorm:"not null;default:false;column:exam_result_is_passed" json:"exam_result_is_passed"`

	ExamResultStatus ExamResultStatus `gorm:"type:varchar(12);not null;default:'DRAFT';column:exam_result_status" json:"exam_result_status"`

	ExamResultGradedBy uuid.UUID `gorm:"type:uuid;not null;column:exam_result_graded_by" json:"exam_result_graded_by"`
	ExamResultGradedAt time.Time `gorm:"type:timestamptz;not null;column:exam_result_graded_at" json:"exam_result_graded_at"`

	ExamResultLastModifiedBy *uuid.UUID `gorm:"type:uuid;column:exam_result_last_modified_by" json:"exam_result_last_modified_by,omitempty"`
	ExamResultLastModifiedAt *time.Time `gorm:"type:timestamptz;column:exam_result_last_modified_at" json:"exam_result_last_modified_at,omitempty"`

	// Append-only audit trail (JSONB). Mutate only through AppendModification.
	ExamResultModificationHistory datatypes.JSON `gorm:"type:jsonb;column:exam_result_modification_history" json:"exam_result_modification_history,omitempty"`

	ExamResultCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:exam_result_created_at" json:"exam_result_created_at"`
	ExamResultUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:exam_result_updated_at" json:"exam_result_updated_at"`
	ExamResultDeletedAt gorm.DeletedAt `gorm:"column:exam_result_deleted_at;index" json:"exam_result_deleted_at,omitempty"`
}

func (ExamResultModel) TableName() string { return "exam_results" }
