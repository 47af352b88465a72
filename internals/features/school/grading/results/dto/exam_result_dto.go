// file: internals/features/school/grading/results/dto/exam_result_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/grading/results/model"
	"sekolahku_backend/internals/features/school/grading/results/service"
)

/* =========================================================
   MUTATIONS
   ========================================================= */

type CreateExamResultRequest struct {
	ExamSlotID uuid.UUID  `json:"exam_result_exam_slot_id" validate:"required"`
	StudentID  uuid.UUID  `json:"exam_result_student_id" validate:"required"`
	ClassID    *uuid.UUID `json:"exam_result_class_id"`

	MarksObtained     *float64   `json:"exam_result_marks_obtained" validate:"omitempty,min=0"`
	GradeDefinitionID *uuid.UUID `json:"exam_result_grade_definition_id"`
	Remarks           *string    `json:"exam_result_remarks" validate:"omitempty,max=1000"`
	IsAbsent          bool       `json:"exam_result_is_absent"`
}

func (r *CreateExamResultRequest) Normalize() {
	normalizeRemarks(&r.Remarks)
}

func (r CreateExamResultRequest) ToInput() service.UpsertResultInput {
	in := service.UpsertResultInput{
		ExamSlotID:        r.ExamSlotID,
		StudentID:         r.StudentID,
		MarksObtained:     r.MarksObtained,
		GradeDefinitionID: r.GradeDefinitionID,
		Remarks:           r.Remarks,
		IsAbsent:          r.IsAbsent,
	}
	if r.ClassID != nil {
		in.ClassID = *r.ClassID
	}
	return in
}

type UpdateExamResultRequest struct {
	MarksObtained     *float64   `json:"exam_result_marks_obtained" validate:"omitempty,min=0"`
	GradeDefinitionID *uuid.UUID `json:"exam_result_grade_definition_id"`
	Remarks           *string    `json:"exam_result_remarks" validate:"omitempty,max=1000"`
	IsAbsent          bool       `json:"exam_result_is_absent"`

	ModificationReason string `json:"modification_reason" validate:"required,min=3,max=500"`
}

func (r *UpdateExamResultRequest) Normalize() {
	r.ModificationReason = strings.TrimSpace(r.ModificationReason)
	normalizeRemarks(&r.Remarks)
}

func (r UpdateExamResultRequest) ToInput() service.UpsertResultInput {
	return service.UpsertResultInput{
		MarksObtained:      r.MarksObtained,
		GradeDefinitionID:  r.GradeDefinitionID,
		Remarks:            r.Remarks,
		IsAbsent:           r.IsAbsent,
		ModificationReason: r.ModificationReason,
	}
}

/* =========================================================
   BULK
   ========================================================= */

type BulkGradeEntryRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	// SubjectID is required on the grid endpoint and ignored on the
	// single-slot endpoint.
	SubjectID uuid.UUID `json:"subject_id"`

	MarksObtained      *float64   `json:"marks_obtained" validate:"omitempty,min=0"`
	GradeDefinitionID  *uuid.UUID `json:"grade_definition_id"`
	Remarks            *string    `json:"remarks" validate:"omitempty,max=1000"`
	IsAbsent           bool       `json:"is_absent"`
	ModificationReason string     `json:"modification_reason" validate:"omitempty,max=500"`
}

type BulkGradeRequest struct {
	ExamSlotID uuid.UUID               `json:"exam_slot_id" validate:"required"`
	ClassID    uuid.UUID               `json:"class_id" validate:"required"`
	Entries    []BulkGradeEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

type GridGradeRequest struct {
	ExamScheduleID uuid.UUID               `json:"exam_schedule_id" validate:"required"`
	ClassID        uuid.UUID               `json:"class_id" validate:"required"`
	Entries        []BulkGradeEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

func ToBulkEntries(reqs []BulkGradeEntryRequest) []service.BulkGradeEntry {
	entries := make([]service.BulkGradeEntry, 0, len(reqs))
	for _, r := range reqs {
		remarks := r.Remarks
		normalizeRemarks(&remarks)
		entries = append(entries, service.BulkGradeEntry{
			StudentID:          r.StudentID,
			SubjectID:          r.SubjectID,
			MarksObtained:      r.MarksObtained,
			GradeDefinitionID:  r.GradeDefinitionID,
			Remarks:            remarks,
			IsAbsent:           r.IsAbsent,
			ModificationReason: strings.TrimSpace(r.ModificationReason),
		})
	}
	return entries
}

/* =========================================================
   PUBLISH
   ========================================================= */

type PublishResultsRequest struct {
	CalendarEntryID uuid.UUID `json:"calendar_entry_id" validate:"required"`
	Remarks         string    `json:"remarks" validate:"omitempty,max=500"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type ExamResultResponse struct {
	ID         uuid.UUID `json:"exam_result_id"`
	ExamSlotID uuid.UUID `json:"exam_result_exam_slot_id"`
	StudentID  uuid.UUID `json:"exam_result_student_id"`

	MarksObtained     *float64   `json:"exam_result_marks_obtained,omitempty"`
	GradeDefinitionID *uuid.UUID `json:"exam_result_grade_definition_id,omitempty"`
	GradeLabel        *string    `json:"exam_result_grade_label,omitempty"`
	Remarks           *string    `json:"exam_result_remarks,omitempty"`

	IsAbsent bool               `json:"exam_result_is_absent"`
	IsPassed bool               `json:"exam_result_is_passed"`
	Status   m.ExamResultStatus `json:"exam_result_status"`

	GradedBy uuid.UUID `json:"exam_result_graded_by"`
	GradedAt time.Time `json:"exam_result_graded_at"`

	LastModifiedBy *uuid.UUID `json:"exam_result_last_modified_by,omitempty"`
	LastModifiedAt *time.Time `json:"exam_result_last_modified_at,omitempty"`

	ModificationHistory m.ModificationHistory `json:"exam_result_modification_history,omitempty"`

	CreatedAt time.Time `json:"exam_result_created_at"`
	UpdatedAt time.Time `json:"exam_result_updated_at"`
}

func FromExamResultModel(mod *m.ExamResultModel) ExamResultResponse {
	history, err := mod.History()
	if err != nil {
		history = nil
	}
	return ExamResultResponse{
		ID:                  mod.ExamResultID,
		ExamSlotID:          mod.ExamResultExamSlotID,
		StudentID:           mod.ExamResultStudentID,
		MarksObtained:       mod.ExamResultMarksObtained,
		GradeDefinitionID:   mod.ExamResultGradeDefinitionID,
		GradeLabel:          mod.ExamResultGradeLabel,
		Remarks:             mod.ExamResultRemarks,
		IsAbsent:            mod.ExamResultIsAbsent,
		IsPassed:            mod.ExamResultIsPassed,
		Status:              mod.ExamResultStatus,
		GradedBy:            mod.ExamResultGradedBy,
		GradedAt:            mod.ExamResultGradedAt,
		LastModifiedBy:      mod.ExamResultLastModifiedBy,
		LastModifiedAt:      mod.ExamResultLastModifiedAt,
		ModificationHistory: history,
		CreatedAt:           mod.ExamResultCreatedAt,
		UpdatedAt:           mod.ExamResultUpdatedAt,
	}
}

func normalizeRemarks(remarks **string) {
	if *remarks == nil {
		return
	}
	v := strings.TrimSpace(**remarks)
	if v == "" {
		*remarks = nil
		return
	}
	*remarks = &v
}
