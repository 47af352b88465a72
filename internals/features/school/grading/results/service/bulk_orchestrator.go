// file: internals/features/school/grading/results/service/bulk_orchestrator.go
package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	resultModel "sekolahku_backend/internals/features/school/grading/results/model"
)

/* =========================================================
   Collaborator interfaces
   ========================================================= */

type ResultUpserter interface {
	Upsert(in UpsertResultInput, actor Actor) (*resultModel.ExamResultModel, bool, error)
}

// SlotResolver maps (schedule, subject) pairs to exam slots for grid entry.
type SlotResolver interface {
	SlotForSubject(examScheduleID, subjectID uuid.UUID) (*schedModel.ExamSlotModel, error)
	ScheduleByID(examScheduleID uuid.UUID) (*schedModel.ExamScheduleModel, error)
}

type gormSlotResolver struct{ db *gorm.DB }

func NewSlotResolver(db *gorm.DB) SlotResolver { return &gormSlotResolver{db: db} }

func (r *gormSlotResolver) SlotForSubject(examScheduleID, subjectID uuid.UUID) (*schedModel.ExamSlotModel, error) {
	var slot schedModel.ExamSlotModel
	err := r.db.First(&slot,
		"exam_slot_exam_schedule_id = ? AND exam_slot_subject_id = ?", examScheduleID, subjectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[BulkOrchestrator] ERROR resolve slot: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Exam slot lookup failure")
	}
	return &slot, nil
}

func (r *gormSlotResolver) ScheduleByID(examScheduleID uuid.UUID) (*schedModel.ExamScheduleModel, error) {
	var sched schedModel.ExamScheduleModel
	err := r.db.First(&sched, "exam_schedule_id = ?", examScheduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[BulkOrchestrator] ERROR load schedule: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Exam schedule lookup failure")
	}
	return &sched, nil
}

/* =========================================================
   Inputs / outputs
   ========================================================= */

type BulkGradeEntry struct {
	StudentID          uuid.UUID
	SubjectID          uuid.UUID
	MarksObtained      *float64
	GradeDefinitionID  *uuid.UUID
	Remarks            *string
	IsAbsent           bool
	ModificationReason string
}

type BulkError struct {
	Index     int        `json:"index"`
	StudentID uuid.UUID  `json:"student_id"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	Message   string     `json:"message"`
}

// BulkResult reports a best-effort batch outcome: Success is true as soon as
// at least one entry landed, and per-entry failures ride along in Errors.
type BulkResult struct {
	Success        bool        `json:"success"`
	ProcessedCount int         `json:"processed_count"`
	CreatedCount   int         `json:"created_count"`
	UpdatedCount   int         `json:"updated_count"`
	Errors         []BulkError `json:"errors"`
}

func (r *BulkResult) finalize() {
	r.Success = r.ProcessedCount > 0 || len(r.Errors) == 0
}

/* =========================================================
   BulkOrchestrator
   ========================================================= */

// BulkOrchestrator fans a batch of grade entries into the result store one
// entry at a time. A bad entry never aborts the rest of the batch; only a
// missing slot or schedule up front does.
type BulkOrchestrator struct {
	Store ResultUpserter
	Slots SlotResolver
}

func NewBulkOrchestrator(store ResultUpserter, slots SlotResolver) *BulkOrchestrator {
	return &BulkOrchestrator{Store: store, Slots: slots}
}

// BulkGrade grades many students against one known exam slot.
func (o *BulkOrchestrator) BulkGrade(examSlotID, classID uuid.UUID, entries []BulkGradeEntry, actor Actor) (*BulkResult, error) {
	res := &BulkResult{Errors: []BulkError{}}
	for i, e := range entries {
		o.upsertOne(res, i, examSlotID, classID, e, actor)
	}
	res.finalize()
	return res, nil
}

// GridGrade grades a class grid: entries carry their own subject and the
// orchestrator resolves each one to the matching slot under the schedule.
func (o *BulkOrchestrator) GridGrade(examScheduleID, classID uuid.UUID, entries []BulkGradeEntry, actor Actor) (*BulkResult, error) {
	sched, err := o.Slots.ScheduleByID(examScheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Exam schedule not found")
	}
	if !sched.AppliesToClass(classID) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Exam schedule does not apply to this class")
	}

	res := &BulkResult{Errors: []BulkError{}}
	slotCache := map[uuid.UUID]*schedModel.ExamSlotModel{}
	for i, e := range entries {
		slot, ok := slotCache[e.SubjectID]
		if !ok {
			var err error
			slot, err = o.Slots.SlotForSubject(examScheduleID, e.SubjectID)
			if err != nil {
				return nil, err
			}
			slotCache[e.SubjectID] = slot
		}
		if slot == nil {
			subjectID := e.SubjectID
			res.Errors = append(res.Errors, BulkError{
				Index:     i,
				StudentID: e.StudentID,
				SubjectID: &subjectID,
				Message:   "No exam slot found for this subject under the schedule",
			})
			continue
		}
		o.upsertOne(res, i, slot.ExamSlotID, classID, e, actor)
	}
	res.finalize()
	return res, nil
}

func (o *BulkOrchestrator) upsertOne(res *BulkResult, idx int, slotID, classID uuid.UUID, e BulkGradeEntry, actor Actor) {
	_, created, err := o.Store.Upsert(UpsertResultInput{
		ExamSlotID:         slotID,
		StudentID:          e.StudentID,
		ClassID:            classID,
		MarksObtained:      e.MarksObtained,
		GradeDefinitionID:  e.GradeDefinitionID,
		Remarks:            e.Remarks,
		IsAbsent:           e.IsAbsent,
		ModificationReason: e.ModificationReason,
	}, actor)
	if err != nil {
		res.Errors = append(res.Errors, BulkError{
			Index:     idx,
			StudentID: e.StudentID,
			SubjectID: subjectPtr(e),
			Message:   bulkErrMessage(err),
		})
		return
	}
	res.ProcessedCount++
	if created {
		res.CreatedCount++
	} else {
		res.UpdatedCount++
	}
}

func subjectPtr(e BulkGradeEntry) *uuid.UUID {
	if e.SubjectID == uuid.Nil {
		return nil
	}
	id := e.SubjectID
	return &id
}

func bulkErrMessage(err error) string {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return fmt.Sprintf("unexpected failure: %v", err)
}
