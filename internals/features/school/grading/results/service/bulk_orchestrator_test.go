// file: internals/features/school/grading/results/service/bulk_orchestrator_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	resultModel "sekolahku_backend/internals/features/school/grading/results/model"
)

type fakeUpserter struct {
	// failFor maps student ids to the per-item error to return.
	failFor map[uuid.UUID]error
	// existsFor marks students whose upsert resolves to an update.
	existsFor map[uuid.UUID]bool
	calls     []UpsertResultInput
}

func (f *fakeUpserter) Upsert(in UpsertResultInput, _ Actor) (*resultModel.ExamResultModel, bool, error) {
	f.calls = append(f.calls, in)
	if err, ok := f.failFor[in.StudentID]; ok {
		return nil, false, err
	}
	created := !f.existsFor[in.StudentID]
	return &resultModel.ExamResultModel{
		ExamResultID:         uuid.New(),
		ExamResultExamSlotID: in.ExamSlotID,
		ExamResultStudentID:  in.StudentID,
	}, created, nil
}

type fakeSlots struct {
	schedule *schedModel.ExamScheduleModel
	// slots maps subject id to the slot under the schedule.
	slots map[uuid.UUID]*schedModel.ExamSlotModel
}

func (f *fakeSlots) SlotForSubject(_, subjectID uuid.UUID) (*schedModel.ExamSlotModel, error) {
	return f.slots[subjectID], nil
}

func (f *fakeSlots) ScheduleByID(uuid.UUID) (*schedModel.ExamScheduleModel, error) {
	return f.schedule, nil
}

func entryFor(studentID uuid.UUID, marks float64) BulkGradeEntry {
	return BulkGradeEntry{StudentID: studentID, MarksObtained: &marks}
}

func TestBulkGrade(t *testing.T) {
	slotID := uuid.New()
	classID := uuid.New()
	actor := Actor{UserID: uuid.New(), Role: "teacher"}

	okStudent := uuid.New()
	okStudent2 := uuid.New()
	badStudent := uuid.New()

	t.Run("all entries succeed", func(t *testing.T) {
		store := &fakeUpserter{}
		o := NewBulkOrchestrator(store, &fakeSlots{})

		res, err := o.BulkGrade(slotID, classID, []BulkGradeEntry{
			entryFor(okStudent, 70),
			entryFor(okStudent2, 85),
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.ProcessedCount != 2 || len(res.Errors) != 0 {
			t.Fatalf("got success=%v processed=%d errors=%d", res.Success, res.ProcessedCount, len(res.Errors))
		}
		if res.CreatedCount != 2 || res.UpdatedCount != 0 {
			t.Fatalf("got created=%d updated=%d", res.CreatedCount, res.UpdatedCount)
		}
	})

	t.Run("bad entry does not abort the batch", func(t *testing.T) {
		store := &fakeUpserter{failFor: map[uuid.UUID]error{
			badStudent: fiber.NewError(fiber.StatusBadRequest, "Marks 120.00 exceed the subject maximum of 100.00"),
		}}
		o := NewBulkOrchestrator(store, &fakeSlots{})

		res, err := o.BulkGrade(slotID, classID, []BulkGradeEntry{
			entryFor(okStudent, 70),
			entryFor(badStudent, 120),
			entryFor(okStudent2, 55),
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success {
			t.Errorf("batch with partial failures should still report success")
		}
		if res.ProcessedCount != 2 {
			t.Errorf("processed = %d, want 2", res.ProcessedCount)
		}
		if len(res.Errors) != 1 {
			t.Fatalf("errors = %d, want 1", len(res.Errors))
		}
		if res.Errors[0].Index != 1 || res.Errors[0].StudentID != badStudent {
			t.Errorf("error = %+v, want index 1 for failing student", res.Errors[0])
		}
		if len(store.calls) != 3 {
			t.Errorf("store calls = %d, want 3 (every entry attempted)", len(store.calls))
		}
	})

	t.Run("every entry failing is not success", func(t *testing.T) {
		store := &fakeUpserter{failFor: map[uuid.UUID]error{
			okStudent: fiber.NewError(fiber.StatusForbidden, "No grading permission"),
		}}
		o := NewBulkOrchestrator(store, &fakeSlots{})

		res, err := o.BulkGrade(slotID, classID, []BulkGradeEntry{entryFor(okStudent, 70)}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success {
			t.Errorf("batch where nothing landed should not report success")
		}
	})

	t.Run("empty batch is success", func(t *testing.T) {
		o := NewBulkOrchestrator(&fakeUpserter{}, &fakeSlots{})
		res, err := o.BulkGrade(slotID, classID, nil, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.ProcessedCount != 0 {
			t.Errorf("got success=%v processed=%d, want success with 0 processed", res.Success, res.ProcessedCount)
		}
	})

	t.Run("updates counted separately from creates", func(t *testing.T) {
		store := &fakeUpserter{existsFor: map[uuid.UUID]bool{okStudent: true}}
		o := NewBulkOrchestrator(store, &fakeSlots{})

		res, err := o.BulkGrade(slotID, classID, []BulkGradeEntry{
			entryFor(okStudent, 70),
			entryFor(okStudent2, 85),
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedCount != 1 || res.UpdatedCount != 1 {
			t.Errorf("got created=%d updated=%d, want 1 and 1", res.CreatedCount, res.UpdatedCount)
		}
	})
}

// gatedUpserter treats every pair as already graded, so each entry takes the
// update path and the store's modification reason gate decides its fate.
type gatedUpserter struct {
	accepted int
}

func (g *gatedUpserter) Upsert(in UpsertResultInput, _ Actor) (*resultModel.ExamResultModel, bool, error) {
	if err := requireModificationReason(in.ModificationReason); err != nil {
		return nil, false, err
	}
	g.accepted++
	return &resultModel.ExamResultModel{
		ExamResultID:         uuid.New(),
		ExamResultExamSlotID: in.ExamSlotID,
		ExamResultStudentID:  in.StudentID,
	}, false, nil
}

func TestBulkGradeResubmission(t *testing.T) {
	slotID := uuid.New()
	classID := uuid.New()
	actor := Actor{UserID: uuid.New(), Role: "teacher"}

	entries := []BulkGradeEntry{
		entryFor(uuid.New(), 70),
		entryFor(uuid.New(), 85),
		entryFor(uuid.New(), 40),
	}

	t.Run("resubmission without reason fails every entry", func(t *testing.T) {
		store := &gatedUpserter{}
		o := NewBulkOrchestrator(store, &fakeSlots{})

		res, err := o.BulkGrade(slotID, classID, entries, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.ProcessedCount != 0 {
			t.Fatalf("got success=%v processed=%d, want a failed batch with 0 processed", res.Success, res.ProcessedCount)
		}
		if len(res.Errors) != len(entries) {
			t.Fatalf("errors = %d, want one per entry", len(res.Errors))
		}
		for _, e := range res.Errors {
			if e.Message != "Modification reason is required" {
				t.Errorf("entry %d message = %q, want the reason requirement", e.Index, e.Message)
			}
		}
		if store.accepted != 0 {
			t.Errorf("store accepted %d updates without a reason", store.accepted)
		}
	})

	t.Run("resubmission with reason updates every entry", func(t *testing.T) {
		store := &gatedUpserter{}
		o := NewBulkOrchestrator(store, &fakeSlots{})

		withReason := make([]BulkGradeEntry, len(entries))
		for i, e := range entries {
			e.ModificationReason = "marks re-totalled after review"
			withReason[i] = e
		}
		res, err := o.BulkGrade(slotID, classID, withReason, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.UpdatedCount != len(entries) || len(res.Errors) != 0 {
			t.Fatalf("got success=%v updated=%d errors=%d", res.Success, res.UpdatedCount, len(res.Errors))
		}
	})
}

func TestGridGrade(t *testing.T) {
	scheduleID := uuid.New()
	classID := uuid.New()
	actor := Actor{UserID: uuid.New(), Role: "teacher"}

	mathID := uuid.New()
	physicsID := uuid.New()
	unscheduledID := uuid.New()

	mathSlot := &schedModel.ExamSlotModel{ExamSlotID: uuid.New(), ExamSlotSubjectID: mathID}
	physicsSlot := &schedModel.ExamSlotModel{ExamSlotID: uuid.New(), ExamSlotSubjectID: physicsID}

	openSchedule := &schedModel.ExamScheduleModel{ExamScheduleID: scheduleID}

	gridEntry := func(studentID, subjectID uuid.UUID, marks float64) BulkGradeEntry {
		e := entryFor(studentID, marks)
		e.SubjectID = subjectID
		return e
	}

	t.Run("entries resolve to slots per subject", func(t *testing.T) {
		store := &fakeUpserter{}
		o := NewBulkOrchestrator(store, &fakeSlots{
			schedule: openSchedule,
			slots:    map[uuid.UUID]*schedModel.ExamSlotModel{mathID: mathSlot, physicsID: physicsSlot},
		})

		student := uuid.New()
		res, err := o.GridGrade(scheduleID, classID, []BulkGradeEntry{
			gridEntry(student, mathID, 70),
			gridEntry(student, physicsID, 60),
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProcessedCount != 2 {
			t.Fatalf("processed = %d, want 2", res.ProcessedCount)
		}
		if store.calls[0].ExamSlotID != mathSlot.ExamSlotID {
			t.Errorf("first entry routed to slot %s, want math slot", store.calls[0].ExamSlotID)
		}
		if store.calls[1].ExamSlotID != physicsSlot.ExamSlotID {
			t.Errorf("second entry routed to slot %s, want physics slot", store.calls[1].ExamSlotID)
		}
	})

	t.Run("subject without slot is a per-item error", func(t *testing.T) {
		store := &fakeUpserter{}
		o := NewBulkOrchestrator(store, &fakeSlots{
			schedule: openSchedule,
			slots:    map[uuid.UUID]*schedModel.ExamSlotModel{mathID: mathSlot},
		})

		student := uuid.New()
		res, err := o.GridGrade(scheduleID, classID, []BulkGradeEntry{
			gridEntry(student, mathID, 70),
			gridEntry(student, unscheduledID, 60),
		}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProcessedCount != 1 || len(res.Errors) != 1 {
			t.Fatalf("processed=%d errors=%d, want 1 and 1", res.ProcessedCount, len(res.Errors))
		}
		if res.Errors[0].SubjectID == nil || *res.Errors[0].SubjectID != unscheduledID {
			t.Errorf("error subject = %v, want the unscheduled subject", res.Errors[0].SubjectID)
		}
	})

	t.Run("missing schedule aborts", func(t *testing.T) {
		o := NewBulkOrchestrator(&fakeUpserter{}, &fakeSlots{})
		_, err := o.GridGrade(scheduleID, classID, []BulkGradeEntry{gridEntry(uuid.New(), mathID, 70)}, actor)
		if err == nil {
			t.Fatalf("expected error for missing schedule")
		}
	})

	t.Run("schedule scoped to another class aborts", func(t *testing.T) {
		scoped := &schedModel.ExamScheduleModel{
			ExamScheduleID:       scheduleID,
			ExamScheduleClassIDs: []string{uuid.New().String()},
		}
		o := NewBulkOrchestrator(&fakeUpserter{}, &fakeSlots{schedule: scoped})
		_, err := o.GridGrade(scheduleID, classID, []BulkGradeEntry{gridEntry(uuid.New(), mathID, 70)}, actor)
		if err == nil {
			t.Fatalf("expected error for out-of-scope class")
		}
	})
}
