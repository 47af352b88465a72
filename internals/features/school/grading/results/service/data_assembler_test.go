// file: internals/features/school/grading/results/service/data_assembler_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	schedModel "sekolahku_backend/internals/features/school/academics/schedules/model"
)

func cell(marks *float64, absent, passed bool) GridCell {
	return GridCell{
		ExamResultID: uuid.New(),
		StudentID:    uuid.New(),
		SubjectID:    uuid.New(),
		Marks:        marks,
		IsAbsent:     absent,
		IsPassed:     passed,
	}
}

func TestComputeGridStatistics(t *testing.T) {
	t.Run("empty grid", func(t *testing.T) {
		stats := ComputeGridStatistics(10, 4, nil)
		if stats.GradedCount != 0 {
			t.Errorf("graded = %d, want 0", stats.GradedCount)
		}
		if stats.PendingCount != 40 {
			t.Errorf("pending = %d, want 40", stats.PendingCount)
		}
		if stats.AverageMarks != nil {
			t.Errorf("average = %v, want nil for no marks", *stats.AverageMarks)
		}
	})

	t.Run("pending is grid size minus graded", func(t *testing.T) {
		cells := []GridCell{
			cell(f(80), false, true),
			cell(f(30), false, false),
			cell(nil, true, false),
		}
		stats := ComputeGridStatistics(5, 2, cells)
		if stats.GradedCount != 3 {
			t.Errorf("graded = %d, want 3", stats.GradedCount)
		}
		if stats.PendingCount != 7 {
			t.Errorf("pending = %d, want 7", stats.PendingCount)
		}
	})

	t.Run("absent cells excluded from pass fail and marks aggregates", func(t *testing.T) {
		cells := []GridCell{
			cell(f(90), false, true),
			cell(f(60), false, true),
			cell(f(20), false, false),
			cell(nil, true, false),
		}
		stats := ComputeGridStatistics(4, 1, cells)
		if stats.AbsentCount != 1 {
			t.Errorf("absent = %d, want 1", stats.AbsentCount)
		}
		if stats.PassCount != 2 || stats.FailCount != 1 {
			t.Errorf("pass/fail = %d/%d, want 2/1", stats.PassCount, stats.FailCount)
		}
		if stats.AverageMarks == nil {
			t.Fatalf("average = nil, want value")
		}
		wantAvg := (90.0 + 60.0 + 20.0) / 3.0
		if *stats.AverageMarks != wantAvg {
			t.Errorf("average = %v, want %v", *stats.AverageMarks, wantAvg)
		}
		if stats.HighestMarks == nil || *stats.HighestMarks != 90 {
			t.Errorf("highest = %v, want 90", stats.HighestMarks)
		}
		if stats.LowestMarks == nil || *stats.LowestMarks != 20 {
			t.Errorf("lowest = %v, want 20", stats.LowestMarks)
		}
	})

	t.Run("pending never negative", func(t *testing.T) {
		cells := []GridCell{cell(f(50), false, true), cell(f(60), false, true)}
		stats := ComputeGridStatistics(1, 1, cells)
		if stats.PendingCount != 0 {
			t.Errorf("pending = %d, want 0", stats.PendingCount)
		}
	})
}

func TestCellsScopedToGridStudents(t *testing.T) {
	// No students means no cells; the query must not run at all, which a
	// nil DB would turn into a panic.
	a := &DataAssembler{}
	cells, err := a.cellsForSlots([]uuid.UUID{uuid.New()}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 0 {
		t.Errorf("cells = %d, want 0 for an empty class", len(cells))
	}
}

func TestFirstSlotForClass(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()

	schedA := &schedModel.ExamScheduleModel{
		ExamScheduleID:       uuid.New(),
		ExamScheduleClassIDs: []string{classA.String()},
	}
	schedB := &schedModel.ExamScheduleModel{
		ExamScheduleID:       uuid.New(),
		ExamScheduleClassIDs: []string{classB.String()},
	}
	schedByID := map[uuid.UUID]*schedModel.ExamScheduleModel{
		schedA.ExamScheduleID: schedA,
		schedB.ExamScheduleID: schedB,
	}
	slots := []schedModel.ExamSlotModel{
		{ExamSlotID: uuid.New(), ExamSlotExamScheduleID: schedA.ExamScheduleID},
		{ExamSlotID: uuid.New(), ExamSlotExamScheduleID: schedB.ExamScheduleID},
	}

	if got := firstSlotForClass(slots, schedByID, classB); got == nil || got.ExamSlotID != slots[1].ExamSlotID {
		t.Errorf("class B resolved to %v, want the second slot", got)
	}
	if got := firstSlotForClass(slots, schedByID, uuid.New()); got != nil {
		t.Errorf("unscheduled class resolved to slot %v, want none", got.ExamSlotID)
	}
}

func TestScheduleClassTargets(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()

	sched := &schedModel.ExamScheduleModel{
		ExamScheduleID:       uuid.New(),
		ExamScheduleClassIDs: []string{classA.String(), classB.String(), classA.String()},
	}
	schedByID := map[uuid.UUID]*schedModel.ExamScheduleModel{sched.ExamScheduleID: sched}
	slots := []schedModel.ExamSlotModel{
		{ExamSlotID: uuid.New(), ExamSlotExamScheduleID: sched.ExamScheduleID},
		{ExamSlotID: uuid.New(), ExamSlotExamScheduleID: sched.ExamScheduleID},
	}

	a := &DataAssembler{}
	targets, err := a.scheduleClassTargets(slots, schedByID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("targets = %d, want the two distinct classes", len(targets))
	}
	if targets[0] != classA || targets[1] != classB {
		t.Errorf("targets = %v, want class A then class B", targets)
	}
}
