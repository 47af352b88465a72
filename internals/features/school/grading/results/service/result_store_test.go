// file: internals/features/school/grading/results/service/result_store_test.go
package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	resultModel "sekolahku_backend/internals/features/school/grading/results/model"
	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

type fakeScaleSource struct {
	scale *scaleModel.GradingScaleModel
}

func (f *fakeScaleSource) DefaultForYear(string) (*scaleModel.GradingScaleModel, error) {
	return f.scale, nil
}

func TestValidateMarks(t *testing.T) {
	tests := []struct {
		name    string
		in      UpsertResultInput
		max     float64
		wantErr string
	}{
		{
			name: "marks within range accepted",
			in:   UpsertResultInput{MarksObtained: f(75)},
			max:  100,
		},
		{
			name: "marks equal to max accepted",
			in:   UpsertResultInput{MarksObtained: f(100)},
			max:  100,
		},
		{
			name:    "marks above max rejected",
			in:      UpsertResultInput{MarksObtained: f(101)},
			max:     100,
			wantErr: "exceed",
		},
		{
			name:    "negative marks rejected",
			in:      UpsertResultInput{MarksObtained: f(-1)},
			max:     100,
			wantErr: "negative",
		},
		{
			name:    "missing marks rejected when present",
			in:      UpsertResultInput{},
			max:     100,
			wantErr: "required",
		},
		{
			name: "absent needs no marks",
			in:   UpsertResultInput{IsAbsent: true},
			max:  100,
		},
		{
			name: "absent ignores out-of-range marks",
			in:   UpsertResultInput{IsAbsent: true, MarksObtained: f(150)},
			max:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMarks(tt.in, tt.max)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestClassScope(t *testing.T) {
	enrolled := uuid.New()

	t.Run("claimed class must match enrollment", func(t *testing.T) {
		_, err := classScope(uuid.New(), enrolled)
		if err == nil || !strings.Contains(err.Error(), "not enrolled") {
			t.Fatalf("error = %v, want enrollment rejection", err)
		}
	})

	t.Run("matching claim is accepted", func(t *testing.T) {
		got, err := classScope(enrolled, enrolled)
		if err != nil || got != enrolled {
			t.Fatalf("got %v, %v, want the enrolled class", got, err)
		}
	})

	t.Run("no claim falls back to enrollment", func(t *testing.T) {
		got, err := classScope(uuid.Nil, enrolled)
		if err != nil || got != enrolled {
			t.Fatalf("got %v, %v, want the enrolled class", got, err)
		}
	})
}

func TestRequireModificationReason(t *testing.T) {
	if err := requireModificationReason(""); err == nil {
		t.Errorf("empty reason accepted")
	}
	if err := requireModificationReason("   \t"); err == nil {
		t.Errorf("whitespace reason accepted")
	}
	if err := requireModificationReason("re-totalled after review"); err != nil {
		t.Errorf("valid reason rejected: %v", err)
	}
}

func TestGradeInputsChanged(t *testing.T) {
	gradeID := uuid.New()
	stored := &resultModel.ExamResultModel{
		ExamResultMarksObtained:     f(70),
		ExamResultGradeDefinitionID: &gradeID,
	}

	tests := []struct {
		name     string
		newMarks *float64
		in       UpsertResultInput
		want     bool
	}{
		{
			name:     "remarks-only update keeps the stored grade",
			newMarks: f(70),
			in:       UpsertResultInput{Remarks: s("moderated")},
		},
		{
			name:     "same explicit grade id is no change",
			newMarks: f(70),
			in:       UpsertResultInput{GradeDefinitionID: &gradeID},
		},
		{
			name:     "changed marks recompute",
			newMarks: f(80),
			in:       UpsertResultInput{},
			want:     true,
		},
		{
			name:     "absence flip recomputes",
			newMarks: nil,
			in:       UpsertResultInput{IsAbsent: true},
			want:     true,
		},
		{
			name:     "different explicit grade id recomputes",
			newMarks: f(70),
			in:       UpsertResultInput{GradeDefinitionID: u(uuid.New())},
			want:     true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeInputsChanged(stored, tt.newMarks, tt.in); got != tt.want {
				t.Errorf("gradeInputsChanged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildResultDefaultScalePath(t *testing.T) {
	scale := testScale()
	store := &ResultStore{Scales: &fakeScaleSource{scale: scale}}
	ctx := &slotContext{AcademicYear: "2026/2027"}
	ctx.Subject.SubjectMaxMarks = 100
	ctx.Subject.SubjectPassMarks = 40
	actor := Actor{UserID: uuid.New(), Role: "teacher"}

	t.Run("marks resolve to graded draft", func(t *testing.T) {
		m, err := store.buildResult(UpsertResultInput{
			ExamSlotID:    uuid.New(),
			StudentID:     uuid.New(),
			MarksObtained: f(85),
		}, ctx, actor)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if m.ExamResultStatus != resultModel.ExamResultStatusDraft {
			t.Errorf("status = %s, want DRAFT", m.ExamResultStatus)
		}
		if m.ExamResultGradeLabel == nil || *m.ExamResultGradeLabel != "A" {
			t.Errorf("grade label = %v, want A", m.ExamResultGradeLabel)
		}
		if !m.ExamResultIsPassed {
			t.Errorf("expected passing result")
		}
		if m.ExamResultGradedBy != actor.UserID {
			t.Errorf("graded_by = %s, want actor", m.ExamResultGradedBy)
		}
	})

	t.Run("absent drops marks and grade", func(t *testing.T) {
		m, err := store.buildResult(UpsertResultInput{
			ExamSlotID:    uuid.New(),
			StudentID:     uuid.New(),
			MarksObtained: f(90),
			IsAbsent:      true,
		}, ctx, actor)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if m.ExamResultMarksObtained != nil {
			t.Errorf("marks kept for absent student")
		}
		if m.ExamResultGradeLabel != nil {
			t.Errorf("grade computed for absent student")
		}
		if m.ExamResultIsPassed {
			t.Errorf("absent student marked as passed")
		}
	})

	t.Run("no default scale leaves grade unresolved", func(t *testing.T) {
		bare := &ResultStore{Scales: &fakeScaleSource{}}
		m, err := bare.buildResult(UpsertResultInput{
			ExamSlotID:    uuid.New(),
			StudentID:     uuid.New(),
			MarksObtained: f(85),
		}, ctx, actor)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if m.ExamResultGradeLabel != nil || m.ExamResultGradeDefinitionID != nil {
			t.Errorf("grade resolved without a scale")
		}
		if !m.ExamResultIsPassed {
			t.Errorf("pass flag should not depend on the scale")
		}
	})
}
