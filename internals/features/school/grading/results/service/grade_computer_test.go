// file: internals/features/school/grading/results/service/grade_computer_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

func f(v float64) *float64 { return &v }

func s(v string) *string { return &v }

func u(v uuid.UUID) *uuid.UUID { return &v }

func testScale() *scaleModel.GradingScaleModel {
	mk := func(label string, min, max float64) scaleModel.GradeDefinitionModel {
		return scaleModel.GradeDefinitionModel{
			GradeDefinitionID:       uuid.New(),
			GradeDefinitionLabel:    label,
			GradeDefinitionMinMarks: min,
			GradeDefinitionMaxMarks: max,
		}
	}
	return &scaleModel.GradingScaleModel{
		GradingScaleID:   uuid.New(),
		GradingScaleName: "Standard",
		GradingScaleDefinitions: []scaleModel.GradeDefinitionModel{
			mk("A", 80, 100),
			mk("B", 60, 79.99),
			mk("C", 40, 59.99),
			mk("F", 0, 39.99),
		},
	}
}

func TestComputeGrade(t *testing.T) {
	scale := testScale()

	tests := []struct {
		name      string
		marks     *float64
		isAbsent  bool
		maxMarks  float64
		passMarks float64
		scale     *scaleModel.GradingScaleModel
		wantLabel string
		wantPass  bool
	}{
		{
			name:  "absent student gets no grade and fails",
			marks: f(90), isAbsent: true, maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "", wantPass: false,
		},
		{
			name:  "nil marks gets no grade and fails",
			marks: nil, maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "", wantPass: false,
		},
		{
			name:  "top band inclusive upper bound",
			marks: f(100), maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "A", wantPass: true,
		},
		{
			name:  "band lower bound is inclusive",
			marks: f(80), maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "A", wantPass: true,
		},
		{
			name:  "pass mark boundary passes",
			marks: f(40), maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "C", wantPass: true,
		},
		{
			name:  "just below pass mark fails",
			marks: f(39.5), maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "F", wantPass: false,
		},
		{
			name:  "zero marks lands in lowest band",
			marks: f(0), maxMarks: 100, passMarks: 40, scale: scale,
			wantLabel: "F", wantPass: false,
		},
		{
			name:  "percentage computed against subject max",
			marks: f(45), maxMarks: 50, passMarks: 20, scale: scale,
			wantLabel: "A", wantPass: true,
		},
		{
			name:  "nil scale leaves grade unresolved but pass flag set",
			marks: f(70), maxMarks: 100, passMarks: 40, scale: nil,
			wantLabel: "", wantPass: true,
		},
		{
			name:  "non-positive max marks leaves grade unresolved",
			marks: f(70), maxMarks: 0, passMarks: 0, scale: scale,
			wantLabel: "", wantPass: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGrade(tt.marks, tt.isAbsent, tt.maxMarks, tt.passMarks, tt.scale)

			if got.IsPassed != tt.wantPass {
				t.Errorf("IsPassed = %v, want %v", got.IsPassed, tt.wantPass)
			}
			if tt.wantLabel == "" {
				if got.GradeLabel != nil {
					t.Errorf("GradeLabel = %q, want nil", *got.GradeLabel)
				}
				if got.GradeDefinitionID != nil {
					t.Errorf("GradeDefinitionID = %v, want nil", got.GradeDefinitionID)
				}
				return
			}
			if got.GradeLabel == nil {
				t.Fatalf("GradeLabel = nil, want %q", tt.wantLabel)
			}
			if *got.GradeLabel != tt.wantLabel {
				t.Errorf("GradeLabel = %q, want %q", *got.GradeLabel, tt.wantLabel)
			}
			if got.GradeDefinitionID == nil {
				t.Errorf("GradeDefinitionID = nil, want set")
			}
		})
	}
}
