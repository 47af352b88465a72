// file: internals/features/school/grading/scales/service/definition_validator_test.go
package service

import (
	"strings"
	"testing"

	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

func band(label string, min, max float64) scaleModel.GradeDefinitionModel {
	return scaleModel.GradeDefinitionModel{
		GradeDefinitionLabel:    label,
		GradeDefinitionMinMarks: min,
		GradeDefinitionMaxMarks: max,
	}
}

func TestValidateGradeDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		defs    []scaleModel.GradeDefinitionModel
		wantErr string
	}{
		{
			name:    "empty set rejected",
			defs:    nil,
			wantErr: "at least one",
		},
		{
			name: "valid non-touching bands",
			defs: []scaleModel.GradeDefinitionModel{
				band("A", 80, 100),
				band("B", 60, 79.99),
				band("C", 0, 59.99),
			},
		},
		{
			name: "single full-range band",
			defs: []scaleModel.GradeDefinitionModel{band("PASS", 0, 100)},
		},
		{
			name: "min greater than max rejected",
			defs: []scaleModel.GradeDefinitionModel{
				band("A", 90, 80),
			},
			wantErr: "min",
		},
		{
			name: "blank label rejected",
			defs: []scaleModel.GradeDefinitionModel{
				band("  ", 0, 100),
			},
			wantErr: "label",
		},
		{
			name: "duplicate label rejected case-insensitively",
			defs: []scaleModel.GradeDefinitionModel{
				band("a", 0, 50),
				band("A", 51, 100),
			},
			wantErr: "duplicate",
		},
		{
			name: "overlapping bands rejected",
			defs: []scaleModel.GradeDefinitionModel{
				band("A", 70, 100),
				band("B", 50, 75),
			},
			wantErr: "overlap",
		},
		{
			name: "shared boundary counts as overlap",
			defs: []scaleModel.GradeDefinitionModel{
				band("A", 80, 100),
				band("B", 60, 80),
			},
			wantErr: "overlap",
		},
		{
			name: "band inside another rejected",
			defs: []scaleModel.GradeDefinitionModel{
				band("A", 0, 100),
				band("B", 40, 60),
			},
			wantErr: "overlap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGradeDefinitions(tt.defs)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
