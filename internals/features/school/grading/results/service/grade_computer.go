// file: internals/features/school/grading/results/service/grade_computer.go
package service

import (
	"github.com/google/uuid"

	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

// GradeComputation is the derived part of a result.
type GradeComputation struct {
	GradeDefinitionID *uuid.UUID
	GradeLabel        *string
	IsPassed          bool
}

// ComputeGrade maps raw marks onto a scale.
//
//   - absent: no grade is computed and the result counts as not passed
//     (absent, not failed per se);
//   - otherwise percentage = marks/maxMarks*100 and the first band containing
//     it wins; bands are validated non-overlapping at scale creation, so
//     "first" is unambiguous;
//   - no scale, or no matching band: grade stays unresolved;
//   - isPassed = marks >= passMarks.
//
// Marks above maxMarks are rejected by callers before reaching this function.
// An explicit caller-supplied grade id always overrides the computed one;
// that override lives in the result store, not here.
func ComputeGrade(marksObtained *float64, isAbsent bool, maxMarks, passMarks float64, scale *scaleModel.GradingScaleModel) GradeComputation {
	if isAbsent || marksObtained == nil {
		return GradeComputation{IsPassed: false}
	}

	out := GradeComputation{
		IsPassed: *marksObtained >= passMarks,
	}

	if scale == nil || maxMarks <= 0 {
		return out
	}

	pct := *marksObtained / maxMarks * 100
	for i := range scale.GradingScaleDefinitions {
		d := &scale.GradingScaleDefinitions[i]
		if d.Contains(pct) {
			id := d.GradeDefinitionID
			label := d.GradeDefinitionLabel
			out.GradeDefinitionID = &id
			out.GradeLabel = &label
			break
		}
	}
	return out
}
