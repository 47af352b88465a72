// file: internals/features/school/grading/scales/service/definition_validator.go
package service

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	scaleModel "sekolahku_backend/internals/features/school/grading/scales/model"
)

// ValidateGradeDefinitions checks a proposed set of grade bands:
// labels unique within the scale, [min,max] intervals pairwise disjoint.
// Validation is all-or-nothing; the first conflict found is reported.
func ValidateGradeDefinitions(defs []scaleModel.GradeDefinitionModel) error {
	if len(defs) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "A grading scale needs at least one grade definition")
	}

	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		label := strings.ToUpper(strings.TrimSpace(d.GradeDefinitionLabel))
		if label == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Grade label must not be empty")
		}
		if d.GradeDefinitionMinMarks > d.GradeDefinitionMaxMarks {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Grade %q: min marks %.2f exceed max marks %.2f",
					d.GradeDefinitionLabel, d.GradeDefinitionMinMarks, d.GradeDefinitionMaxMarks))
		}
		if _, dup := seen[label]; dup {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Duplicate grade label %q in scale", d.GradeDefinitionLabel))
		}
		seen[label] = struct{}{}
	}

	// Pairwise interval overlap: a.min <= b.max && a.max >= b.min
	for i := 0; i < len(defs); i++ {
		for j := i + 1; j < len(defs); j++ {
			a, b := defs[i], defs[j]
			if a.GradeDefinitionMinMarks <= b.GradeDefinitionMaxMarks &&
				a.GradeDefinitionMaxMarks >= b.GradeDefinitionMinMarks {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Grade ranges overlap: %q [%.2f, %.2f] and %q [%.2f, %.2f]",
						a.GradeDefinitionLabel, a.GradeDefinitionMinMarks, a.GradeDefinitionMaxMarks,
						b.GradeDefinitionLabel, b.GradeDefinitionMinMarks, b.GradeDefinitionMaxMarks))
			}
		}
	}

	return nil
}
