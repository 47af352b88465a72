// file: internals/features/school/grading/scales/dto/grading_scale_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/grading/scales/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateGradeDefinitionRequest struct {
	Label    string  `json:"grade_definition_label" validate:"required,min=1,max=16"`
	MinMarks float64 `json:"grade_definition_min_marks" validate:"min=0,max=100"`
	MaxMarks float64 `json:"grade_definition_max_marks" validate:"min=0,max=100"`

	GradePoint *float64 `json:"grade_definition_grade_point" validate:"omitempty,min=0"`
	Color      *string  `json:"grade_definition_color" validate:"omitempty,max=16"`
}

type CreateGradingScaleRequest struct {
	Name         string  `json:"grading_scale_name" validate:"required,min=1,max=120"`
	AcademicYear string  `json:"grading_scale_academic_year" validate:"required,min=4,max=20"`
	IsDefault    bool    `json:"grading_scale_is_default"`
	Description  *string `json:"grading_scale_description"`

	Definitions []CreateGradeDefinitionRequest `json:"grading_scale_definitions" validate:"required,min=1,dive"`
}

func (r *CreateGradingScaleRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
	for i := range r.Definitions {
		r.Definitions[i].Label = strings.TrimSpace(r.Definitions[i].Label)
	}
}

func (r CreateGradingScaleRequest) ToModels() (m.GradingScaleModel, []m.GradeDefinitionModel) {
	scale := m.GradingScaleModel{
		GradingScaleName:         r.Name,
		GradingScaleAcademicYear: r.AcademicYear,
		GradingScaleIsDefault:    r.IsDefault,
		GradingScaleDescription:  r.Description,
	}
	defs := make([]m.GradeDefinitionModel, 0, len(r.Definitions))
	for _, d := range r.Definitions {
		defs = append(defs, m.GradeDefinitionModel{
			GradeDefinitionLabel:      d.Label,
			GradeDefinitionMinMarks:   d.MinMarks,
			GradeDefinitionMaxMarks:   d.MaxMarks,
			GradeDefinitionGradePoint: d.GradePoint,
			GradeDefinitionColor:      d.Color,
		})
	}
	return scale, defs
}

/* =========================================================
   RESPONSES
   ========================================================= */

type GradeDefinitionResponse struct {
	ID         uuid.UUID `json:"grade_definition_id"`
	Label      string    `json:"grade_definition_label"`
	MinMarks   float64   `json:"grade_definition_min_marks"`
	MaxMarks   float64   `json:"grade_definition_max_marks"`
	GradePoint *float64  `json:"grade_definition_grade_point,omitempty"`
	Color      *string   `json:"grade_definition_color,omitempty"`
}

type GradingScaleResponse struct {
	ID           uuid.UUID                 `json:"grading_scale_id"`
	Name         string                    `json:"grading_scale_name"`
	AcademicYear string                    `json:"grading_scale_academic_year"`
	IsDefault    bool                      `json:"grading_scale_is_default"`
	Description  *string                   `json:"grading_scale_description,omitempty"`
	CreatedAt    time.Time                 `json:"grading_scale_created_at"`
	Definitions  []GradeDefinitionResponse `json:"grading_scale_definitions"`
}

func FromGradingScaleModel(s m.GradingScaleModel) GradingScaleResponse {
	defs := make([]GradeDefinitionResponse, 0, len(s.GradingScaleDefinitions))
	for _, d := range s.GradingScaleDefinitions {
		defs = append(defs, GradeDefinitionResponse{
			ID:         d.GradeDefinitionID,
			Label:      d.GradeDefinitionLabel,
			MinMarks:   d.GradeDefinitionMinMarks,
			MaxMarks:   d.GradeDefinitionMaxMarks,
			GradePoint: d.GradeDefinitionGradePoint,
			Color:      d.GradeDefinitionColor,
		})
	}
	return GradingScaleResponse{
		ID:           s.GradingScaleID,
		Name:         s.GradingScaleName,
		AcademicYear: s.GradingScaleAcademicYear,
		IsDefault:    s.GradingScaleIsDefault,
		Description:  s.GradingScaleDescription,
		CreatedAt:    s.GradingScaleCreatedAt,
		Definitions:  defs,
	}
}

func FromGradingScaleModels(rows []m.GradingScaleModel) []GradingScaleResponse {
	out := make([]GradingScaleResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, FromGradingScaleModel(s))
	}
	return out
}
