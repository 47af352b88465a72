// file: internals/features/school/grading/permissions/dto/grading_permission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/grading/permissions/model"
)

type UpsertGradingPermissionRequest struct {
	TeacherID uuid.UUID `json:"grading_permission_teacher_id" validate:"required"`
	SubjectID uuid.UUID `json:"grading_permission_subject_id" validate:"required"`
	ClassID   uuid.UUID `json:"grading_permission_class_id" validate:"required"`

	CanGrade  bool `json:"grading_permission_can_grade"`
	CanModify bool `json:"grading_permission_can_modify"`
}

func (r UpsertGradingPermissionRequest) ToModel() m.GradingPermissionModel {
	return m.GradingPermissionModel{
		GradingPermissionTeacherID: r.TeacherID,
		GradingPermissionSubjectID: r.SubjectID,
		GradingPermissionClassID:   r.ClassID,
		GradingPermissionCanGrade:  r.CanGrade,
		GradingPermissionCanModify: r.CanModify,
	}
}

type GradingPermissionResponse struct {
	ID        uuid.UUID `json:"grading_permission_id"`
	TeacherID uuid.UUID `json:"grading_permission_teacher_id"`
	SubjectID uuid.UUID `json:"grading_permission_subject_id"`
	ClassID   uuid.UUID `json:"grading_permission_class_id"`
	CanGrade  bool      `json:"grading_permission_can_grade"`
	CanModify bool      `json:"grading_permission_can_modify"`
	UpdatedAt time.Time `json:"grading_permission_updated_at"`
}

func FromGradingPermissionModel(g m.GradingPermissionModel) GradingPermissionResponse {
	return GradingPermissionResponse{
		ID:        g.GradingPermissionID,
		TeacherID: g.GradingPermissionTeacherID,
		SubjectID: g.GradingPermissionSubjectID,
		ClassID:   g.GradingPermissionClassID,
		CanGrade:  g.GradingPermissionCanGrade,
		CanModify: g.GradingPermissionCanModify,
		UpdatedAt: g.GradingPermissionUpdatedAt,
	}
}

func FromGradingPermissionModels(rows []m.GradingPermissionModel) []GradingPermissionResponse {
	out := make([]GradingPermissionResponse, 0, len(rows))
	for _, g := range rows {
		out = append(out, FromGradingPermissionModel(g))
	}
	return out
}
