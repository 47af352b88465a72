// file: internals/features/school/grading/permissions/model/grading_permission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradingPermissionModel is an explicit per-(teacher, subject, class) grant.
// can_grade and can_modify are independent: entering new marks and amending
// recorded marks are granted separately. Absence of a row is not an error;
// a teacher may still grade through a class-subject assignment.
type GradingPermissionModel struct {
	GradingPermissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grading_permission_id" json:"grading_permission_id"`

	GradingPermissionTeacherID uuid.UUID `gorm:"type:uuid;not null;column:grading_permission_teacher_id;uniqueIndex:uq_grading_permissions_triple" json:"grading_permission_teacher_id"`
	GradingPermissionSubjectID uuid.UUID `gorm:"type:uuid;not null;column:grading_permission_subject_id;uniqueIndex:uq_grading_permissions_triple" json:"grading_permission_subject_id"`
	GradingPermissionClassID   uuid.UUID `gorm:"type:uuid;not null;column:grading_permission_class_id;uniqueIndex:uq_grading_permissions_triple" json:"grading_permission_class_id"`

	GradingPermissionCanGrade  bool `gorm:"not null;default:false;column:grading_permission_can_grade" json:"grading_permission_can_grade"`
	GradingPermissionCanModify bool `gorm:"not null;default:false;column:grading_permission_can_modify" json:"grading_permission_can_modify"`

	GradingPermissionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:grading_permission_created_at" json:"grading_permission_created_at"`
	GradingPermissionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:grading_permission_updated_at" json:"grading_permission_updated_at"`
	GradingPermissionDeletedAt gorm.DeletedAt `gorm:"column:grading_permission_deleted_at;index" json:"grading_permission_deleted_at,omitempty"`
}

func (GradingPermissionModel) TableName() string { return "grading_permissions" }
