// file: internals/features/school/grading/permissions/service/permission_evaluator.go
package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classModel "sekolahku_backend/internals/features/school/academics/classes/model"
	peopleModel "sekolahku_backend/internals/features/school/academics/people/model"
	permModel "sekolahku_backend/internals/features/school/grading/permissions/model"
)

/* =========================================================
   Decision: tagged result instead of throwing across layers
   ========================================================= */

type Decision struct {
	Allowed bool
	Reason  string
}

func Allowed() Decision             { return Decision{Allowed: true} }
func Denied(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Err converts a denial into a 403 fiber error (nil when allowed).
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, d.Reason)
}

/* =========================================================
   GrantSource: storage lookups, interface so it is easy to
   swap a fake in tests
   ========================================================= */

type GrantSource interface {
	// TeacherByUserID returns the active (non-soft-deleted) teacher record
	// for a user, or nil when none exists.
	TeacherByUserID(userID uuid.UUID) (*peopleModel.TeacherModel, error)
	// ExplicitGrant returns the grant row for the triple, or nil.
	ExplicitGrant(teacherID, subjectID, classID uuid.UUID) (*permModel.GradingPermissionModel, error)
	// IsAssignedTeacher reports whether the teacher is on the class-subject
	// roster for the pair.
	IsAssignedTeacher(teacherID, subjectID, classID uuid.UUID) (bool, error)
}

type gormGrantSource struct {
	db *gorm.DB
}

func (s *gormGrantSource) TeacherByUserID(userID uuid.UUID) (*peopleModel.TeacherModel, error) {
	var t peopleModel.TeacherModel
	err := s.db.First(&t, "teacher_user_id = ? AND teacher_is_active = TRUE", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *gormGrantSource) ExplicitGrant(teacherID, subjectID, classID uuid.UUID) (*permModel.GradingPermissionModel, error) {
	var g permModel.GradingPermissionModel
	err := s.db.First(&g,
		"grading_permission_teacher_id = ? AND grading_permission_subject_id = ? AND grading_permission_class_id = ?",
		teacherID, subjectID, classID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *gormGrantSource) IsAssignedTeacher(teacherID, subjectID, classID uuid.UUID) (bool, error) {
	var cnt int64
	err := s.db.Model(&classModel.ClassSubjectModel{}).
		Where(`class_subject_teacher_id = ?
			AND class_subject_subject_id = ?
			AND class_subject_class_id = ?
			AND class_subject_is_active = TRUE
			AND class_subject_deleted_at IS NULL`,
			teacherID, subjectID, classID).
		Count(&cnt).Error
	return cnt > 0, err
}

/* =========================================================
   PermissionEvaluator
   ========================================================= */

// PermissionEvaluator decides grade/modify access for a (subject, class)
// pair. The asymmetry is deliberate: any assigned teacher may enter grades,
// amending recorded grades needs an explicit modify grant.
type PermissionEvaluator struct {
	Source GrantSource
}

func NewPermissionEvaluator(db *gorm.DB) *PermissionEvaluator {
	return &PermissionEvaluator{Source: &gormGrantSource{db: db}}
}

// CanGrade: admin tier unconditionally; teacher via explicit can_grade grant
// OR class-subject assignment. Missing teacher record is a denial, not an
// error.
func (e *PermissionEvaluator) CanGrade(role string, userID, subjectID, classID uuid.UUID) (Decision, error) {
	if constants.IsAdminTier(role) {
		return Allowed(), nil
	}
	if role != constants.RoleTeacher {
		return Denied("Role may not grade results"), nil
	}

	teacher, err := e.Source.TeacherByUserID(userID)
	if err != nil {
		return Decision{}, internalErr("teacher lookup", err)
	}
	if teacher == nil {
		return Denied("No active teacher record for this account"), nil
	}

	grant, err := e.Source.ExplicitGrant(teacher.TeacherID, subjectID, classID)
	if err != nil {
		return Decision{}, internalErr("grant lookup", err)
	}
	if grant != nil && grant.GradingPermissionCanGrade {
		return Allowed(), nil
	}

	assigned, err := e.Source.IsAssignedTeacher(teacher.TeacherID, subjectID, classID)
	if err != nil {
		return Decision{}, internalErr("assignment lookup", err)
	}
	if assigned {
		return Allowed(), nil
	}
	return Denied("No grading permission for this subject and class"), nil
}

// CanModify: admin tier unconditionally; teacher ONLY via explicit can_modify
// grant; assignment alone is insufficient.
func (e *PermissionEvaluator) CanModify(role string, userID, subjectID, classID uuid.UUID) (Decision, error) {
	if constants.IsAdminTier(role) {
		return Allowed(), nil
	}
	if role != constants.RoleTeacher {
		return Denied("Role may not modify results"), nil
	}

	teacher, err := e.Source.TeacherByUserID(userID)
	if err != nil {
		return Decision{}, internalErr("teacher lookup", err)
	}
	if teacher == nil {
		return Denied("No active teacher record for this account"), nil
	}

	grant, err := e.Source.ExplicitGrant(teacher.TeacherID, subjectID, classID)
	if err != nil {
		return Decision{}, internalErr("grant lookup", err)
	}
	if grant != nil && grant.GradingPermissionCanModify {
		return Allowed(), nil
	}
	return Denied("Modifying a recorded result requires an explicit modify grant"), nil
}

func internalErr(step string, err error) error {
	log.Printf("[PermissionEvaluator] ERROR %s: %v", step, err)
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to evaluate grading permission")
}
