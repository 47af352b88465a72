// file: internals/features/school/grading/permissions/service/permission_evaluator_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
	peopleModel "sekolahku_backend/internals/features/school/academics/people/model"
	permModel "sekolahku_backend/internals/features/school/grading/permissions/model"
)

type fakeGrantSource struct {
	teacher  *peopleModel.TeacherModel
	grant    *permModel.GradingPermissionModel
	assigned bool
}

func (f *fakeGrantSource) TeacherByUserID(uuid.UUID) (*peopleModel.TeacherModel, error) {
	return f.teacher, nil
}

func (f *fakeGrantSource) ExplicitGrant(uuid.UUID, uuid.UUID, uuid.UUID) (*permModel.GradingPermissionModel, error) {
	return f.grant, nil
}

func (f *fakeGrantSource) IsAssignedTeacher(uuid.UUID, uuid.UUID, uuid.UUID) (bool, error) {
	return f.assigned, nil
}

func activeTeacher() *peopleModel.TeacherModel {
	return &peopleModel.TeacherModel{TeacherID: uuid.New(), TeacherIsActive: true}
}

func grant(canGrade, canModify bool) *permModel.GradingPermissionModel {
	return &permModel.GradingPermissionModel{
		GradingPermissionCanGrade:  canGrade,
		GradingPermissionCanModify: canModify,
	}
}

func TestCanGrade(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		source fakeGrantSource
		want   bool
	}{
		{
			name:   "admin always allowed",
			role:   constants.RoleAdmin,
			source: fakeGrantSource{},
			want:   true,
		},
		{
			name:   "owner always allowed",
			role:   constants.RoleOwner,
			source: fakeGrantSource{},
			want:   true,
		},
		{
			name:   "student denied",
			role:   constants.RoleStudent,
			source: fakeGrantSource{teacher: activeTeacher(), assigned: true},
			want:   false,
		},
		{
			name:   "staff denied even with assignment",
			role:   constants.RoleStaff,
			source: fakeGrantSource{teacher: activeTeacher(), assigned: true},
			want:   false,
		},
		{
			name:   "teacher without teacher record denied",
			role:   constants.RoleTeacher,
			source: fakeGrantSource{},
			want:   false,
		},
		{
			name:   "assigned teacher allowed without explicit grant",
			role:   constants.RoleTeacher,
			source: fakeGrantSource{teacher: activeTeacher(), assigned: true},
			want:   true,
		},
		{
			name:   "explicit can_grade grant allowed without assignment",
			role:   constants.RoleTeacher,
			source: fakeGrantSource{teacher: activeTeacher(), grant: grant(true, false)},
			want:   true,
		},
		{
			name:   "grant row without can_grade falls back to assignment",
			role:   constants.RoleTeacher,
			source: fakeGrantSource{teacher: activeTeacher(), grant: grant(false, true), assigned: true},
			want:   true,
		},
		{
			name:   "teacher with neither grant nor assignment denied",
			role:   constants.RoleTeacher,
			source: fakeGrantSource{teacher: activeTeacher()},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &PermissionEvaluator{Source: &tt.source}
			got, err := e.CanGrade(tt.role, uuid.New(), uuid.New(), uuid.New())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Allowed != tt.want {
				t.Errorf("Allowed = %v (reason %q), want %v", got.Allowed, got.Reason, tt.want)
			}
		})
	}
}

func TestCanModify(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		source fakeGrantSource
		want   bool
	}{
		{
			name:   "admin always allowed",
			role:   constants.RoleAdmin,
			source: fakeGrantSource{},
			want:   true,
		},
		{
			name: "assignment alone is not enough to modify",
			role: constants.RoleTeacher,
			source: fakeGrantSource{
				teacher:  activeTeacher(),
				assigned: true,
			},
			want: false,
		},
		{
			name: "can_grade grant does not imply can_modify",
			role: constants.RoleTeacher,
			source: fakeGrantSource{
				teacher: activeTeacher(),
				grant:   grant(true, false),
			},
			want: false,
		},
		{
			name: "explicit can_modify grant allowed",
			role: constants.RoleTeacher,
			source: fakeGrantSource{
				teacher: activeTeacher(),
				grant:   grant(false, true),
			},
			want: true,
		},
		{
			name:   "teacher without teacher record denied",
			role:   constants.RoleTeacher,
			source: fakeGrantSource{},
			want:   false,
		},
		{
			name:   "student denied",
			role:   constants.RoleStudent,
			source: fakeGrantSource{grant: grant(true, true)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &PermissionEvaluator{Source: &tt.source}
			got, err := e.CanModify(tt.role, uuid.New(), uuid.New(), uuid.New())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Allowed != tt.want {
				t.Errorf("Allowed = %v (reason %q), want %v", got.Allowed, got.Reason, tt.want)
			}
		})
	}
}

func TestDecisionErr(t *testing.T) {
	if err := Allowed().Err(); err != nil {
		t.Errorf("allowed decision produced error %v", err)
	}
	if err := Denied("nope").Err(); err == nil {
		t.Errorf("denied decision produced no error")
	}
}
