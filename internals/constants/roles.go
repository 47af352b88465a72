package constants

import "fmt"

// Role names as carried in the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// Role error message templates.
const (
	ErrOnlyTeachersCanAccess = "Only teacher, admin, or owner may access %s."
	ErrOnlyAdminsCanAccess   = "Only admin or owner may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleOwner,
		RoleTeacher,
		RoleStaff,
		RoleStudent,
	}

	// AdminTier covers roles that bypass per-subject grading permissions.
	AdminTier = []string{
		RoleAdmin,
		RoleOwner,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}
)

// IsAdminTier reports whether the role bypasses the permission matrix.
func IsAdminTier(role string) bool {
	for _, r := range AdminTier {
		if r == role {
			return true
		}
	}
	return false
}
