// internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the AuthJWT middleware.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocTeacherID = "teacher_id"
	LocUserName  = "user_name"
)

// GetUserIDFromToken returns the authenticated user id or a 401 fiber error.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetRoleFromToken returns the role claim ("" when absent).
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return strings.ToLower(strings.TrimSpace(role))
}

// GetTeacherIDFromToken returns the teacher id claim when the session belongs
// to a teacher account; uuid.Nil otherwise.
func GetTeacherIDFromToken(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals(LocTeacherID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
