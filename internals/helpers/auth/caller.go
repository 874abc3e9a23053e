// file: internals/helpers/auth/caller.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	userModel "medicku_backend/internals/features/users/model"
	"medicku_backend/internals/helpers/errs"
)

// Caller is the authenticated principal every workflow operation receives
// explicitly. It is built once by the auth middleware; services never read
// request state themselves.
type Caller struct {
	ID   uuid.UUID
	Role userModel.UserRole
}

const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "user_role"
)

// GetCaller rebuilds the Caller from the locals the auth middleware stored.
func GetCaller(c *fiber.Ctx) (Caller, error) {
	idStr, ok := c.Locals(LocalsUserID).(string)
	if !ok || idStr == "" {
		return Caller{}, errs.Auth("MISSING_IDENTITY", "Missing caller identity")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Caller{}, errs.Auth("BAD_IDENTITY", "Invalid caller identity")
	}
	roleStr, _ := c.Locals(LocalsUserRole).(string)
	role, ok := userModel.ParseUserRole(roleStr)
	if !ok {
		return Caller{}, errs.Auth("MISSING_ROLE", "Missing caller role")
	}
	return Caller{ID: id, Role: role}, nil
}
