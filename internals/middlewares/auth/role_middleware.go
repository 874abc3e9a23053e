// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	userModel "medicku_backend/internals/features/users/model"
	helper "medicku_backend/internals/helpers"
	helperAuth "medicku_backend/internals/helpers/auth"
)

// OnlyRoles gates a route group to the given roles. The role was loaded from
// the users table by AuthMiddleware, so this is the single authorization
// check every protected operation goes through.
func OnlyRoles(customMessage string, roles ...userModel.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals(helperAuth.LocalsUserRole).(string)
		if !ok || roleStr == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		role, ok := userModel.ParseUserRole(roleStr)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: unknown role")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customMessage)
	}
}
