// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medicku_backend/internals/configs"
	userModel "medicku_backend/internals/features/users/model"
	helper "medicku_backend/internals/helpers"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/logger"
)

// AuthMiddleware verifies the bearer JWT, confirms the user still exists and
// is active, and stores id + role in Locals for the role gate and the
// controllers. The role stored here comes from the users table, not from the
// token, so a stale token can never smuggle in an old role.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			logger.L().Error("JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid subject")
		}

		var user userModel.UserModel
		if err := db.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - user not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
		}

		c.Locals(helperAuth.LocalsUserID, user.ID.String())
		c.Locals(helperAuth.LocalsUserRole, string(user.Role))
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, prefix) {
		if tok := strings.TrimSpace(auth[len(prefix):]); tok != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(c.Cookies("access_token")); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - missing bearer token")
}
