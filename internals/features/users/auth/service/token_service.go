// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"medicku_backend/internals/configs"
	userModel "medicku_backend/internals/features/users/model"
	"medicku_backend/internals/helpers/errs"
)

// Access tokens are short-lived on purpose; there is no refresh flow.
const accessTokenTTL = time.Hour

// IssueAccessToken signs a 1-hour HS256 token for the user. The role claim
// is informational for clients; authorization always re-reads the users
// table.
func IssueAccessToken(user *userModel.UserModel, now time.Time) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errs.Internal("JWT secret is not configured", nil)
	}

	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errs.Internal("failed to sign token", err)
	}
	return signed, nil
}
