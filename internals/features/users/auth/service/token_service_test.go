// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicku_backend/internals/configs"
	userModel "medicku_backend/internals/features/users/model"
)

func TestIssueAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	user := &userModel.UserModel{
		ID:   uuid.New(),
		Role: userModel.RoleStudent,
	}
	now := time.Now().UTC().Truncate(time.Second)

	signed, err := IssueAccessToken(user, now)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "student", claims["role"])
	assert.EqualValues(t, now.Unix(), claims["iat"])
	assert.EqualValues(t, now.Add(time.Hour).Unix(), claims["exp"])
}

func TestIssueAccessToken_MissingSecret(t *testing.T) {
	configs.JWTSecret = ""

	_, err := IssueAccessToken(&userModel.UserModel{ID: uuid.New()}, time.Now())
	assert.Error(t, err)
}
