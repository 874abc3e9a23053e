package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{Validation("BAD_FIELD", "missing field"), fiber.StatusBadRequest},
		{Conflict("DUP", "duplicate"), fiber.StatusConflict},
		{Auth("BAD_CREDS", "invalid credentials"), fiber.StatusUnauthorized},
		{Forbidden("WRONG_ROLE", "not allowed"), fiber.StatusForbidden},
		{NotFound("NO_USER", "user not found"), fiber.StatusNotFound},
		{Internal("boom", nil), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPStatus(), tc.err.Code)
	}
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	base := Conflict("PENDING_REQUEST", "a request is already pending")
	wrapped := fmt.Errorf("resolve patient request: %w", base)

	ae, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, ae.Kind)
	assert.Equal(t, "PENDING_REQUEST", ae.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := Internal("commit failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "commit failed")
	assert.True(t, IsKind(err, KindInternal))
	assert.False(t, IsKind(err, KindAuth))
}
