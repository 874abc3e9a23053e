// file: internals/features/credentials/dto/credential_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	credModel "medicku_backend/internals/features/credentials/model"
)

func TestNewCredentialResponse(t *testing.T) {
	professionalID := uuid.New()
	requestedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	cred := credModel.AcademicCredentialModel{
		ID:                      uuid.New(),
		UserID:                  uuid.New(),
		Institution:             "UNAM",
		Career:                  "Medicine",
		AcademicGrade:           "5th year",
		RegisterNumber:          "316001234",
		RequestedProfessionalID: &professionalID,
		RequestedAt:             &requestedAt,
	}

	resp := NewCredentialResponse(cred)

	assert.Equal(t, cred.ID, resp.ID)
	assert.Equal(t, cred.UserID, resp.UserID)
	assert.Equal(t, "UNAM", resp.Institution)
	assert.Equal(t, "316001234", resp.RegisterNumber)
	assert.Equal(t, professionalID, *resp.RequestedProfessionalID)
	assert.Equal(t, requestedAt, *resp.RequestedAt)
	assert.Nil(t, resp.ValidatedByID)
	assert.Nil(t, resp.ValidatedAt)
}
