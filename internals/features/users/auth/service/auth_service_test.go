// file: internals/features/users/auth/service/auth_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	fileModel "medicku_backend/internals/features/medicalfiles/model"
	authDTO "medicku_backend/internals/features/users/auth/dto"
	userModel "medicku_backend/internals/features/users/model"
	"medicku_backend/internals/helpers/errs"
)

func strPtr(v string) *string { return &v }

func registerReq(role string) authDTO.RegisterRequest {
	return authDTO.RegisterRequest{
		FirstName:    "Ana",
		FirstSurname: "Ruiz",
		BirthDay:     "1999-06-01",
		Email:        "ana@example.com",
		Password:     "secret-password",
		Role:         role,
	}
}

func withCredential(req authDTO.RegisterRequest) authDTO.RegisterRequest {
	req.Institution = strPtr("UNAM")
	req.Career = strPtr("Medicine")
	req.AcademicGrade = strPtr("5th year")
	req.RegisterNumber = strPtr("316001234")
	return req
}

func TestBuildRegistration_Patient(t *testing.T) {
	reg, err := BuildRegistration(registerReq("patient"), "hashed")
	require.NoError(t, err)

	assert.Equal(t, userModel.RolePatient, reg.User.Role)
	assert.Equal(t, userModel.StatusApproved, reg.User.Status)
	assert.Equal(t, "hashed", reg.User.Password)
	assert.True(t, reg.User.IsActive)
	assert.Equal(t, "1999-06-01", reg.User.BirthDay.Format("2006-01-02"))

	// Exactly one file, already empty; no credential for patients.
	require.NotNil(t, reg.File)
	assert.Equal(t, fileModel.FileStatusEmpty, reg.File.FileStatus)
	assert.Nil(t, reg.Credential)
}

func TestBuildRegistration_GatedRoles(t *testing.T) {
	for _, role := range []string{"student", "professional"} {
		t.Run(role, func(t *testing.T) {
			reg, err := BuildRegistration(withCredential(registerReq(role)), "hashed")
			require.NoError(t, err)

			assert.Equal(t, userModel.StatusPreApproved, reg.User.Status)
			require.NotNil(t, reg.Credential)
			assert.Equal(t, "UNAM", reg.Credential.Institution)
			assert.Equal(t, "316001234", reg.Credential.RegisterNumber)
			assert.Nil(t, reg.File)
		})
	}

	t.Run("admin needs no credential and starts approved", func(t *testing.T) {
		reg, err := BuildRegistration(registerReq("admin"), "hashed")
		require.NoError(t, err)
		assert.Equal(t, userModel.StatusApproved, reg.User.Status)
		assert.Nil(t, reg.Credential)
		assert.Nil(t, reg.File)
	})
}

// A student or professional without a complete credential must produce no
// rows at all.
func TestBuildRegistration_MissingCredentialFields(t *testing.T) {
	for _, role := range []string{"student", "professional"} {
		t.Run(role, func(t *testing.T) {
			reg, err := BuildRegistration(registerReq(role), "hashed")
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindValidation))
			assert.Equal(t, Registration{}, reg)
		})
	}

	t.Run("partially filled credential", func(t *testing.T) {
		req := registerReq("student")
		req.Institution = strPtr("UNAM")
		req.Career = strPtr("")
		_, err := BuildRegistration(req, "hashed")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})
}

func TestBuildRegistration_BadInput(t *testing.T) {
	t.Run("unknown role", func(t *testing.T) {
		_, err := BuildRegistration(registerReq("doctor"), "hashed")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})

	t.Run("malformed birth day", func(t *testing.T) {
		req := registerReq("patient")
		req.BirthDay = "06/01/1999"
		_, err := BuildRegistration(req, "hashed")
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})
}

// A duplicate email that slips past the pre-check and hits the unique index
// must still come back as a conflict, not a 500.
func TestMapCreateUserErr(t *testing.T) {
	err := mapCreateUserErr(gorm.ErrDuplicatedKey)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindConflict))

	ae, ok := errs.As(err)
	require.True(t, ok)
	assert.Equal(t, "EMAIL_TAKEN", ae.Code)

	other := mapCreateUserErr(errors.New("connection reset"))
	assert.True(t, errs.IsKind(other, errs.KindInternal))
}
