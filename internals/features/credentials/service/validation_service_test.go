// file: internals/features/credentials/service/validation_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicku_backend/internals/constants"
	credModel "medicku_backend/internals/features/credentials/model"
	userModel "medicku_backend/internals/features/users/model"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newUser(role userModel.UserRole, status userModel.UserStatus) *userModel.UserModel {
	return &userModel.UserModel{ID: uuid.New(), Role: role, Status: status}
}

func newCred(owner *userModel.UserModel) *credModel.AcademicCredentialModel {
	return &credModel.AcademicCredentialModel{
		ID:             uuid.New(),
		UserID:         owner.ID,
		Institution:    "UNAM",
		Career:         "Medicine",
		AcademicGrade:  "5th year",
		RegisterNumber: "316001234",
	}
}

func callerOf(u *userModel.UserModel) helperAuth.Caller {
	return helperAuth.Caller{ID: u.ID, Role: u.Role}
}

func TestApproveProfessional(t *testing.T) {
	admin := newUser(userModel.RoleAdmin, userModel.StatusApproved)
	professional := newUser(userModel.RoleProfessional, userModel.StatusPreApproved)
	cred := newCred(professional)

	require.NoError(t, ApproveProfessional(callerOf(admin), professional, cred, now))
	assert.Equal(t, userModel.StatusApproved, professional.Status)
	assert.Equal(t, admin.ID, *cred.ValidatedByID)
	assert.Equal(t, now, *cred.ValidatedAt)

	t.Run("already approved cannot be approved again", func(t *testing.T) {
		err := ApproveProfessional(callerOf(admin), professional, cred, now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		target := newUser(userModel.RoleProfessional, userModel.StatusPreApproved)
		c := newCred(target)
		err := ApproveProfessional(callerOf(professional), target, c, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
		assert.Equal(t, userModel.StatusPreApproved, target.Status)
		assert.Nil(t, c.ValidatedByID)
	})

	t.Run("missing credential", func(t *testing.T) {
		target := newUser(userModel.RoleProfessional, userModel.StatusPreApproved)
		err := ApproveProfessional(callerOf(admin), target, nil, now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Equal(t, userModel.StatusPreApproved, target.Status)
	})

	t.Run("students are not approved this way", func(t *testing.T) {
		target := newUser(userModel.RoleStudent, userModel.StatusPreApproved)
		err := ApproveProfessional(callerOf(admin), target, newCred(target), now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})
}

func TestRequestValidation(t *testing.T) {
	student := newUser(userModel.RoleStudent, userModel.StatusPreApproved)
	professional := newUser(userModel.RoleProfessional, userModel.StatusApproved)
	cred := newCred(student)

	require.NoError(t, RequestValidation(callerOf(student), student, professional, cred, now))
	assert.Equal(t, professional.ID, *cred.RequestedProfessionalID)
	assert.Equal(t, now, *cred.RequestedAt)

	t.Run("one outstanding request at a time", func(t *testing.T) {
		other := newUser(userModel.RoleProfessional, userModel.StatusApproved)
		err := RequestValidation(callerOf(student), student, other, cred, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindConflict))
		assert.Equal(t, professional.ID, *cred.RequestedProfessionalID)
	})

	t.Run("professional must be approved", func(t *testing.T) {
		s := newUser(userModel.RoleStudent, userModel.StatusPreApproved)
		c := newCred(s)
		pending := newUser(userModel.RoleProfessional, userModel.StatusPreApproved)
		err := RequestValidation(callerOf(s), s, pending, c, now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Nil(t, c.RequestedProfessionalID)
	})

	t.Run("approved students do not request again", func(t *testing.T) {
		s := newUser(userModel.RoleStudent, userModel.StatusApproved)
		err := RequestValidation(callerOf(s), s, professional, newCred(s), now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})
}

func TestResolveStudentRequest(t *testing.T) {
	professional := newUser(userModel.RoleProfessional, userModel.StatusApproved)

	pendingRequest := func() (*userModel.UserModel, *credModel.AcademicCredentialModel) {
		student := newUser(userModel.RoleStudent, userModel.StatusPreApproved)
		cred := newCred(student)
		require.NoError(t, RequestValidation(callerOf(student), student, professional, cred, now))
		return student, cred
	}

	t.Run("approve stamps validation and clears the pair", func(t *testing.T) {
		student, cred := pendingRequest()
		require.NoError(t, ResolveStudentRequest(callerOf(professional), student, cred, constants.ActionApprove, now))
		assert.Equal(t, userModel.StatusApproved, student.Status)
		assert.Equal(t, professional.ID, *cred.ValidatedByID)
		assert.Equal(t, now, *cred.ValidatedAt)
		assert.Nil(t, cred.RequestedProfessionalID)
		assert.Nil(t, cred.RequestedAt)
	})

	t.Run("reject clears the pair and keeps the status", func(t *testing.T) {
		student, cred := pendingRequest()
		require.NoError(t, ResolveStudentRequest(callerOf(professional), student, cred, constants.ActionReject, now))
		assert.Equal(t, userModel.StatusPreApproved, student.Status)
		assert.Nil(t, cred.ValidatedByID)
		assert.Nil(t, cred.RequestedProfessionalID)

		// A rejected student may request the same professional again.
		require.NoError(t, RequestValidation(callerOf(student), student, professional, cred, now))
	})

	t.Run("only the requested professional may resolve", func(t *testing.T) {
		student, cred := pendingRequest()
		other := newUser(userModel.RoleProfessional, userModel.StatusApproved)
		err := ResolveStudentRequest(callerOf(other), student, cred, constants.ActionApprove, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
		assert.Equal(t, professional.ID, *cred.RequestedProfessionalID)
		assert.Equal(t, userModel.StatusPreApproved, student.Status)
	})

	t.Run("invalid action keeps the request pending", func(t *testing.T) {
		student, cred := pendingRequest()
		err := ResolveStudentRequest(callerOf(professional), student, cred, constants.ResolveAction("later"), now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.NotNil(t, cred.RequestedProfessionalID)
	})
}
