// file: internals/features/medicalfiles/service/workflow_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicku_backend/internals/constants"
	fileModel "medicku_backend/internals/features/medicalfiles/model"
	userModel "medicku_backend/internals/features/users/model"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newPatient() *userModel.UserModel {
	return &userModel.UserModel{
		ID:     uuid.New(),
		Role:   userModel.RolePatient,
		Status: userModel.StatusApproved,
	}
}

func newStudent(status userModel.UserStatus) *userModel.UserModel {
	return &userModel.UserModel{
		ID:     uuid.New(),
		Role:   userModel.RoleStudent,
		Status: status,
	}
}

func newFile(patient *userModel.UserModel) *fileModel.MedicalFileModel {
	return &fileModel.MedicalFileModel{
		ID:         uuid.New(),
		UserID:     patient.ID,
		FileStatus: fileModel.FileStatusEmpty,
	}
}

func callerOf(u *userModel.UserModel) helperAuth.Caller {
	return helperAuth.Caller{ID: u.ID, Role: u.Role}
}

func TestRequestStudent(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	file := newFile(patient)

	require.NoError(t, RequestStudent(callerOf(patient), patient, student, file, now))
	require.NotNil(t, file.PatientRequestedStudentID)
	assert.Equal(t, student.ID, *file.PatientRequestedStudentID)
	assert.Equal(t, now, *file.PatientRequestedStudentAt)
	assert.Equal(t, fileModel.FileStatusEmpty, file.FileStatus)

	t.Run("second request conflicts while one is pending", func(t *testing.T) {
		other := newStudent(userModel.StatusApproved)
		err := RequestStudent(callerOf(patient), patient, other, file, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindConflict))
		assert.Equal(t, student.ID, *file.PatientRequestedStudentID)
	})

	t.Run("unapproved student is rejected", func(t *testing.T) {
		p := newPatient()
		f := newFile(p)
		err := RequestStudent(callerOf(p), p, newStudent(userModel.StatusPreApproved), f, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Nil(t, f.PatientRequestedStudentID)
	})

	t.Run("only the patient itself may ask", func(t *testing.T) {
		p := newPatient()
		f := newFile(p)
		err := RequestStudent(callerOf(student), p, student, f, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
		assert.Nil(t, f.PatientRequestedStudentID)
	})
}

func TestResolvePatientRequest_Approve(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	file := newFile(patient)
	require.NoError(t, RequestStudent(callerOf(patient), patient, student, file, now))

	later := now.Add(time.Hour)
	require.NoError(t, ResolvePatientRequest(callerOf(student), student, patient, file, constants.ActionApprove, later))

	assert.Equal(t, fileModel.FileStatusProgress, file.FileStatus)
	assert.Equal(t, student.ID, *file.SelectedStudentID)
	assert.Equal(t, student.ID, *file.StudentValidatedPatientID)
	assert.Equal(t, later, *file.StudentValidatedPatientAt)
	assert.Equal(t, student.ID, *file.ProgressedByID)
	assert.Equal(t, later, *file.ProgressedAt)

	// Pair cleared: the patient could ask someone else if needed.
	assert.Nil(t, file.PatientRequestedStudentID)
	assert.Nil(t, file.PatientRequestedStudentAt)
}

func TestResolvePatientRequest_Reject(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	file := newFile(patient)
	require.NoError(t, RequestStudent(callerOf(patient), patient, student, file, now))

	require.NoError(t, ResolvePatientRequest(callerOf(student), student, patient, file, constants.ActionReject, now))

	// Rejection stamps the outcome but never assigns or advances.
	assert.Equal(t, fileModel.FileStatusEmpty, file.FileStatus)
	assert.Nil(t, file.SelectedStudentID)
	assert.Equal(t, student.ID, *file.StudentRejectedPatientID)
	assert.Nil(t, file.PatientRequestedStudentID)

	t.Run("patient may ask again after rejection", func(t *testing.T) {
		other := newStudent(userModel.StatusApproved)
		require.NoError(t, RequestStudent(callerOf(patient), patient, other, file, now))
		assert.Equal(t, other.ID, *file.PatientRequestedStudentID)
	})
}

func TestResolvePatientRequest_Guards(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)

	t.Run("wrong student is forbidden and nothing changes", func(t *testing.T) {
		file := newFile(patient)
		require.NoError(t, RequestStudent(callerOf(patient), patient, student, file, now))

		intruder := newStudent(userModel.StatusApproved)
		err := ResolvePatientRequest(callerOf(intruder), intruder, patient, file, constants.ActionApprove, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
		assert.Equal(t, student.ID, *file.PatientRequestedStudentID)
		assert.Equal(t, fileModel.FileStatusEmpty, file.FileStatus)
	})

	t.Run("invalid action keeps the request pending", func(t *testing.T) {
		file := newFile(patient)
		require.NoError(t, RequestStudent(callerOf(patient), patient, student, file, now))

		err := ResolvePatientRequest(callerOf(student), student, patient, file, constants.ResolveAction("maybe"), now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.NotNil(t, file.PatientRequestedStudentID)
	})

	t.Run("no pending request is forbidden", func(t *testing.T) {
		file := newFile(patient)
		err := ResolvePatientRequest(callerOf(student), student, patient, file, constants.ActionApprove, now)
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
	})
}

func TestEnsureCanFill(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	file := newFile(patient)
	file.FileStatus = fileModel.FileStatusProgress
	file.SelectedStudentID = &student.ID

	assert.NoError(t, EnsureCanFill(callerOf(student), file))

	t.Run("unassigned student", func(t *testing.T) {
		err := EnsureCanFill(callerOf(newStudent(userModel.StatusApproved)), file)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
	})

	t.Run("non-student roles", func(t *testing.T) {
		err := EnsureCanFill(callerOf(patient), file)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
	})

	t.Run("file not in progress", func(t *testing.T) {
		reviewed := *file
		reviewed.FileStatus = fileModel.FileStatusReview
		err := EnsureCanFill(callerOf(student), &reviewed)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
	})
}

func TestMarkUnderReview(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	file := newFile(patient)
	file.FileStatus = fileModel.FileStatusProgress
	file.SelectedStudentID = &student.ID

	require.NoError(t, MarkUnderReview(callerOf(student), file, now))
	assert.Equal(t, fileModel.FileStatusReview, file.FileStatus)
	assert.Equal(t, student.ID, *file.ReviewedByID)
	assert.Equal(t, now, *file.ReviewedAt)

	t.Run("cannot submit twice", func(t *testing.T) {
		err := MarkUnderReview(callerOf(student), file, now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Equal(t, fileModel.FileStatusReview, file.FileStatus)
	})
}

func TestReviewFile(t *testing.T) {
	professional := &userModel.UserModel{ID: uuid.New(), Role: userModel.RoleProfessional, Status: userModel.StatusApproved}

	inReview := func() *fileModel.MedicalFileModel {
		f := newFile(newPatient())
		f.FileStatus = fileModel.FileStatusReview
		return f
	}

	t.Run("approve is terminal", func(t *testing.T) {
		file := inReview()
		require.NoError(t, ReviewFile(callerOf(professional), file, constants.ActionApprove, now))
		assert.Equal(t, fileModel.FileStatusApproved, file.FileStatus)
		assert.Equal(t, professional.ID, *file.ApprovedByID)
		assert.Equal(t, now, *file.ApprovedAt)

		err := ReviewFile(callerOf(professional), file, constants.ActionReject, now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Equal(t, fileModel.FileStatusApproved, file.FileStatus)
	})

	t.Run("reject goes back to progress, never to empty", func(t *testing.T) {
		file := inReview()
		require.NoError(t, ReviewFile(callerOf(professional), file, constants.ActionReject, now))
		assert.Equal(t, fileModel.FileStatusProgress, file.FileStatus)
		assert.Equal(t, professional.ID, *file.NoApprovedByID)
		assert.Equal(t, now, *file.NoApprovedAt)
	})

	t.Run("only professionals review", func(t *testing.T) {
		file := inReview()
		err := ReviewFile(callerOf(newStudent(userModel.StatusApproved)), file, constants.ActionApprove, now)
		assert.True(t, errs.IsKind(err, errs.KindForbidden))
		assert.Equal(t, fileModel.FileStatusReview, file.FileStatus)
	})

	t.Run("file must be under review", func(t *testing.T) {
		file := newFile(newPatient())
		file.FileStatus = fileModel.FileStatusProgress
		err := ReviewFile(callerOf(professional), file, constants.ActionApprove, now)
		assert.True(t, errs.IsKind(err, errs.KindValidation))
		assert.Equal(t, fileModel.FileStatusProgress, file.FileStatus)
	})
}

// Full happy path through the state machine, including the rejection loop.
func TestWorkflowEndToEnd(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	professional := &userModel.UserModel{ID: uuid.New(), Role: userModel.RoleProfessional, Status: userModel.StatusApproved}
	file := newFile(patient)

	require.NoError(t, RequestStudent(callerOf(patient), patient, student, file, now))
	require.NoError(t, ResolvePatientRequest(callerOf(student), student, patient, file, constants.ActionApprove, now))
	require.NoError(t, MarkUnderReview(callerOf(student), file, now))

	// The professional sends it back once.
	require.NoError(t, ReviewFile(callerOf(professional), file, constants.ActionReject, now))
	require.Equal(t, fileModel.FileStatusProgress, file.FileStatus)

	// The student fixes it and resubmits.
	require.NoError(t, MarkUnderReview(callerOf(student), file, now))
	require.NoError(t, ReviewFile(callerOf(professional), file, constants.ActionApprove, now))
	assert.Equal(t, fileModel.FileStatusApproved, file.FileStatus)
}

func TestCanViewFile(t *testing.T) {
	patient := newPatient()
	student := newStudent(userModel.StatusApproved)
	file := newFile(patient)
	file.SelectedStudentID = &student.ID

	admin := helperAuth.Caller{ID: uuid.New(), Role: userModel.RoleAdmin}
	professional := helperAuth.Caller{ID: uuid.New(), Role: userModel.RoleProfessional}

	assert.True(t, CanViewFile(admin, file))
	assert.True(t, CanViewFile(professional, file))
	assert.True(t, CanViewFile(callerOf(patient), file))
	assert.True(t, CanViewFile(callerOf(student), file))

	assert.False(t, CanViewFile(callerOf(newPatient()), file))
	assert.False(t, CanViewFile(callerOf(newStudent(userModel.StatusApproved)), file))
}
