// file: internals/features/medicalfiles/service/workflow_service.go
//
// Transitions of the medical-file state machine:
//
//	empty → progress → review → approved
//	              ↖_______/   (professional rejection)
//
// Every function checks all of its guards before mutating anything, so a
// returned error always means "no state changed". Controllers run these
// inside one transaction and persist the touched entities together.
package service

import (
	"time"

	"medicku_backend/internals/constants"
	fileModel "medicku_backend/internals/features/medicalfiles/model"
	userModel "medicku_backend/internals/features/users/model"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

// RequestStudent records a patient's ask towards an approved student. The
// file is created lazily by the controller when the patient never had one.
func RequestStudent(caller helperAuth.Caller, patient *userModel.UserModel, student *userModel.UserModel, file *fileModel.MedicalFileModel, now time.Time) error {
	if caller.Role != userModel.RolePatient || patient == nil || patient.ID != caller.ID {
		return errs.Forbidden("NOT_PATIENT", "Only patients may request a student")
	}
	if student == nil || student.Role != userModel.RoleStudent || student.Status != userModel.StatusApproved {
		return errs.Validation("INVALID_STUDENT", "Target is not an approved student")
	}
	if file == nil {
		return errs.NotFound("FILE_NOT_FOUND", "Medical file not found")
	}
	if file.HasPendingRequest() {
		return errs.Conflict("PENDING_REQUEST", "You already have a pending request")
	}

	file.PatientRequestedStudentID = &student.ID
	file.PatientRequestedStudentAt = &now
	return nil
}

// ResolvePatientRequest lets the requested student take or decline the case.
// Approval is the only path that moves a file into progress; rejection stamps
// the outcome and nothing else. The pending pair is cleared either way, so a
// rejected patient may immediately ask again.
func ResolvePatientRequest(caller helperAuth.Caller, student *userModel.UserModel, patient *userModel.UserModel, file *fileModel.MedicalFileModel, action constants.ResolveAction, now time.Time) error {
	if caller.Role != userModel.RoleStudent || student == nil || student.ID != caller.ID {
		return errs.Forbidden("NOT_STUDENT", "Only students may resolve patient requests")
	}
	if student.Status != userModel.StatusApproved {
		return errs.Validation("NOT_APPROVED", "Only approved students may take patients")
	}
	if patient == nil || patient.Role != userModel.RolePatient {
		return errs.Validation("INVALID_PATIENT", "User is not a patient")
	}
	if file == nil || file.PatientRequestedStudentID == nil || *file.PatientRequestedStudentID != caller.ID {
		return errs.Forbidden("NOT_REQUESTED", "This patient has no pending request towards you")
	}

	switch action {
	case constants.ActionApprove:
		file.SelectedStudentID = &caller.ID
		file.StudentValidatedPatientID = &caller.ID
		file.StudentValidatedPatientAt = &now
		file.FileStatus = fileModel.FileStatusProgress
		file.ProgressedByID = &caller.ID
		file.ProgressedAt = &now
	case constants.ActionReject:
		file.StudentRejectedPatientID = &caller.ID
		file.StudentRejectedPatientAt = &now
	default:
		return errs.Validation("INVALID_ACTION", "Action must be 'approve' or 'reject'")
	}

	file.ClearRequest()
	return nil
}

// EnsureCanFill is the write-guard on background sections: only the assigned
// student may fill a file, and only while it is in progress.
func EnsureCanFill(caller helperAuth.Caller, file *fileModel.MedicalFileModel) error {
	if file == nil {
		return errs.NotFound("FILE_NOT_FOUND", "Medical file not found")
	}
	if caller.Role != userModel.RoleStudent {
		return errs.Forbidden("NOT_STUDENT", "Only students may fill medical files")
	}
	if file.SelectedStudentID == nil || *file.SelectedStudentID != caller.ID {
		return errs.Forbidden("NOT_ASSIGNED", "You are not assigned to this medical file")
	}
	if file.FileStatus != fileModel.FileStatusProgress {
		return errs.Validation("NOT_IN_PROGRESS", "Medical file is not in progress")
	}
	return nil
}

// MarkUnderReview moves a filled file from progress to review.
func MarkUnderReview(caller helperAuth.Caller, file *fileModel.MedicalFileModel, now time.Time) error {
	if err := EnsureCanFill(caller, file); err != nil {
		return err
	}
	file.FileStatus = fileModel.FileStatusReview
	file.ReviewedByID = &caller.ID
	file.ReviewedAt = &now
	return nil
}

// ReviewFile is the professional's verdict on a file under review. Approval
// is terminal; rejection takes the review → progress back-edge, never back
// to empty.
func ReviewFile(caller helperAuth.Caller, file *fileModel.MedicalFileModel, action constants.ResolveAction, now time.Time) error {
	if caller.Role != userModel.RoleProfessional {
		return errs.Forbidden("NOT_PROFESSIONAL", "Only professionals may review medical files")
	}
	if file == nil {
		return errs.NotFound("FILE_NOT_FOUND", "Medical file not found")
	}
	if file.FileStatus != fileModel.FileStatusReview {
		return errs.Validation("NOT_IN_REVIEW", "Medical file is not under review")
	}

	switch action {
	case constants.ActionApprove:
		file.FileStatus = fileModel.FileStatusApproved
		file.ApprovedByID = &caller.ID
		file.ApprovedAt = &now
	case constants.ActionReject:
		file.FileStatus = fileModel.FileStatusProgress
		file.NoApprovedByID = &caller.ID
		file.NoApprovedAt = &now
	default:
		return errs.Validation("INVALID_ACTION", "Action must be 'approve' or 'reject'")
	}
	return nil
}

// CanViewFile gates detail reads: the owning patient, the assigned student,
// any professional, and admins.
func CanViewFile(caller helperAuth.Caller, file *fileModel.MedicalFileModel) bool {
	if file == nil {
		return false
	}
	switch caller.Role {
	case userModel.RoleAdmin, userModel.RoleProfessional:
		return true
	case userModel.RolePatient:
		return file.UserID == caller.ID
	case userModel.RoleStudent:
		return file.SelectedStudentID != nil && *file.SelectedStudentID == caller.ID
	}
	return false
}
