// file: internals/features/credentials/service/validation_service.go
//
// Transitions of the professional/student validation workflow. Each function
// validates every guard before touching a field, so a returned error means
// nothing was mutated and the surrounding transaction has nothing to undo.
package service

import (
	"time"

	"medicku_backend/internals/constants"
	credModel "medicku_backend/internals/features/credentials/model"
	userModel "medicku_backend/internals/features/users/model"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

// ApproveProfessional moves a pre_approved professional to approved and
// records the admin on the credential.
func ApproveProfessional(caller helperAuth.Caller, target *userModel.UserModel, cred *credModel.AcademicCredentialModel, now time.Time) error {
	if caller.Role != userModel.RoleAdmin {
		return errs.Forbidden("NOT_ADMIN", "Only admins may validate professionals")
	}
	if target == nil || target.Role != userModel.RoleProfessional || target.Status != userModel.StatusPreApproved {
		return errs.Validation("INVALID_TARGET", "User is not a professional pending approval")
	}
	if cred == nil {
		return errs.Validation("MISSING_CREDENTIAL", "Professional has no academic credential on record")
	}

	cred.ValidatedByID = &caller.ID
	cred.ValidatedAt = &now
	target.Status = userModel.StatusApproved
	return nil
}

// RequestValidation records a pre_approved student's request towards an
// approved professional. At most one request may be outstanding.
func RequestValidation(caller helperAuth.Caller, student *userModel.UserModel, professional *userModel.UserModel, cred *credModel.AcademicCredentialModel, now time.Time) error {
	if caller.Role != userModel.RoleStudent || student == nil || student.ID != caller.ID {
		return errs.Forbidden("NOT_STUDENT", "Only students may request validation")
	}
	if student.Status != userModel.StatusPreApproved {
		return errs.Validation("NOT_PRE_APPROVED", "Only pre-approved students may request validation")
	}
	if professional == nil || professional.Role != userModel.RoleProfessional || professional.Status != userModel.StatusApproved {
		return errs.Validation("INVALID_PROFESSIONAL", "Target is not an approved professional")
	}
	if cred == nil {
		return errs.Validation("MISSING_CREDENTIAL", "Student has no academic credential on record")
	}
	if cred.HasPendingRequest() {
		return errs.Conflict("PENDING_REQUEST", "A validation request is already pending")
	}

	cred.RequestedProfessionalID = &professional.ID
	cred.RequestedAt = &now
	return nil
}

// ResolveStudentRequest lets the requested professional approve or reject a
// student. The pending pair is cleared either way; only approval changes the
// student's status.
func ResolveStudentRequest(caller helperAuth.Caller, student *userModel.UserModel, cred *credModel.AcademicCredentialModel, action constants.ResolveAction, now time.Time) error {
	if caller.Role != userModel.RoleProfessional {
		return errs.Forbidden("NOT_PROFESSIONAL", "Only professionals may resolve student requests")
	}
	if student == nil || student.Role != userModel.RoleStudent || student.Status != userModel.StatusPreApproved {
		return errs.Validation("INVALID_STUDENT", "User is not a student pending approval")
	}
	if cred == nil || cred.RequestedProfessionalID == nil || *cred.RequestedProfessionalID != caller.ID {
		return errs.Forbidden("NOT_REQUESTED", "This student has not requested validation from you")
	}

	switch action {
	case constants.ActionApprove:
		student.Status = userModel.StatusApproved
		cred.ValidatedByID = &caller.ID
		cred.ValidatedAt = &now
	case constants.ActionReject:
		// request cleared below, status untouched
	default:
		return errs.Validation("INVALID_ACTION", "Action must be 'approve' or 'reject'")
	}

	cred.ClearRequest()
	return nil
}
