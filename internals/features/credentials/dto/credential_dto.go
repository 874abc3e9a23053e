// file: internals/features/credentials/dto/credential_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	credModel "medicku_backend/internals/features/credentials/model"
	userModel "medicku_backend/internals/features/users/model"
)

//
// ========== REQUESTS ==========
//

type ResolveStudentRequest struct {
	Action string `json:"action" validate:"required"`
}

//
// ========== RESPONSES ==========
//

// StudentRequestResponse is one row of the professional's pending queue.
type StudentRequestResponse struct {
	StudentID     uuid.UUID  `json:"student_id"`
	FullName      string     `json:"full_name"`
	Email         string     `json:"email"`
	Institution   string     `json:"institution"`
	Career        string     `json:"career"`
	AcademicGrade string     `json:"academic_grade"`
	RequestedAt   *time.Time `json:"requested_at,omitempty"`
}

func NewStudentRequestResponse(student userModel.UserModel, cred credModel.AcademicCredentialModel) StudentRequestResponse {
	return StudentRequestResponse{
		StudentID:     student.ID,
		FullName:      student.FullName(),
		Email:         student.Email,
		Institution:   cred.Institution,
		Career:        cred.Career,
		AcademicGrade: cred.AcademicGrade,
		RequestedAt:   cred.RequestedAt,
	}
}

// ApprovedStudentResponse is what patients browse when picking a student.
type ApprovedStudentResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	FullName    string    `json:"full_name"`
	Institution string    `json:"institution"`
	Career      string    `json:"career"`
}

func NewApprovedStudentResponse(student userModel.UserModel, cred credModel.AcademicCredentialModel) ApprovedStudentResponse {
	return ApprovedStudentResponse{
		StudentID:   student.ID,
		FullName:    student.FullName(),
		Institution: cred.Institution,
		Career:      cred.Career,
	}
}

// CredentialResponse serializes the full credential (admin detail views).
type CredentialResponse struct {
	ID                      uuid.UUID  `json:"id"`
	UserID                  uuid.UUID  `json:"user_id"`
	Institution             string     `json:"institution"`
	Career                  string     `json:"career"`
	AcademicGrade           string     `json:"academic_grade"`
	RegisterNumber          string     `json:"register_number"`
	RequestedProfessionalID *uuid.UUID `json:"requested_professional_id,omitempty"`
	RequestedAt             *time.Time `json:"requested_at,omitempty"`
	ValidatedByID           *uuid.UUID `json:"validated_by_id,omitempty"`
	ValidatedAt             *time.Time `json:"validated_at,omitempty"`
}

func NewCredentialResponse(m credModel.AcademicCredentialModel) CredentialResponse {
	return CredentialResponse{
		ID:                      m.ID,
		UserID:                  m.UserID,
		Institution:             m.Institution,
		Career:                  m.Career,
		AcademicGrade:           m.AcademicGrade,
		RegisterNumber:          m.RegisterNumber,
		RequestedProfessionalID: m.RequestedProfessionalID,
		RequestedAt:             m.RequestedAt,
		ValidatedByID:           m.ValidatedByID,
		ValidatedAt:             m.ValidatedAt,
	}
}
