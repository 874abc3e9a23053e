// file: internals/features/medicalfiles/dto/medical_file_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	fileModel "medicku_backend/internals/features/medicalfiles/model"
	userModel "medicku_backend/internals/features/users/model"
)

//
// ========== REQUESTS ==========
//

type ResolvePatientRequest struct {
	Action string `json:"action" validate:"required"`
}

type ReviewFileRequest struct {
	Action string `json:"action" validate:"required"`
}

//
// ========== RESPONSES ==========
//

// PatientRequestResponse is one row of the student's pending queue.
type PatientRequestResponse struct {
	PatientID     uuid.UUID  `json:"patient_id"`
	FullName      string     `json:"full_name"`
	MedicalFileID uuid.UUID  `json:"medical_file_id"`
	RequestedAt   *time.Time `json:"requested_at,omitempty"`
}

func NewPatientRequestResponse(patient userModel.UserModel, file fileModel.MedicalFileModel) PatientRequestResponse {
	return PatientRequestResponse{
		PatientID:     patient.ID,
		FullName:      patient.FullName(),
		MedicalFileID: file.ID,
		RequestedAt:   file.PatientRequestedStudentAt,
	}
}

// AssignedPatientResponse is one row of the student's case list.
type AssignedPatientResponse struct {
	PatientID     uuid.UUID            `json:"patient_id"`
	FullName      string               `json:"full_name"`
	MedicalFileID uuid.UUID            `json:"medical_file_id"`
	FileStatus    fileModel.FileStatus `json:"file_status"`
	AssignedAt    *time.Time           `json:"assigned_at,omitempty"`
}

func NewAssignedPatientResponse(patient userModel.UserModel, file fileModel.MedicalFileModel) AssignedPatientResponse {
	return AssignedPatientResponse{
		PatientID:     patient.ID,
		FullName:      patient.FullName(),
		MedicalFileID: file.ID,
		FileStatus:    file.FileStatus,
		AssignedAt:    file.StudentValidatedPatientAt,
	}
}

// ReviewQueueResponse is one row of the professional's review queue.
type ReviewQueueResponse struct {
	MedicalFileID     uuid.UUID  `json:"medical_file_id"`
	PatientID         uuid.UUID  `json:"patient_id"`
	PatientName       string     `json:"patient_name"`
	SelectedStudentID *uuid.UUID `json:"selected_student_id,omitempty"`
	ReviewedAt        *time.Time `json:"reviewed_at,omitempty"`
}

func NewReviewQueueResponse(patient userModel.UserModel, file fileModel.MedicalFileModel) ReviewQueueResponse {
	return ReviewQueueResponse{
		MedicalFileID:     file.ID,
		PatientID:         patient.ID,
		PatientName:       patient.FullName(),
		SelectedStudentID: file.SelectedStudentID,
		ReviewedAt:        file.ReviewedAt,
	}
}

// FileDetailResponse bundles the file with its four sections. Sections that
// were never filled in come back as null.
type FileDetailResponse struct {
	File            fileModel.MedicalFileModel                `json:"file"`
	NonPathological *fileModel.NonPathologicalBackgroundModel `json:"non_pathological_background,omitempty"`
	Pathological    *fileModel.PathologicalBackgroundModel    `json:"pathological_background,omitempty"`
	Family          *fileModel.FamilyBackgroundModel          `json:"family_background,omitempty"`
	Gynecological   *fileModel.GynecologicalBackgroundModel   `json:"gynecological_background,omitempty"`
}
