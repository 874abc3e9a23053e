// file: internals/features/medicalfiles/model/medical_file_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: file_status_enum (must match the DB)
   empty → progress → review → approved, with the
   review → progress back-edge on professional rejection.
   ========================================================= */

type FileStatus string

const (
	FileStatusEmpty    FileStatus = "empty"
	FileStatusProgress FileStatus = "progress"
	FileStatusReview   FileStatus = "review"
	FileStatusApproved FileStatus = "approved"
)

func (s *FileStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = FileStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = FileStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = FileStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}

func (s FileStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

/* =========================================================
   MODEL: medical_files
   One per patient. Carries the review lifecycle plus every
   assignment/approval stamp. review_html is a cached
   rendering only, never consulted by any guard.
   ========================================================= */

type MedicalFileModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"            json:"user_id"`

	FileStatus FileStatus `gorm:"column:file_status;type:varchar(20);not null;default:'empty';index" json:"file_status"`

	// Assigned owner. Set only through an approved patient→student match.
	SelectedStudentID *uuid.UUID `gorm:"column:selected_student_id;type:uuid;index" json:"selected_student_id,omitempty"`

	// Pending patient→student request. At most one; cleared on resolution.
	PatientRequestedStudentID *uuid.UUID `gorm:"column:patient_requested_student_id;type:uuid;index" json:"patient_requested_student_id,omitempty"`
	PatientRequestedStudentAt *time.Time `gorm:"column:patient_requested_student_at"                 json:"patient_requested_student_at,omitempty"`

	// Resolution stamps.
	StudentValidatedPatientID *uuid.UUID `gorm:"column:student_validated_patient_id;type:uuid" json:"student_validated_patient_id,omitempty"`
	StudentValidatedPatientAt *time.Time `gorm:"column:student_validated_patient_at"           json:"student_validated_patient_at,omitempty"`
	StudentRejectedPatientID  *uuid.UUID `gorm:"column:student_rejected_patient_id;type:uuid"  json:"student_rejected_patient_id,omitempty"`
	StudentRejectedPatientAt  *time.Time `gorm:"column:student_rejected_patient_at"            json:"student_rejected_patient_at,omitempty"`

	// Lifecycle stage stamps.
	ProgressedByID *uuid.UUID `gorm:"column:progressed_by_id;type:uuid" json:"progressed_by_id,omitempty"`
	ProgressedAt   *time.Time `gorm:"column:progressed_at"              json:"progressed_at,omitempty"`
	ReviewedByID   *uuid.UUID `gorm:"column:reviewed_by_id;type:uuid"   json:"reviewed_by_id,omitempty"`
	ReviewedAt     *time.Time `gorm:"column:reviewed_at"                json:"reviewed_at,omitempty"`
	ApprovedByID   *uuid.UUID `gorm:"column:approved_by_id;type:uuid"   json:"approved_by_id,omitempty"`
	ApprovedAt     *time.Time `gorm:"column:approved_at"                json:"approved_at,omitempty"`
	NoApprovedByID *uuid.UUID `gorm:"column:no_approved_by_id;type:uuid" json:"no_approved_by_id,omitempty"`
	NoApprovedAt   *time.Time `gorm:"column:no_approved_at"              json:"no_approved_at,omitempty"`

	// Cached rollup of the four backgrounds, regenerated on demand.
	ReviewHTML *string `gorm:"column:review_html;type:text" json:"review_html,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MedicalFileModel) TableName() string { return "medical_files" }

func (m *MedicalFileModel) HasPendingRequest() bool {
	return m.PatientRequestedStudentID != nil
}

// ClearRequest resets the pending pair after a resolution, whatever the
// outcome was.
func (m *MedicalFileModel) ClearRequest() {
	m.PatientRequestedStudentID = nil
	m.PatientRequestedStudentAt = nil
}
