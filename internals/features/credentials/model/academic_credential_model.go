// file: internals/features/credentials/model/academic_credential_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: academic_credentials
   One per student/professional user. Holds the qualification
   data plus the validation linkage: a single outstanding
   student→professional request and the terminal approval.
   ========================================================= */

type AcademicCredentialModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"            json:"user_id"`

	Institution    string `gorm:"column:institution;size:160;not null"     json:"institution"`
	Career         string `gorm:"column:career;size:160;not null"          json:"career"`
	AcademicGrade  string `gorm:"column:academic_grade;size:80;not null"   json:"academic_grade"`
	RegisterNumber string `gorm:"column:register_number;size:80;not null"  json:"register_number"`

	// Pending request, student→professional only. Cleared the moment it is
	// resolved, approved or rejected.
	RequestedProfessionalID *uuid.UUID `gorm:"column:requested_professional_id;type:uuid;index" json:"requested_professional_id,omitempty"`
	RequestedAt             *time.Time `gorm:"column:requested_at"                              json:"requested_at,omitempty"`

	// Terminal approval linkage.
	ValidatedByID *uuid.UUID `gorm:"column:validated_by_id;type:uuid" json:"validated_by_id,omitempty"`
	ValidatedAt   *time.Time `gorm:"column:validated_at"              json:"validated_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AcademicCredentialModel) TableName() string { return "academic_credentials" }

// HasPendingRequest reports whether a validation request is outstanding.
func (m *AcademicCredentialModel) HasPendingRequest() bool {
	return m.RequestedProfessionalID != nil
}

// ClearRequest resets the pending pair after a resolution.
func (m *AcademicCredentialModel) ClearRequest() {
	m.RequestedProfessionalID = nil
	m.RequestedAt = nil
}
