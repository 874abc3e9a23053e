// file: internals/features/users/model/user_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: user_role_enum (must match the DB)
   ========================================================= */

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleStudent      UserRole = "student"
	RoleProfessional UserRole = "professional"
	RolePatient      UserRole = "patient"
)

// ParseUserRole decodes a raw string once at the boundary; everything past
// the DTO layer only compares canonical values.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStudent:
		return RoleStudent, true
	case RoleProfessional:
		return RoleProfessional, true
	case RolePatient:
		return RolePatient, true
	}
	return "", false
}

// RequiresCredential reports whether registration must carry academic data.
func (r UserRole) RequiresCredential() bool {
	return r == RoleStudent || r == RoleProfessional
}

// Gated reports whether the approval status is meaningful for this role.
func (r UserRole) Gated() bool {
	return r == RoleStudent || r == RoleProfessional
}

func (r *UserRole) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*r = UserRole(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*r = UserRole(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*r = ""
	default:
		*r = UserRole(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(r))), nil
}

/* =========================================================
   ENUM: user_status_enum
   ========================================================= */

type UserStatus string

const (
	StatusPreApproved UserStatus = "pre_approved"
	StatusApproved    UserStatus = "approved"
	StatusRejected    UserStatus = "rejected"
)

func (s *UserStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = UserStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = UserStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	default:
		*s = UserStatus(strings.ToLower(strings.TrimSpace(v.(string))))
	}
	return nil
}

func (s UserStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

/* =========================================================
   MODEL: users
   ========================================================= */

type UserModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	FirstName     string  `gorm:"column:first_name;size:120;not null"  json:"first_name"`
	SecondName    *string `gorm:"column:second_name;size:120"          json:"second_name,omitempty"`
	FirstSurname  string  `gorm:"column:first_surname;size:120;not null" json:"first_surname"`
	SecondSurname *string `gorm:"column:second_surname;size:120"       json:"second_surname,omitempty"`

	BirthDay time.Time `gorm:"column:birth_day;type:date;not null" json:"birth_day"`
	Phone    *string   `gorm:"column:phone;size:30"                json:"phone,omitempty"`

	Email    string `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password string `gorm:"column:password;not null"              json:"-"`

	// Role is fixed at registration and never updated afterwards.
	Role   UserRole   `gorm:"column:role;type:varchar(20);not null;index"   json:"role"`
	Status UserStatus `gorm:"column:status;type:varchar(20);not null;default:'pre_approved'" json:"status"`

	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"       json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"       json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

// FullName is what list projections show next to a request.
func (u *UserModel) FullName() string {
	parts := []string{u.FirstName}
	if u.SecondName != nil && *u.SecondName != "" {
		parts = append(parts, *u.SecondName)
	}
	parts = append(parts, u.FirstSurname)
	if u.SecondSurname != nil && *u.SecondSurname != "" {
		parts = append(parts, *u.SecondSurname)
	}
	return strings.Join(parts, " ")
}
