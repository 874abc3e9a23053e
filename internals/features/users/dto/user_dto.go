// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "medicku_backend/internals/features/users/model"
)

// UserResponse is the safe serialization of a user (no password hash).
type UserResponse struct {
	ID            uuid.UUID            `json:"id"`
	FirstName     string               `json:"first_name"`
	SecondName    *string              `json:"second_name,omitempty"`
	FirstSurname  string               `json:"first_surname"`
	SecondSurname *string              `json:"second_surname,omitempty"`
	BirthDay      string               `json:"birth_day"`
	Phone         *string              `json:"phone,omitempty"`
	Email         string               `json:"email"`
	Role          userModel.UserRole   `json:"role"`
	Status        userModel.UserStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func NewUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		SecondName:    u.SecondName,
		FirstSurname:  u.FirstSurname,
		SecondSurname: u.SecondSurname,
		BirthDay:      u.BirthDay.Format("2006-01-02"),
		Phone:         u.Phone,
		Email:         u.Email,
		Role:          u.Role,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}
