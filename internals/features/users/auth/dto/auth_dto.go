// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	userDTO "medicku_backend/internals/features/users/dto"
)

type RegisterRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=120"`
	SecondName    *string `json:"second_name" validate:"omitempty,max=120"`
	FirstSurname  string  `json:"first_surname" validate:"required,max=120"`
	SecondSurname *string `json:"second_surname" validate:"omitempty,max=120"`
	BirthDay      string  `json:"birth_day" validate:"required,datetime=2006-01-02"`
	Phone         *string `json:"phone" validate:"omitempty,max=30"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Role          string  `json:"role" validate:"required"`

	// Required when role is student or professional.
	Institution    *string `json:"institution" validate:"omitempty,max=160"`
	Career         *string `json:"career" validate:"omitempty,max=160"`
	AcademicGrade  *string `json:"academic_grade" validate:"omitempty,max=80"`
	RegisterNumber *string `json:"register_number" validate:"omitempty,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  userDTO.UserResponse `json:"user"`
}
