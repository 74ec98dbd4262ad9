package dto

import (
	"strings"

	"classroom_backend/internals/features/users/user/model"
)

// RegisterRequest creates an account. Password is plain text here and is
// hashed by the service before it reaches the model.
type RegisterRequest struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=150"`
	LastName  string `json:"last_name" validate:"omitempty,max=150"`
	IsStudent bool   `json:"is_student"`
	IsTeacher bool   `json:"is_teacher"`
}

func (r RegisterRequest) ToModel(passwordHash string) model.UserModel {
	return model.UserModel{
		UserName:  strings.TrimSpace(r.UserName),
		Email:     strings.TrimSpace(strings.ToLower(r.Email)),
		Password:  passwordHash,
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		IsStudent: r.IsStudent,
		IsTeacher: r.IsTeacher,
		IsActive:  true,
	}
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}
