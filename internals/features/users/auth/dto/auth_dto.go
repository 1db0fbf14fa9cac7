// file: internals/features/users/auth/dto/auth_dto.go
package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=1,max=160"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin teacher internal"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"` // detik
	UserID      uuid.UUID `json:"user_id"`
	SchoolID    uuid.UUID `json:"school_id"`
	UserName    string    `json:"user_name"`
	Role        string    `json:"role"`
}
