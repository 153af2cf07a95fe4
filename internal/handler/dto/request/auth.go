package request

import (
	"scrap-market/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=user dealer admin"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
		Role:     r.Role,
	}
}

// LoginRequest only checks presence. A malformed email is reported as bad
// credentials by the use case, not as a validation error.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
