package response

import (
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/usecase/commands"
	"scrap-market/internal/usecase/queries"
)

type AuthResponse struct {
	Message   string               `json:"message"`
	Token     string               `json:"token"`
	User      queries.VerifiedUser `json:"user"`
	ExpiresAt time.Time            `json:"expires_at"`
}

func FromAuthResult(msg string, r *commands.AuthResult) AuthResponse {
	return AuthResponse{
		Message:   msg,
		Token:     r.Token,
		User:      r.User,
		ExpiresAt: r.ExpiresAt,
	}
}

type VerifyResponse struct {
	Valid     bool                 `json:"valid"`
	User      queries.VerifiedUser `json:"user"`
	ExpiresAt time.Time            `json:"expires_at"`
}

func FromSubject(s auth.Subject) VerifyResponse {
	return VerifyResponse{
		Valid: true,
		User: queries.VerifiedUser{
			ID:       s.ID,
			Email:    s.Email,
			Role:     s.Role.String(),
			FullName: s.FullName,
		},
		ExpiresAt: s.ExpiresAt,
	}
}
