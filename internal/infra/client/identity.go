package client

import (
	"context"
	"net/http"
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/config"
	"scrap-market/internal/pkg/errs"
)

type verifyResponse struct {
	Valid bool `json:"valid"`
	User  struct {
		ID       int64  `json:"id"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		FullName string `json:"full_name"`
	} `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IdentityClient verifies tokens against the Identity Authority and keeps
// successful answers for a short TTL.
type IdentityClient struct {
	baseClient
	cache *verifyCache
}

func NewIdentityClient(cfg config.UpstreamConfig, clk clock.Clock) *IdentityClient {
	return &IdentityClient{
		baseClient: newBaseClient(cfg.IdentityURL, cfg.Timeout),
		cache:      newVerifyCache(cfg.VerifyCacheTTL, clk),
	}
}

func (c *IdentityClient) ValidateToken(ctx context.Context, token string) (*auth.Subject, error) {
	if token == "" {
		return nil, errs.ErrAuthMissing
	}
	if subject, ok := c.cache.get(token); ok {
		return subject, nil
	}

	resp, err := c.do(ctx, http.MethodGet, "/verify", token, nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, authErrorFromCode(readErrorCode(resp))
	default:
		return nil, unexpectedStatus(http.MethodGet, "/verify", resp.StatusCode)
	}

	var body verifyResponse
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	role, err := user.NewRole(body.User.Role)
	if err != nil || !body.Valid || body.User.ID == 0 {
		return nil, errs.ErrAuthInvalid
	}

	subject := &auth.Subject{
		ID:        body.User.ID,
		Email:     body.User.Email,
		Role:      role,
		FullName:  body.User.FullName,
		ExpiresAt: body.ExpiresAt,
	}
	c.cache.put(token, subject)
	return subject, nil
}

func authErrorFromCode(code string) error {
	switch code {
	case "AUTH_MISSING":
		return errs.ErrAuthMissing
	case "AUTH_EXPIRED":
		return errs.ErrAuthExpired
	default:
		return errs.ErrAuthInvalid
	}
}
