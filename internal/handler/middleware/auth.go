package middleware

import (
	"log/slog"
	"net/http"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/pkg/bearer"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator shared.TokenValidator
}

const (
	ctxSubjectKey = "subject"
	ctxTokenKey   = "token"
)

func NewAuthMiddleware(tokenValidator shared.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token into a subject. The token is kept
// on the context so that it can be forwarded to other services.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer.FromHeader(c.GetHeader("Authorization"))

		subject, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if !errs.Is(err, errs.ErrAuthMissing) {
				slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			}
			httperr.Abort(c, err)
			return
		}

		c.Set(ctxSubjectKey, *subject)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := GetSubject(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal,
				errs.New("subject missing from context"), "Internal server error", nil)
			return
		}

		for _, r := range roles {
			if subject.Role == r {
				c.Next()
				return
			}
		}
		httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeForbidden,
			errs.ErrForbidden, "Insufficient permissions", nil)
	}
}

func GetSubject(c *gin.Context) (auth.Subject, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return auth.Subject{}, false
	}

	subject, ok := v.(auth.Subject)
	return subject, ok
}

func GetToken(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

// SetSubject is used by handler tests to stand in for RequireAuth.
func SetSubject(c *gin.Context, subject auth.Subject, token string) {
	c.Set(ctxSubjectKey, subject)
	c.Set(ctxTokenKey, token)
}
