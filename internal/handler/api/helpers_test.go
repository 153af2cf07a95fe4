//go:build unit

package api_test

import (
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/handler/httperr"
	"scrap-market/internal/handler/middleware"
	"scrap-market/internal/pkg/bearer"
	"scrap-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const testToken = "bearer-token"

var (
	baseTime = time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

	ownerSubject  = auth.Subject{ID: 5, Email: "owner@example.com", Role: user.RoleUser, FullName: "Owner", ExpiresAt: baseTime.Add(time.Hour)}
	dealerSubject = auth.Subject{ID: 21, Email: "dealer@example.com", Role: user.RoleDealer, FullName: "Dealer"}
	adminSubject  = auth.Subject{ID: 1, Email: "admin@example.com", Role: user.RoleAdmin, FullName: "Admin"}
)

// fakeAuth stands in for RequireAuth: any bearer token resolves to subject.
func fakeAuth(subject auth.Subject) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearer.FromHeader(c.GetHeader("Authorization"))
		if token == "" {
			httperr.Abort(c, errs.ErrAuthMissing)
			return
		}
		middleware.SetSubject(c, subject, token)
		c.Next()
	}
}
