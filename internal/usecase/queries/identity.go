package queries

//go:generate mockgen -source=identity.go -destination=../../testutil/mock/queries/identity_mock.go -package=queriesmock

import (
	"context"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/pkg/jwt"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

// IdentityQueries verifies tokens locally. It satisfies shared.TokenValidator
// so the Identity Authority guards its own routes without a network hop.
type IdentityQueries interface {
	ValidateToken(ctx context.Context, token string) (*auth.Subject, error)
}

type identityQueriesImpl struct {
	readStore  UserReadStore
	jwtService *jwt.Service
}

func NewIdentityQueries(readStore UserReadStore, jwtService *jwt.Service) IdentityQueries {
	return &identityQueriesImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// ValidateToken checks signature and expiry, then reloads the subject so
// that deactivation and role changes take effect immediately.
func (q *identityQueriesImpl) ValidateToken(ctx context.Context, token string) (*auth.Subject, error) {
	claims, err := q.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	u, err := q.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrap(errs.ErrAuthInvalid, "token subject no longer exists")
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, errs.Wrap(errs.ErrAuthInvalid, "token subject is inactive")
	}

	return &auth.Subject{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role(),
		FullName:  u.Profile().FullName,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
