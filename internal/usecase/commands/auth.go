package commands

//go:generate mockgen -source=auth.go -destination=../../testutil/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"strings"
	"time"

	"scrap-market/internal/domain/auth"
	"scrap-market/internal/domain/user"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/pkg/jwt"
	"scrap-market/internal/pkg/password"
	"scrap-market/internal/usecase/queries"
	"scrap-market/internal/usecase/shared"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      queries.VerifiedUser
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, secret string) (*AuthResult, error)
	// Refresh re-issues a token for an already verified subject.
	Refresh(ctx context.Context, subject auth.Subject) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow              shared.UnitOfWork
	readStore        queries.UserReadStore
	jwtService       *jwt.Service
	hasher           *password.Hasher
	clock            clock.Clock
	allowAdminSignup bool
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	hasher *password.Hasher,
	clk clock.Clock,
	allowAdminSignup bool,
) AuthCommands {
	return &authCommandsImpl{
		uow:              uow,
		readStore:        readStore,
		jwtService:       jwtService,
		hasher:           hasher,
		clock:            clk,
		allowAdminSignup: allowAdminSignup,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}
	secret, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}
	profile, err := user.NewProfile(in.FullName, in.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	role := user.RoleUser
	if strings.TrimSpace(in.Role) != "" {
		if role, err = user.NewRole(strings.TrimSpace(in.Role)); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidArgument)
		}
	}
	if role == user.RoleAdmin && !a.allowAdminSignup {
		return nil, errs.Wrap(errs.ErrForbidden, "admin self-registration is disabled")
	}

	hash, err := a.hasher.Hash(secret.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(email, hash, profile, role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, u)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.ErrEmailTaken
			}
			return createErr
		}
		u.AssignID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(u.ID(), u.Email().Value(), u.Role(), u.Profile().FullName)
}

func (a *authCommandsImpl) Login(ctx context.Context, email, secret string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" || secret == "" {
		return nil, errs.Wrap(errs.ErrInvalidArgument, "email and password are required")
	}
	credentials, err := auth.NewCredentials(email, secret)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	u, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same answer as a wrong password to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(u.PasswordHash(), credentials.Password()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, errs.Wrap(errs.ErrForbidden, "account is inactive")
	}

	return a.issue(u.ID(), u.Email().Value(), u.Role(), u.Profile().FullName)
}

func (a *authCommandsImpl) Refresh(_ context.Context, subject auth.Subject) (*AuthResult, error) {
	return a.issue(subject.ID, subject.Email, subject.Role, subject.FullName)
}

func (a *authCommandsImpl) issue(id int64, email string, role user.Role, fullName string) (*AuthResult, error) {
	token, expiresAt, err := a.jwtService.GenerateToken(id, email, role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: queries.VerifiedUser{
			ID:       id,
			Email:    email,
			Role:     role.String(),
			FullName: fullName,
		},
	}, nil
}
