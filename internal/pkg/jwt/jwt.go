package jwt

import (
	"errors"
	"time"

	"scrap-market/internal/domain/user"
	"scrap-market/internal/pkg/clock"
	"scrap-market/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

// GenerateToken signs a token for the subject. The expiry is fixed at issuance.
func (s *Service) GenerateToken(userID int64, email string, role user.Role) (string, time.Time, error) {
	now := s.clock.Now().Truncate(time.Second)
	expiresAt := now.Add(s.tokenDuration)
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, errs.Wrap(err, "sign token")
	}
	return signed, expiresAt, nil
}

// ValidateToken fails with errs.ErrAuthExpired once now >= exp and with
// errs.ErrAuthInvalid for any signature or format problem.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errs.ErrAuthMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrAuthInvalid
		}
		return s.secretKey, nil
	},
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.Mark(err, errs.ErrAuthExpired)
		}
		return nil, errs.Mark(err, errs.ErrAuthInvalid)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, errs.ErrAuthInvalid
	}

	return claims, nil
}
