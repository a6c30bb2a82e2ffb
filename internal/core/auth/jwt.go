package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"aquarium-tank-api/internal/domain"
)

// Claims is the payload of a Supabase access token.
type Claims struct {
	Email        string       `json:"email,omitempty"`
	Role         string       `json:"role,omitempty"` // "authenticated" for signed-in users
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type UserMetadata struct {
	Fullname *string `json:"fullname,omitempty"`
}

func (c *Claims) Identity() Identity {
	return Identity{ID: c.Subject, Email: c.Email, Fullname: c.UserMetadata.Fullname}
}

// TokenVerifier checks an access token locally, without a round trip to the
// identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// JWTer signs and verifies HS256 tokens with the project's JWT secret.
type JWTer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Issue mints a token the way the identity provider does; used by tooling and tests.
func (j *JWTer) Issue(sub, email string, fullname *string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:        email,
		Role:         "authenticated",
		UserMetadata: UserMetadata{Fullname: fullname},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30 * time.Second)}
	if j.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.Issuer))
	}
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return j.Secret, nil
	}, opts...)
	if err != nil {
		return nil, classify(err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return c, nil
}

func (j *JWTer) Verify(_ context.Context, token string) (*Claims, error) { return j.Parse(token) }

// classify maps jwt parse failures onto the domain's auth errors.
func classify(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return domain.ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
}

var _ TokenVerifier = (*JWTer)(nil)
