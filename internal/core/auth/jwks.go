package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"aquarium-tank-api/internal/domain"
)

// JWKSVerifier checks asymmetrically signed tokens against the project's
// published key set.
type JWKSVerifier struct {
	kf     keyfunc.Keyfunc
	issuer string
}

// NewJWKSVerifier fetches the key set at url and keeps it refreshed until ctx
// is cancelled.
func NewJWKSVerifier(ctx context.Context, url, issuer string) (*JWKSVerifier, error) {
	kf, err := keyfunc.NewDefaultCtx(ctx, []string{url})
	if err != nil {
		return nil, fmt.Errorf("load jwks %s: %w", url, err)
	}
	return &JWKSVerifier{kf: kf, issuer: issuer}, nil
}

// NewJWKSVerifierFromJSON uses a fixed key set.
func NewJWKSVerifierFromJSON(raw []byte, issuer string) (*JWKSVerifier, error) {
	kf, err := keyfunc.NewJWKSetJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("parse jwks: %w", err)
	}
	return &JWKSVerifier{kf: kf, issuer: issuer}, nil
}

func (v *JWKSVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "ES256"}), jwt.WithLeeway(30 * time.Second)}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	t, err := jwt.ParseWithClaims(token, &Claims{}, v.kf.KeyfuncCtx(ctx), opts...)
	if err != nil {
		return nil, classify(err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	return c, nil
}

var _ TokenVerifier = (*JWKSVerifier)(nil)
