package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-tank-api/internal/domain"
)

func TestJWTerIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("super-secret"), Issuer: "https://proj.supabase.co/auth/v1", TTL: time.Hour}
	name := "Ada"

	tok, err := j.Issue("auth-123", "ada@example.com", &name)
	require.NoError(t, err)

	c, err := j.Verify(context.Background(), tok)
	require.NoError(t, err)
	id := c.Identity()
	assert.Equal(t, "auth-123", id.ID)
	assert.Equal(t, "ada@example.com", id.Email)
	require.NotNil(t, id.Fullname)
	assert.Equal(t, "Ada", *id.Fullname)
	assert.Equal(t, "authenticated", c.Role)
}

func TestJWTerExpired(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), TTL: -time.Hour}
	tok, err := j.Issue("auth-1", "a@b.c", nil)
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTerRejectsForeignSignature(t *testing.T) {
	issuer := &JWTer{Secret: []byte("one"), TTL: time.Hour}
	verifier := &JWTer{Secret: []byte("two"), TTL: time.Hour}
	tok, err := issuer.Issue("auth-1", "a@b.c", nil)
	require.NoError(t, err)

	_, err = verifier.Parse(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTerRejectsWrongIssuer(t *testing.T) {
	a := &JWTer{Secret: []byte("s"), Issuer: "https://a", TTL: time.Hour}
	b := &JWTer{Secret: []byte("s"), Issuer: "https://b", TTL: time.Hour}
	tok, err := a.Issue("auth-1", "a@b.c", nil)
	require.NoError(t, err)

	_, err = b.Parse(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTerRejectsGarbage(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), TTL: time.Hour}
	_, err := j.Parse("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
