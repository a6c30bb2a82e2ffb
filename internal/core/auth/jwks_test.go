package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquarium-tank-api/internal/domain"
)

const testKID = "test-key"

func rsaJWKS(t *testing.T, key *rsa.PrivateKey) []byte {
	t.Helper()
	set := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": testKID,
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	}
	raw, err := json.Marshal(set)
	require.NoError(t, err)
	return raw
}

func signRS256(t *testing.T, key *rsa.PrivateKey, claims Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = testKID
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestJWKSVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	v, err := NewJWKSVerifierFromJSON(rsaJWKS(t, key), "https://proj.supabase.co/auth/v1")
	require.NoError(t, err)

	valid := signRS256(t, key, Claims{
		Email: "fish@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth-9",
			Issuer:    "https://proj.supabase.co/auth/v1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	c, err := v.Verify(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, "auth-9", c.Subject)
	assert.Equal(t, "fish@example.com", c.Email)

	expired := signRS256(t, key, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth-9",
			Issuer:    "https://proj.supabase.co/auth/v1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	_, err = v.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	forged := signRS256(t, other, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth-9",
			Issuer:    "https://proj.supabase.co/auth/v1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	_, err = v.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
