package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aquarium-tank-api/internal/core/auth"
	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/repo/memory"
)

func ptr[T any](v T) *T { return &v }

func TestRegisterCreatesLocalUser(t *testing.T) {
	ctx := context.Background()
	idp := new(mockIdP)
	users := memory.NewUserRepo()
	svc := NewAuthService(idp, users, NewValidator())

	idp.On("SignUp", ctx, "ana@example.com", "secret1", ptr("Ana")).
		Return(auth.Identity{ID: "sub-1", Email: "ana@example.com"}, auth.Session{AccessToken: "at", RefreshToken: "rt", ExpiresIn: 3600}, nil)

	out, err := svc.Register(ctx, RegisterInput{Email: "  Ana@Example.com ", Password: "secret1", Name: ptr("Ana")})
	require.NoError(t, err)
	idp.AssertExpectations(t)

	assert.Equal(t, "sub-1", out.User.AuthID)
	require.NotNil(t, out.User.Fullname)
	assert.Equal(t, "Ana", *out.User.Fullname)
	assert.Equal(t, "at", out.AccessToken)
	assert.Equal(t, 3600, out.ExpiresIn)

	stored, err := users.FindByAuthID(ctx, "sub-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, out.User.ID, stored.ID())
}

func TestRegisterValidatesBeforeCallingProvider(t *testing.T) {
	idp := new(mockIdP)
	svc := NewAuthService(idp, memory.NewUserRepo(), NewValidator())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "nope", Password: "123"})

	got := violations(t, err)
	assert.Contains(t, got, "email")
	assert.Contains(t, got, "password")
	idp.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginReusesLocalUser(t *testing.T) {
	ctx := context.Background()
	idp := new(mockIdP)
	users := memory.NewUserRepo()
	svc := NewAuthService(idp, users, NewValidator())
	idp.On("SignIn", ctx, "bo@example.com", "pw").
		Return(auth.Identity{ID: "sub-2"}, auth.Session{AccessToken: "at"}, nil)

	first, err := svc.Login(ctx, LoginInput{Email: "bo@example.com", Password: "pw"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, LoginInput{Email: "BO@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	stored, err := users.FindByAuthID(ctx, "sub-2")
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestLoginPassesProviderError(t *testing.T) {
	ctx := context.Background()
	idp := new(mockIdP)
	svc := NewAuthService(idp, memory.NewUserRepo(), NewValidator())
	bad := &auth.ProviderError{Status: 400, Message: "Invalid login credentials"}
	idp.On("SignIn", ctx, "bo@example.com", "wrong").Return(auth.Identity{}, auth.Session{}, bad)

	_, err := svc.Login(ctx, LoginInput{Email: "bo@example.com", Password: "wrong"})

	assert.EqualError(t, err, "Invalid login credentials")
}

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	idp := new(mockIdP)
	users := memory.NewUserRepo()
	svc := NewAuthService(idp, users, NewValidator())
	u, err := users.Save(ctx, domain.NewUser("sub-3", nil))
	require.NoError(t, err)

	idp.On("VerifyToken", ctx, "good").Return(auth.Identity{ID: "sub-3"}, nil)
	idp.On("VerifyToken", ctx, "orphan").Return(auth.Identity{ID: "sub-gone"}, nil)
	idp.On("VerifyToken", ctx, "old").Return(auth.Identity{}, domain.ErrTokenExpired)

	out, err := svc.ValidateToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), out.ID)

	_, err = svc.ValidateToken(ctx, "orphan")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = svc.ValidateToken(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepo()
	svc := NewAuthService(new(mockIdP), users, NewValidator())
	u, err := users.Save(ctx, domain.NewUser("sub-4", ptr("Old")))
	require.NoError(t, err)

	out, err := svc.UpdateProfile(ctx, u.ID(), ProfileInput{})
	require.NoError(t, err)
	require.NotNil(t, out.Fullname)
	assert.Equal(t, "Old", *out.Fullname)

	out, err = svc.UpdateProfile(ctx, u.ID(), ProfileInput{Fullname: ptr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", *out.Fullname)

	out, err = svc.UpdateProfile(ctx, u.ID(), ProfileInput{Fullname: ptr("   ")})
	require.NoError(t, err)
	assert.Nil(t, out.Fullname)

	me, err := svc.Me(ctx, u.ID())
	require.NoError(t, err)
	assert.Nil(t, me.Fullname)

	_, err = svc.Me(ctx, 999)
	assert.EqualError(t, err, "User with id 999 not found")
}
