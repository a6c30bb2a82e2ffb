package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aquarium-tank-api/internal/core/auth"
	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/opt"
)

// IdentityProvider owns credentials; the local users table only mirrors its
// subject ids.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string, fullname *string) (auth.Identity, auth.Session, error)
	SignIn(ctx context.Context, email, password string) (auth.Identity, auth.Session, error)
	VerifyToken(ctx context.Context, token string) (auth.Identity, error)
}

type RegisterInput struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Name     *string `json:"name" validate:"omitempty,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// ProfileInput: a nil fullname leaves it unchanged, an empty one clears it.
type ProfileInput struct {
	Fullname *string `json:"fullname" validate:"omitempty,max=100"`
}

type UserOut struct {
	ID        int64     `json:"id"`
	AuthID    string    `json:"authId"`
	Fullname  *string   `json:"fullname,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserOut(u *domain.User) UserOut {
	return UserOut{
		ID:        u.ID(),
		AuthID:    u.AuthID(),
		Fullname:  u.Fullname(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

type AuthOut struct {
	User         UserOut `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
	ExpiresIn    int     `json:"expiresIn"`
}

type AuthService struct {
	idp   IdentityProvider
	users domain.UserRepository
	v     *Validator
}

func NewAuthService(idp IdentityProvider, users domain.UserRepository, v *Validator) *AuthService {
	return &AuthService{idp: idp, users: users, v: v}
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthOut, error) {
	in.Email = normalizeEmail(in.Email)
	if err := s.v.Struct(in); err != nil {
		return AuthOut{}, err
	}
	id, sess, err := s.idp.SignUp(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return AuthOut{}, err
	}
	if id.Fullname == nil {
		id.Fullname = in.Name
	}
	u, err := s.syncUser(ctx, id)
	if err != nil {
		return AuthOut{}, err
	}
	return newAuthOut(u, sess), nil
}

// Login signs in with the provider and creates the local mirror on first use.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthOut, error) {
	in.Email = normalizeEmail(in.Email)
	if err := s.v.Struct(in); err != nil {
		return AuthOut{}, err
	}
	id, sess, err := s.idp.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return AuthOut{}, err
	}
	u, err := s.syncUser(ctx, id)
	if err != nil {
		return AuthOut{}, err
	}
	return newAuthOut(u, sess), nil
}

// ValidateToken resolves a bearer token to its local user. A valid token
// whose subject has no local user is still unauthorized.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (UserOut, error) {
	id, err := s.idp.VerifyToken(ctx, token)
	if err != nil {
		return UserOut{}, err
	}
	u, err := s.users.FindByAuthID(ctx, id.ID)
	if err != nil {
		return UserOut{}, err
	}
	if u == nil {
		return UserOut{}, fmt.Errorf("%w: user not found", domain.ErrUnauthorized)
	}
	return NewUserOut(u), nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (UserOut, error) {
	u, err := s.load(ctx, userID)
	if err != nil {
		return UserOut{}, err
	}
	return NewUserOut(u), nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (UserOut, error) {
	if err := s.v.Struct(in); err != nil {
		return UserOut{}, err
	}
	u, err := s.load(ctx, userID)
	if err != nil {
		return UserOut{}, err
	}
	if in.Fullname == nil {
		return NewUserOut(u), nil
	}
	name := in.Fullname
	if strings.TrimSpace(*name) == "" {
		name = nil
	}
	u.UpdateProfile(name)
	updated, err := s.users.Update(ctx, u.ID(), domain.UserPatch{Fullname: opt.Some(name), UpdatedAt: u.UpdatedAt()})
	if err != nil {
		return UserOut{}, err
	}
	return NewUserOut(updated), nil
}

func (s *AuthService) load(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("User", id)
	}
	return u, nil
}

func (s *AuthService) syncUser(ctx context.Context, id auth.Identity) (*domain.User, error) {
	u, err := s.users.FindByAuthID(ctx, id.ID)
	if err != nil || u != nil {
		return u, err
	}
	return s.users.Save(ctx, domain.NewUser(id.ID, id.Fullname))
}

func newAuthOut(u *domain.User, sess auth.Session) AuthOut {
	return AuthOut{
		User:         NewUserOut(u),
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresIn:    sess.ExpiresIn,
	}
}
