package domain

import (
	"time"

	"aquarium-tank-api/pkg/opt"
)

// User mirrors an identity-provider account locally. AuthID is the provider's
// subject id; it is set at construction and has no setter.
type User struct {
	Base
	authID   string
	fullname *string
}

func NewUser(authID string, fullname *string) *User {
	return RestoreUser(0, authID, fullname, time.Time{}, time.Time{})
}

func RestoreUser(id int64, authID string, fullname *string, createdAt, updatedAt time.Time) *User {
	return &User{Base: NewBase(id, createdAt, updatedAt), authID: authID, fullname: clonePtr(fullname)}
}

func (u *User) AuthID() string    { return u.authID }
func (u *User) Fullname() *string { return clonePtr(u.fullname) }

// UpdateProfile replaces the display name; nil clears it.
func (u *User) UpdateProfile(fullname *string) {
	u.fullname = clonePtr(fullname)
	u.touch()
}

type UserPatch struct {
	Fullname  opt.Field[*string]
	UpdatedAt time.Time
}
