package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserRestoreKeepsTimestamps(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	name := "Test User"

	u := RestoreUser(5, "auth-123", &name, created, updated)

	assert.Equal(t, int64(5), u.ID())
	assert.Equal(t, "auth-123", u.AuthID())
	assert.Equal(t, "Test User", *u.Fullname())
	assert.Equal(t, created, u.CreatedAt())
	assert.Equal(t, updated, u.UpdatedAt())
}

func TestUserUpdateProfile(t *testing.T) {
	u := NewUser("auth-1", nil)
	c := useClock(t)

	name := "Updated"
	u.UpdateProfile(&name)
	assert.Equal(t, "Updated", *u.Fullname())

	u.UpdateProfile(nil)
	assert.Nil(t, u.Fullname())
	assert.Equal(t, 2, c.calls)
	assert.Equal(t, "auth-1", u.AuthID())
}
