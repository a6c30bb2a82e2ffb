package user

import (
	"time"

	"aquarium-tank-api/internal/domain"
)

// UserModel mirrors an identity-provider account. AuthID is the provider's
// subject id.
type UserModel struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	AuthID   string  `gorm:"uniqueIndex;size:64;not null"`
	Fullname *string `gorm:"size:100"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func FromDomain(u *domain.User) UserModel {
	return UserModel{
		ID:        u.ID(),
		AuthID:    u.AuthID(),
		Fullname:  u.Fullname(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func (m UserModel) ToDomain() *domain.User {
	return domain.RestoreUser(m.ID, m.AuthID, m.Fullname, m.CreatedAt, m.UpdatedAt)
}
