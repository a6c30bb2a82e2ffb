package repo

import (
	"context"

	"gorm.io/gorm"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return first(r.db.WithContext(ctx), user.UserModel.ToDomain, "id = ?", id)
}

func (r *UserRepo) FindByAuthID(ctx context.Context, authID string) (*domain.User, error) {
	return first(r.db.WithContext(ctx), user.UserModel.ToDomain, "auth_id = ?", authID)
}

func (r *UserRepo) FindAll(ctx context.Context) ([]*domain.User, error) {
	return findAll(r.db.WithContext(ctx), user.UserModel.ToDomain)
}

func (r *UserRepo) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := user.FromDomain(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translate(err, "User", "authId", u.AuthID())
	}
	return m.ToDomain(), nil
}

func (r *UserRepo) Update(ctx context.Context, id int64, p domain.UserPatch) (*domain.User, error) {
	cols := map[string]any{"updated_at": p.UpdatedAt}
	p.Fullname.Into(cols, "fullname")
	ok, err := updateColumns(ctx, r.db, &user.UserModel{}, id, cols)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("User", id)
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &user.UserModel{}, "User", id)
}

var _ domain.UserRepository = (*UserRepo)(nil)
