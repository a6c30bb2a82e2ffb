package memory

import (
	"context"

	"aquarium-tank-api/internal/domain"
)

type userProps struct {
	authID   string
	fullname *string
}

type UserRepo struct{ t *table[userProps] }

func NewUserRepo() *UserRepo { return &UserRepo{t: newTable[userProps]()} }

func userOf(r row[userProps]) *domain.User {
	return domain.RestoreUser(r.id, r.p.authID, r.p.fullname, r.createdAt, r.updatedAt)
}

func (r *UserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if row, ok := r.t.get(id); ok {
		return userOf(row), nil
	}
	return nil, nil
}

func (r *UserRepo) FindByAuthID(_ context.Context, authID string) (*domain.User, error) {
	if row, ok := r.t.first(func(p userProps) bool { return p.authID == authID }); ok {
		return userOf(row), nil
	}
	return nil, nil
}

func (r *UserRepo) FindAll(context.Context) ([]*domain.User, error) {
	return mapRows(r.t.find(nil), userOf), nil
}

func (r *UserRepo) Save(_ context.Context, u *domain.User) (*domain.User, error) {
	sameAuthID := func(a, b userProps) bool { return a.authID == b.authID }
	row, ok := r.t.insertUnique(userProps{authID: u.AuthID(), fullname: u.Fullname()}, sameAuthID, u.CreatedAt(), u.UpdatedAt())
	if !ok {
		return nil, &domain.AlreadyExistsError{Entity: "User", Field: "authId", Value: u.AuthID()}
	}
	return userOf(row), nil
}

func (r *UserRepo) Update(_ context.Context, id int64, p domain.UserPatch) (*domain.User, error) {
	merge := func(cur userProps) userProps {
		if v, ok := p.Fullname.Get(); ok {
			cur.fullname = v
		}
		return cur
	}
	row, ok := r.t.update(id, merge, p.UpdatedAt)
	if !ok {
		return nil, domain.NotFound("User", id)
	}
	return userOf(row), nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	if !r.t.remove(id) {
		return domain.NotFound("User", id)
	}
	return nil
}

var _ domain.UserRepository = (*UserRepo)(nil)
