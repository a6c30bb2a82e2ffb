package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aquarium-tank-api/internal/core/auth"
	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/paginate"
)

type mockTankRepo struct{ mock.Mock }

func (m *mockTankRepo) FindByID(ctx context.Context, id int64) (*domain.Tank, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*domain.Tank)
	return t, args.Error(1)
}

func (m *mockTankRepo) FindAll(ctx context.Context) ([]*domain.Tank, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).([]*domain.Tank)
	return ts, args.Error(1)
}

func (m *mockTankRepo) FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Tank, error) {
	args := m.Called(ctx, ownerID)
	ts, _ := args.Get(0).([]*domain.Tank)
	return ts, args.Error(1)
}

func (m *mockTankRepo) PageByOwner(ctx context.Context, ownerID int64, page, perPage int) (paginate.Page[*domain.Tank], error) {
	args := m.Called(ctx, ownerID, page, perPage)
	p, _ := args.Get(0).(paginate.Page[*domain.Tank])
	return p, args.Error(1)
}

func (m *mockTankRepo) Save(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(*domain.Tank)
	return out, args.Error(1)
}

func (m *mockTankRepo) Update(ctx context.Context, id int64, p domain.TankPatch) (*domain.Tank, error) {
	args := m.Called(ctx, id, p)
	out, _ := args.Get(0).(*domain.Tank)
	return out, args.Error(1)
}

func (m *mockTankRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockIdP struct{ mock.Mock }

func (m *mockIdP) SignUp(ctx context.Context, email, password string, fullname *string) (auth.Identity, auth.Session, error) {
	args := m.Called(ctx, email, password, fullname)
	return args.Get(0).(auth.Identity), args.Get(1).(auth.Session), args.Error(2)
}

func (m *mockIdP) SignIn(ctx context.Context, email, password string) (auth.Identity, auth.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(auth.Identity), args.Get(1).(auth.Session), args.Error(2)
}

func (m *mockIdP) VerifyToken(ctx context.Context, token string) (auth.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.Identity), args.Error(1)
}
