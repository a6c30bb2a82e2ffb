package repo

import (
	"context"

	"gorm.io/gorm"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/feature/tank"
	"aquarium-tank-api/pkg/paginate"
)

type TankRepo struct{ db *gorm.DB }

func NewTankRepo(db *gorm.DB) *TankRepo { return &TankRepo{db: db} }

func (r *TankRepo) FindByID(ctx context.Context, id int64) (*domain.Tank, error) {
	return first(r.db.WithContext(ctx), tank.TankModel.ToDomain, "id = ?", id)
}

func (r *TankRepo) FindAll(ctx context.Context) ([]*domain.Tank, error) {
	return findAll(r.db.WithContext(ctx), tank.TankModel.ToDomain)
}

func (r *TankRepo) FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Tank, error) {
	return findAll(r.db.WithContext(ctx).Where("owner_id = ?", ownerID), tank.TankModel.ToDomain)
}

func (r *TankRepo) PageByOwner(ctx context.Context, ownerID int64, page, perPage int) (paginate.Page[*domain.Tank], error) {
	q := r.db.WithContext(ctx).Model(&tank.TankModel{}).Where("owner_id = ?", ownerID)
	return pageOf(q, page, perPage, tank.TankModel.ToDomain)
}

func (r *TankRepo) Save(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	m := tank.FromDomain(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *TankRepo) Update(ctx context.Context, id int64, p domain.TankPatch) (*domain.Tank, error) {
	ok, err := updateColumns(ctx, r.db, &tank.TankModel{}, id, tank.Columns(p))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("Tank", id)
	}
	return r.FindByID(ctx, id)
}

func (r *TankRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &tank.TankModel{}, "Tank", id)
}

var _ domain.TankRepository = (*TankRepo)(nil)
