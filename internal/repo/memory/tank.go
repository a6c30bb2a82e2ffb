package memory

import (
	"context"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/paginate"
)

type TankRepo struct{ t *table[domain.TankProps] }

func NewTankRepo() *TankRepo { return &TankRepo{t: newTable[domain.TankProps]()} }

func tankOf(r row[domain.TankProps]) *domain.Tank {
	return domain.RestoreTank(r.id, r.p, r.createdAt, r.updatedAt)
}

func ownedBy(ownerID int64) func(domain.TankProps) bool {
	return func(p domain.TankProps) bool { return p.OwnerID != nil && *p.OwnerID == ownerID }
}

func (r *TankRepo) FindByID(_ context.Context, id int64) (*domain.Tank, error) {
	if row, ok := r.t.get(id); ok {
		return tankOf(row), nil
	}
	return nil, nil
}

func (r *TankRepo) FindAll(context.Context) ([]*domain.Tank, error) {
	return mapRows(r.t.find(nil), tankOf), nil
}

func (r *TankRepo) FindByOwner(_ context.Context, ownerID int64) ([]*domain.Tank, error) {
	return mapRows(r.t.find(ownedBy(ownerID)), tankOf), nil
}

func (r *TankRepo) PageByOwner(_ context.Context, ownerID int64, page, perPage int) (paginate.Page[*domain.Tank], error) {
	return paginate.Slice(mapRows(r.t.find(ownedBy(ownerID)), tankOf), page, perPage), nil
}

func (r *TankRepo) Save(_ context.Context, t *domain.Tank) (*domain.Tank, error) {
	return tankOf(r.t.insert(t.Props(), t.CreatedAt(), t.UpdatedAt())), nil
}

func (r *TankRepo) Update(_ context.Context, id int64, p domain.TankPatch) (*domain.Tank, error) {
	row, ok := r.t.update(id, p.Merge, p.UpdatedAt)
	if !ok {
		return nil, domain.NotFound("Tank", id)
	}
	return tankOf(row), nil
}

func (r *TankRepo) Delete(_ context.Context, id int64) error {
	if !r.t.remove(id) {
		return domain.NotFound("Tank", id)
	}
	return nil
}

var _ domain.TankRepository = (*TankRepo)(nil)
