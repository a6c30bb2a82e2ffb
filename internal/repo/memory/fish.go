package memory

import (
	"context"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/paginate"
)

type FishRepo struct{ t *table[domain.FishProps] }

func NewFishRepo() *FishRepo { return &FishRepo{t: newTable[domain.FishProps]()} }

func fishOf(r row[domain.FishProps]) *domain.Fish {
	return domain.RestoreFish(r.id, r.p, r.createdAt, r.updatedAt)
}

func ofSpecies(species string) func(domain.FishProps) bool {
	if species == "" {
		return nil
	}
	return func(p domain.FishProps) bool { return p.Species == species }
}

func (r *FishRepo) FindByID(_ context.Context, id int64) (*domain.Fish, error) {
	if row, ok := r.t.get(id); ok {
		return fishOf(row), nil
	}
	return nil, nil
}

func (r *FishRepo) FindAll(context.Context) ([]*domain.Fish, error) {
	return mapRows(r.t.find(nil), fishOf), nil
}

func (r *FishRepo) FindBySpecies(_ context.Context, species string) ([]*domain.Fish, error) {
	return mapRows(r.t.find(func(p domain.FishProps) bool { return p.Species == species }), fishOf), nil
}

func (r *FishRepo) Page(_ context.Context, species string, page, perPage int) (paginate.Page[*domain.Fish], error) {
	return paginate.Slice(mapRows(r.t.find(ofSpecies(species)), fishOf), page, perPage), nil
}

func (r *FishRepo) PageByTank(_ context.Context, tankID int64, page, perPage int) (paginate.Page[*domain.Fish], error) {
	in := func(p domain.FishProps) bool { return p.TankID != nil && *p.TankID == tankID }
	return paginate.Slice(mapRows(r.t.find(in), fishOf), page, perPage), nil
}

func (r *FishRepo) Save(_ context.Context, f *domain.Fish) (*domain.Fish, error) {
	return fishOf(r.t.insert(f.Props(), f.CreatedAt(), f.UpdatedAt())), nil
}

func (r *FishRepo) Update(_ context.Context, id int64, p domain.FishPatch) (*domain.Fish, error) {
	row, ok := r.t.update(id, p.Merge, p.UpdatedAt)
	if !ok {
		return nil, domain.NotFound("Fish", id)
	}
	return fishOf(row), nil
}

func (r *FishRepo) Delete(_ context.Context, id int64) error {
	if !r.t.remove(id) {
		return domain.NotFound("Fish", id)
	}
	return nil
}

var _ domain.FishRepository = (*FishRepo)(nil)
