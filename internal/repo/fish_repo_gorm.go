package repo

import (
	"context"

	"gorm.io/gorm"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/feature/fish"
	"aquarium-tank-api/pkg/paginate"
)

type FishRepo struct{ db *gorm.DB }

func NewFishRepo(db *gorm.DB) *FishRepo { return &FishRepo{db: db} }

func (r *FishRepo) FindByID(ctx context.Context, id int64) (*domain.Fish, error) {
	return first(r.db.WithContext(ctx), fish.FishModel.ToDomain, "id = ?", id)
}

func (r *FishRepo) FindAll(ctx context.Context) ([]*domain.Fish, error) {
	return findAll(r.db.WithContext(ctx), fish.FishModel.ToDomain)
}

func (r *FishRepo) FindBySpecies(ctx context.Context, species string) ([]*domain.Fish, error) {
	return findAll(r.db.WithContext(ctx).Where("species = ?", species), fish.FishModel.ToDomain)
}

func (r *FishRepo) Page(ctx context.Context, species string, page, perPage int) (paginate.Page[*domain.Fish], error) {
	q := r.db.WithContext(ctx).Model(&fish.FishModel{})
	if species != "" {
		q = q.Where("species = ?", species)
	}
	return pageOf(q, page, perPage, fish.FishModel.ToDomain)
}

func (r *FishRepo) PageByTank(ctx context.Context, tankID int64, page, perPage int) (paginate.Page[*domain.Fish], error) {
	q := r.db.WithContext(ctx).Model(&fish.FishModel{}).Where("tank_id = ?", tankID)
	return pageOf(q, page, perPage, fish.FishModel.ToDomain)
}

func (r *FishRepo) Save(ctx context.Context, f *domain.Fish) (*domain.Fish, error) {
	m := fish.FromDomain(f)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return m.ToDomain(), nil
}

func (r *FishRepo) Update(ctx context.Context, id int64, p domain.FishPatch) (*domain.Fish, error) {
	ok, err := updateColumns(ctx, r.db, &fish.FishModel{}, id, fish.Columns(p))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("Fish", id)
	}
	return r.FindByID(ctx, id)
}

func (r *FishRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &fish.FishModel{}, "Fish", id)
}

var _ domain.FishRepository = (*FishRepo)(nil)
