package repo

import (
	"context"

	"gorm.io/gorm"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/feature/species"
	"aquarium-tank-api/pkg/paginate"
)

type FishSpeciesRepo struct{ db *gorm.DB }

func NewFishSpeciesRepo(db *gorm.DB) *FishSpeciesRepo { return &FishSpeciesRepo{db: db} }

func (r *FishSpeciesRepo) FindByID(ctx context.Context, id int64) (*domain.FishSpecies, error) {
	return first(r.db.WithContext(ctx), species.FishSpeciesModel.ToDomain, "id = ?", id)
}

func (r *FishSpeciesRepo) FindAll(ctx context.Context) ([]*domain.FishSpecies, error) {
	return findAll(r.db.WithContext(ctx), species.FishSpeciesModel.ToDomain)
}

func (r *FishSpeciesRepo) FindByNameEn(ctx context.Context, nameEn string) (*domain.FishSpecies, error) {
	return first(r.db.WithContext(ctx), species.FishSpeciesModel.ToDomain, "name_en = ?", nameEn)
}

func (r *FishSpeciesRepo) FindByCareLevel(ctx context.Context, level domain.CareLevel) ([]*domain.FishSpecies, error) {
	return findAll(r.db.WithContext(ctx).Where("care_level = ?", string(level)), species.FishSpeciesModel.ToDomain)
}

func (r *FishSpeciesRepo) FindByTemperament(ctx context.Context, t domain.Temperament) ([]*domain.FishSpecies, error) {
	return findAll(r.db.WithContext(ctx).Where("temperament = ?", string(t)), species.FishSpeciesModel.ToDomain)
}

// FindCompatible returns species whose temperature and pH ranges overlap w.
func (r *FishSpeciesRepo) FindCompatible(ctx context.Context, w domain.WaterRange) ([]*domain.FishSpecies, error) {
	q := r.db.WithContext(ctx).
		Where("temp_min <= ? AND temp_max >= ?", w.TempMax, w.TempMin).
		Where("ph_min <= ? AND ph_max >= ?", w.PhMax, w.PhMin)
	return findAll(q, species.FishSpeciesModel.ToDomain)
}

func (r *FishSpeciesRepo) Page(ctx context.Context, f domain.SpeciesFilter, page, perPage int) (paginate.Page[*domain.FishSpecies], error) {
	q := r.db.WithContext(ctx).Model(&species.FishSpeciesModel{})
	if f.CareLevel != "" {
		q = q.Where("care_level = ?", string(f.CareLevel))
	}
	if f.Temperament != "" {
		q = q.Where("temperament = ?", string(f.Temperament))
	}
	return pageOf(q, page, perPage, species.FishSpeciesModel.ToDomain)
}

func (r *FishSpeciesRepo) Save(ctx context.Context, s *domain.FishSpecies) (*domain.FishSpecies, error) {
	m := species.FromDomain(s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translate(err, "FishSpecies", "nameEn", s.NameEn())
	}
	return m.ToDomain(), nil
}

func (r *FishSpeciesRepo) Update(ctx context.Context, id int64, p domain.FishSpeciesPatch) (*domain.FishSpecies, error) {
	ok, err := updateColumns(ctx, r.db, &species.FishSpeciesModel{}, id, species.Columns(p))
	if err != nil {
		if v, named := p.NameEn.Get(); named {
			return nil, translate(err, "FishSpecies", "nameEn", v)
		}
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("FishSpecies", id)
	}
	return r.FindByID(ctx, id)
}

func (r *FishSpeciesRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &species.FishSpeciesModel{}, "FishSpecies", id)
}

var _ domain.FishSpeciesRepository = (*FishSpeciesRepo)(nil)
