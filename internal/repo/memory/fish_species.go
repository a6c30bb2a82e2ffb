package memory

import (
	"context"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/paginate"
)

type FishSpeciesRepo struct{ t *table[domain.FishSpeciesProps] }

func NewFishSpeciesRepo() *FishSpeciesRepo {
	return &FishSpeciesRepo{t: newTable[domain.FishSpeciesProps]()}
}

func speciesOf(r row[domain.FishSpeciesProps]) *domain.FishSpecies {
	return domain.RestoreFishSpecies(r.id, r.p, r.createdAt, r.updatedAt)
}

func (r *FishSpeciesRepo) FindByID(_ context.Context, id int64) (*domain.FishSpecies, error) {
	if row, ok := r.t.get(id); ok {
		return speciesOf(row), nil
	}
	return nil, nil
}

func (r *FishSpeciesRepo) FindAll(context.Context) ([]*domain.FishSpecies, error) {
	return mapRows(r.t.find(nil), speciesOf), nil
}

func (r *FishSpeciesRepo) FindByNameEn(_ context.Context, nameEn string) (*domain.FishSpecies, error) {
	if row, ok := r.t.first(func(p domain.FishSpeciesProps) bool { return p.NameEn == nameEn }); ok {
		return speciesOf(row), nil
	}
	return nil, nil
}

func (r *FishSpeciesRepo) FindByCareLevel(_ context.Context, level domain.CareLevel) ([]*domain.FishSpecies, error) {
	return mapRows(r.t.find(func(p domain.FishSpeciesProps) bool { return p.CareLevel == level }), speciesOf), nil
}

func (r *FishSpeciesRepo) FindByTemperament(_ context.Context, t domain.Temperament) ([]*domain.FishSpecies, error) {
	return mapRows(r.t.find(func(p domain.FishSpeciesProps) bool { return p.Temperament == t }), speciesOf), nil
}

func (r *FishSpeciesRepo) FindCompatible(_ context.Context, w domain.WaterRange) ([]*domain.FishSpecies, error) {
	return mapRows(r.t.find(func(p domain.FishSpeciesProps) bool { return p.CompatibleWith(w) }), speciesOf), nil
}

func (r *FishSpeciesRepo) Page(_ context.Context, f domain.SpeciesFilter, page, perPage int) (paginate.Page[*domain.FishSpecies], error) {
	match := func(p domain.FishSpeciesProps) bool {
		return (f.CareLevel == "" || p.CareLevel == f.CareLevel) &&
			(f.Temperament == "" || p.Temperament == f.Temperament)
	}
	return paginate.Slice(mapRows(r.t.find(match), speciesOf), page, perPage), nil
}

func sameNameEn(a, b domain.FishSpeciesProps) bool { return a.NameEn == b.NameEn }

func nameTaken(nameEn string) error {
	return &domain.AlreadyExistsError{Entity: "FishSpecies", Field: "nameEn", Value: nameEn}
}

func (r *FishSpeciesRepo) Save(_ context.Context, s *domain.FishSpecies) (*domain.FishSpecies, error) {
	row, ok := r.t.insertUnique(s.Props(), sameNameEn, s.CreatedAt(), s.UpdatedAt())
	if !ok {
		return nil, nameTaken(s.NameEn())
	}
	return speciesOf(row), nil
}

func (r *FishSpeciesRepo) Update(_ context.Context, id int64, p domain.FishSpeciesPatch) (*domain.FishSpecies, error) {
	row, found, clashed := r.t.updateUnique(id, p.Merge, sameNameEn, p.UpdatedAt)
	switch {
	case !found:
		return nil, domain.NotFound("FishSpecies", id)
	case clashed:
		v, _ := p.NameEn.Get()
		return nil, nameTaken(v)
	}
	return speciesOf(row), nil
}

func (r *FishSpeciesRepo) Delete(_ context.Context, id int64) error {
	if !r.t.remove(id) {
		return domain.NotFound("FishSpecies", id)
	}
	return nil
}

var _ domain.FishSpeciesRepository = (*FishSpeciesRepo)(nil)
