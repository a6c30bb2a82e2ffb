package domain

import (
	"context"

	"aquarium-tank-api/pkg/paginate"
)

// Finders return (nil, nil) when nothing matches. Update and Delete return an
// *EntityNotFoundError for a missing id. Update writes only the fields present
// in the patch, plus updated_at.

type TankRepository interface {
	FindByID(ctx context.Context, id int64) (*Tank, error)
	FindAll(ctx context.Context) ([]*Tank, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*Tank, error)
	PageByOwner(ctx context.Context, ownerID int64, page, perPage int) (paginate.Page[*Tank], error)
	Save(ctx context.Context, t *Tank) (*Tank, error)
	Update(ctx context.Context, id int64, p TankPatch) (*Tank, error)
	Delete(ctx context.Context, id int64) error
}

type FishRepository interface {
	FindByID(ctx context.Context, id int64) (*Fish, error)
	FindAll(ctx context.Context) ([]*Fish, error)
	FindBySpecies(ctx context.Context, species string) ([]*Fish, error)
	// Page lists all fish, or only those of species when it is non-empty.
	Page(ctx context.Context, species string, page, perPage int) (paginate.Page[*Fish], error)
	PageByTank(ctx context.Context, tankID int64, page, perPage int) (paginate.Page[*Fish], error)
	Save(ctx context.Context, f *Fish) (*Fish, error)
	Update(ctx context.Context, id int64, p FishPatch) (*Fish, error)
	Delete(ctx context.Context, id int64) error
}

// SpeciesFilter narrows a species listing; empty fields do not filter.
type SpeciesFilter struct {
	CareLevel   CareLevel
	Temperament Temperament
}

type FishSpeciesRepository interface {
	FindByID(ctx context.Context, id int64) (*FishSpecies, error)
	FindAll(ctx context.Context) ([]*FishSpecies, error)
	FindByNameEn(ctx context.Context, nameEn string) (*FishSpecies, error)
	FindByCareLevel(ctx context.Context, level CareLevel) ([]*FishSpecies, error)
	FindByTemperament(ctx context.Context, t Temperament) ([]*FishSpecies, error)
	FindCompatible(ctx context.Context, w WaterRange) ([]*FishSpecies, error)
	Page(ctx context.Context, f SpeciesFilter, page, perPage int) (paginate.Page[*FishSpecies], error)
	Save(ctx context.Context, s *FishSpecies) (*FishSpecies, error)
	Update(ctx context.Context, id int64, p FishSpeciesPatch) (*FishSpecies, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByAuthID(ctx context.Context, authID string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, id int64, p UserPatch) (*User, error)
	Delete(ctx context.Context, id int64) error
}
