package service

import (
	"context"
	"time"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/opt"
	"aquarium-tank-api/pkg/paginate"
)

type CreateFishSpeciesInput struct {
	NameEn         string   `json:"nameEn" validate:"required,max=100"`
	NameVn         string   `json:"nameVn" validate:"required,max=100"`
	ScientificName *string  `json:"scientificName" validate:"omitempty,max=150"`
	Aliases        []string `json:"aliases" validate:"omitempty,dive,min=1,max=100"`
	ImageURL       *string  `json:"imageUrl" validate:"omitempty,max=500"`

	// Water parameters are pointers so an omitted one is reported, not read as 0.
	TempMin *float64 `json:"tempMin" validate:"required,min=0,max=50"`
	TempMax *float64 `json:"tempMax" validate:"required,min=0,max=50"`
	PhMin   *float64 `json:"phMin" validate:"required,min=0,max=14"`
	PhMax   *float64 `json:"phMax" validate:"required,min=0,max=14"`
	GhMin   *float64 `json:"ghMin" validate:"omitempty,min=0,max=30"`
	GhMax   *float64 `json:"ghMax" validate:"omitempty,min=0,max=30"`

	MinTankSize    int                    `json:"minTankSize" validate:"min=1"`
	SizeMax        *float64               `json:"sizeMax" validate:"required,min=0"`
	BioloadLevel   *int                   `json:"bioloadLevel" validate:"omitempty,min=1,max=10"`
	FlowPreference *domain.FlowPreference `json:"flowPreference" validate:"omitempty,oneof=Slow Moderate Fast"`

	CareLevel       domain.CareLevel   `json:"careLevel" validate:"required,oneof=Easy Medium Expert"`
	Temperament     domain.Temperament `json:"temperament" validate:"required,oneof=Peaceful Semi-Aggressive Aggressive"`
	DietType        domain.DietType    `json:"dietType" validate:"required,oneof=Herbivore Carnivore Omnivore"`
	IsSchooling     *bool              `json:"isSchooling"`
	MinSchoolSize   *int               `json:"minSchoolSize" validate:"omitempty,min=1"`
	PlantSafe       *bool              `json:"plantSafe"`
	SubstrateDigger *bool              `json:"substrateDigger"`
	Jumper          *bool              `json:"jumper"`

	Description string `json:"description" validate:"required,min=10"`
}

func (in CreateFishSpeciesInput) props() domain.FishSpeciesProps {
	p := domain.FishSpeciesProps{
		NameEn:          in.NameEn,
		NameVn:          in.NameVn,
		ScientificName:  in.ScientificName,
		Aliases:         in.Aliases,
		ImageURL:        in.ImageURL,
		TempMin:         deref(in.TempMin),
		TempMax:         deref(in.TempMax),
		PhMin:           deref(in.PhMin),
		PhMax:           deref(in.PhMax),
		GhMin:           in.GhMin,
		GhMax:           in.GhMax,
		MinTankSize:     in.MinTankSize,
		SizeMax:         deref(in.SizeMax),
		CareLevel:       in.CareLevel,
		Temperament:     in.Temperament,
		DietType:        in.DietType,
		IsSchooling:     opt.FromPtr(in.IsSchooling).OrElse(false),
		PlantSafe:       opt.FromPtr(in.PlantSafe).OrElse(true),
		SubstrateDigger: opt.FromPtr(in.SubstrateDigger).OrElse(false),
		Jumper:          opt.FromPtr(in.Jumper).OrElse(false),
		Description:     in.Description,
	}
	if in.BioloadLevel != nil {
		p.BioloadLevel = *in.BioloadLevel
	}
	if in.FlowPreference != nil {
		p.FlowPreference = *in.FlowPreference
	}
	if in.MinSchoolSize != nil {
		p.MinSchoolSize = *in.MinSchoolSize
	}
	return p
}

// deref reads a field validation has already required.
func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

type UpdateFishSpeciesInput struct {
	NameEn         *string  `json:"nameEn" validate:"omitempty,min=1,max=100"`
	NameVn         *string  `json:"nameVn" validate:"omitempty,min=1,max=100"`
	ScientificName *string  `json:"scientificName" validate:"omitempty,max=150"`
	Aliases        []string `json:"aliases" validate:"omitempty,dive,min=1,max=100"`
	ImageURL       *string  `json:"imageUrl" validate:"omitempty,max=500"`

	TempMin *float64 `json:"tempMin" validate:"omitempty,min=0,max=50"`
	TempMax *float64 `json:"tempMax" validate:"omitempty,min=0,max=50"`
	PhMin   *float64 `json:"phMin" validate:"omitempty,min=0,max=14"`
	PhMax   *float64 `json:"phMax" validate:"omitempty,min=0,max=14"`
	GhMin   *float64 `json:"ghMin" validate:"omitempty,min=0,max=30"`
	GhMax   *float64 `json:"ghMax" validate:"omitempty,min=0,max=30"`

	MinTankSize    *int                   `json:"minTankSize" validate:"omitempty,min=1"`
	SizeMax        *float64               `json:"sizeMax" validate:"omitempty,min=0"`
	BioloadLevel   *int                   `json:"bioloadLevel" validate:"omitempty,min=1,max=10"`
	FlowPreference *domain.FlowPreference `json:"flowPreference" validate:"omitempty,oneof=Slow Moderate Fast"`

	CareLevel       *domain.CareLevel   `json:"careLevel" validate:"omitempty,oneof=Easy Medium Expert"`
	Temperament     *domain.Temperament `json:"temperament" validate:"omitempty,oneof=Peaceful Semi-Aggressive Aggressive"`
	DietType        *domain.DietType    `json:"dietType" validate:"omitempty,oneof=Herbivore Carnivore Omnivore"`
	IsSchooling     *bool               `json:"isSchooling"`
	MinSchoolSize   *int                `json:"minSchoolSize" validate:"omitempty,min=1"`
	PlantSafe       *bool               `json:"plantSafe"`
	SubstrateDigger *bool               `json:"substrateDigger"`
	Jumper          *bool               `json:"jumper"`

	Description *string `json:"description" validate:"omitempty,min=10"`
}

func (in UpdateFishSpeciesInput) patch() domain.FishSpeciesPatch {
	p := domain.FishSpeciesPatch{
		NameEn:         opt.FromPtr(in.NameEn),
		NameVn:         opt.FromPtr(in.NameVn),
		ScientificName: opt.FromPtr(in.ScientificName),
		ImageURL:       opt.FromPtr(in.ImageURL),
		TempMin:        opt.FromPtr(in.TempMin),
		TempMax:        opt.FromPtr(in.TempMax),
		PhMin:          opt.FromPtr(in.PhMin),
		PhMax:          opt.FromPtr(in.PhMax),
		GhMin:          opt.FromPtr(in.GhMin),
		GhMax:          opt.FromPtr(in.GhMax),
		MinTankSize:    opt.FromPtr(in.MinTankSize),
		SizeMax:        opt.FromPtr(in.SizeMax),
		BioloadLevel:   opt.FromPtr(in.BioloadLevel),
		FlowPreference: opt.FromPtr(in.FlowPreference),
		Behavior: domain.Behavior{
			CareLevel:       opt.FromPtr(in.CareLevel),
			Temperament:     opt.FromPtr(in.Temperament),
			DietType:        opt.FromPtr(in.DietType),
			IsSchooling:     opt.FromPtr(in.IsSchooling),
			MinSchoolSize:   opt.FromPtr(in.MinSchoolSize),
			PlantSafe:       opt.FromPtr(in.PlantSafe),
			SubstrateDigger: opt.FromPtr(in.SubstrateDigger),
			Jumper:          opt.FromPtr(in.Jumper),
		},
		Description: opt.FromPtr(in.Description),
	}
	if in.Aliases != nil {
		p.Aliases = opt.Some(in.Aliases)
	}
	return p
}

// ListFishSpeciesInput is bound from ?page=&perPage=&careLevel=&temperament=.
type ListFishSpeciesInput struct {
	paginate.Request
	CareLevel   domain.CareLevel   `form:"careLevel" json:"careLevel" validate:"omitempty,oneof=Easy Medium Expert"`
	Temperament domain.Temperament `form:"temperament" json:"temperament" validate:"omitempty,oneof=Peaceful Semi-Aggressive Aggressive"`
}

// CompatibleInput describes the water a tank holds.
type CompatibleInput struct {
	TempMin *float64 `form:"tempMin" json:"tempMin" validate:"required,min=0,max=50"`
	TempMax *float64 `form:"tempMax" json:"tempMax" validate:"required,min=0,max=50"`
	PhMin   *float64 `form:"phMin" json:"phMin" validate:"required,min=0,max=14"`
	PhMax   *float64 `form:"phMax" json:"phMax" validate:"required,min=0,max=14"`
}

type AliasInput struct {
	Alias string `json:"alias" validate:"required,max=100"`
}

type FishSpeciesOut struct {
	ID              int64                 `json:"id"`
	NameEn          string                `json:"nameEn"`
	NameVn          string                `json:"nameVn"`
	ScientificName  *string               `json:"scientificName,omitempty"`
	Aliases         []string              `json:"aliases"`
	ImageURL        *string               `json:"imageUrl,omitempty"`
	TempMin         float64               `json:"tempMin"`
	TempMax         float64               `json:"tempMax"`
	PhMin           float64               `json:"phMin"`
	PhMax           float64               `json:"phMax"`
	GhMin           *float64              `json:"ghMin,omitempty"`
	GhMax           *float64              `json:"ghMax,omitempty"`
	MinTankSize     int                   `json:"minTankSize"`
	SizeMax         float64               `json:"sizeMax"`
	BioloadLevel    int                   `json:"bioloadLevel"`
	FlowPreference  domain.FlowPreference `json:"flowPreference"`
	CareLevel       domain.CareLevel      `json:"careLevel"`
	Temperament     domain.Temperament    `json:"temperament"`
	DietType        domain.DietType       `json:"dietType"`
	IsSchooling     bool                  `json:"isSchooling"`
	MinSchoolSize   int                   `json:"minSchoolSize"`
	PlantSafe       bool                  `json:"plantSafe"`
	SubstrateDigger bool                  `json:"substrateDigger"`
	Jumper          bool                  `json:"jumper"`
	Description     string                `json:"description"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func NewFishSpeciesOut(s *domain.FishSpecies) FishSpeciesOut {
	p := s.Props()
	return FishSpeciesOut{
		ID:              s.ID(),
		NameEn:          p.NameEn,
		NameVn:          p.NameVn,
		ScientificName:  p.ScientificName,
		Aliases:         p.Aliases,
		ImageURL:        p.ImageURL,
		TempMin:         p.TempMin,
		TempMax:         p.TempMax,
		PhMin:           p.PhMin,
		PhMax:           p.PhMax,
		GhMin:           p.GhMin,
		GhMax:           p.GhMax,
		MinTankSize:     p.MinTankSize,
		SizeMax:         p.SizeMax,
		BioloadLevel:    p.BioloadLevel,
		FlowPreference:  p.FlowPreference,
		CareLevel:       p.CareLevel,
		Temperament:     p.Temperament,
		DietType:        p.DietType,
		IsSchooling:     p.IsSchooling,
		MinSchoolSize:   p.MinSchoolSize,
		PlantSafe:       p.PlantSafe,
		SubstrateDigger: p.SubstrateDigger,
		Jumper:          p.Jumper,
		Description:     p.Description,
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

type FishSpeciesService struct {
	species domain.FishSpeciesRepository
	v       *Validator
}

func NewFishSpeciesService(species domain.FishSpeciesRepository, v *Validator) *FishSpeciesService {
	return &FishSpeciesService{species: species, v: v}
}

// Create rejects inverted ranges and a duplicate English name.
func (s *FishSpeciesService) Create(ctx context.Context, in CreateFishSpeciesInput) (FishSpeciesOut, error) {
	if err := s.v.Struct(in); err != nil {
		return FishSpeciesOut{}, err
	}
	props := in.props()
	if v := props.RangeViolations(); len(v) > 0 {
		return FishSpeciesOut{}, domain.NewValidationError(v...)
	}
	if err := s.requireUniqueName(ctx, props.NameEn, 0); err != nil {
		return FishSpeciesOut{}, err
	}
	saved, err := s.species.Save(ctx, domain.NewFishSpecies(props))
	if err != nil {
		return FishSpeciesOut{}, err
	}
	return NewFishSpeciesOut(saved), nil
}

func (s *FishSpeciesService) List(ctx context.Context, in ListFishSpeciesInput) (paginate.Page[FishSpeciesOut], error) {
	if err := s.v.Struct(in); err != nil {
		return paginate.Page[FishSpeciesOut]{}, err
	}
	req := in.Request.Normalize()
	f := domain.SpeciesFilter{CareLevel: in.CareLevel, Temperament: in.Temperament}
	page, err := s.species.Page(ctx, f, req.Page, req.PerPage)
	if err != nil {
		return paginate.Page[FishSpeciesOut]{}, err
	}
	return paginate.Map(page, NewFishSpeciesOut), nil
}

func (s *FishSpeciesService) Get(ctx context.Context, id int64) (FishSpeciesOut, error) {
	sp, err := s.load(ctx, id)
	if err != nil {
		return FishSpeciesOut{}, err
	}
	return NewFishSpeciesOut(sp), nil
}

// Compatible lists the species whose temperature and pH tolerance overlap the
// given water.
func (s *FishSpeciesService) Compatible(ctx context.Context, in CompatibleInput) ([]FishSpeciesOut, error) {
	if err := s.v.Struct(in); err != nil {
		return nil, err
	}
	w := domain.WaterRange{TempMin: *in.TempMin, TempMax: *in.TempMax, PhMin: *in.PhMin, PhMax: *in.PhMax}
	if v := w.RangeViolations(); len(v) > 0 {
		return nil, domain.NewValidationError(v...)
	}
	found, err := s.species.FindCompatible(ctx, w)
	if err != nil {
		return nil, err
	}
	out := make([]FishSpeciesOut, 0, len(found))
	for _, sp := range found {
		out = append(out, NewFishSpeciesOut(sp))
	}
	return out, nil
}

// Update checks min <= max on the merged ranges, so a patch that only moves
// one bound is judged against the stored other bound.
func (s *FishSpeciesService) Update(ctx context.Context, id int64, in UpdateFishSpeciesInput) (FishSpeciesOut, error) {
	if err := s.v.Struct(in); err != nil {
		return FishSpeciesOut{}, err
	}
	sp, err := s.load(ctx, id)
	if err != nil {
		return FishSpeciesOut{}, err
	}
	p := in.patch()
	if v, ok := p.NameEn.Get(); ok && v != sp.NameEn() {
		if err := s.requireUniqueName(ctx, v, id); err != nil {
			return FishSpeciesOut{}, err
		}
	}
	sp.Apply(p)
	if v := sp.RangeViolations(); len(v) > 0 {
		return FishSpeciesOut{}, domain.NewValidationError(v...)
	}
	return s.save(ctx, sp, p)
}

func (s *FishSpeciesService) Delete(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.species.Delete(ctx, id)
}

// AddAlias persists only when the alias is new.
func (s *FishSpeciesService) AddAlias(ctx context.Context, id int64, in AliasInput) (FishSpeciesOut, error) {
	if err := s.v.Struct(in); err != nil {
		return FishSpeciesOut{}, err
	}
	sp, err := s.load(ctx, id)
	if err != nil {
		return FishSpeciesOut{}, err
	}
	n := len(sp.Aliases())
	sp.AddAlias(in.Alias)
	if len(sp.Aliases()) == n {
		return NewFishSpeciesOut(sp), nil
	}
	return s.save(ctx, sp, domain.FishSpeciesPatch{Aliases: opt.Some(sp.Aliases())})
}

// RemoveAlias persists only when the alias was present.
func (s *FishSpeciesService) RemoveAlias(ctx context.Context, id int64, in AliasInput) (FishSpeciesOut, error) {
	if err := s.v.Struct(in); err != nil {
		return FishSpeciesOut{}, err
	}
	sp, err := s.load(ctx, id)
	if err != nil {
		return FishSpeciesOut{}, err
	}
	n := len(sp.Aliases())
	sp.RemoveAlias(in.Alias)
	if len(sp.Aliases()) == n {
		return NewFishSpeciesOut(sp), nil
	}
	return s.save(ctx, sp, domain.FishSpeciesPatch{Aliases: opt.Some(sp.Aliases())})
}

func (s *FishSpeciesService) load(ctx context.Context, id int64) (*domain.FishSpecies, error) {
	sp, err := s.species.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.NotFound("FishSpecies", id)
	}
	return sp, nil
}

// requireUniqueName fails when another species (other than self) uses nameEn.
func (s *FishSpeciesService) requireUniqueName(ctx context.Context, nameEn string, self int64) error {
	existing, err := s.species.FindByNameEn(ctx, nameEn)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID() != self {
		return &domain.AlreadyExistsError{Entity: "FishSpecies", Field: "nameEn", Value: nameEn}
	}
	return nil
}

func (s *FishSpeciesService) save(ctx context.Context, sp *domain.FishSpecies, p domain.FishSpeciesPatch) (FishSpeciesOut, error) {
	p.UpdatedAt = sp.UpdatedAt()
	updated, err := s.species.Update(ctx, sp.ID(), p)
	if err != nil {
		return FishSpeciesOut{}, err
	}
	return NewFishSpeciesOut(updated), nil
}
