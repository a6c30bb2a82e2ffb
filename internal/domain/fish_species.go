package domain

import (
	"slices"
	"time"

	"aquarium-tank-api/pkg/opt"
)

type CareLevel string

const (
	CareEasy   CareLevel = "Easy"
	CareMedium CareLevel = "Medium"
	CareExpert CareLevel = "Expert"
)

type Temperament string

const (
	Peaceful       Temperament = "Peaceful"
	SemiAggressive Temperament = "Semi-Aggressive"
	Aggressive     Temperament = "Aggressive"
)

type DietType string

const (
	Herbivore DietType = "Herbivore"
	Carnivore DietType = "Carnivore"
	Omnivore  DietType = "Omnivore"
)

type FlowPreference string

const (
	FlowSlow     FlowPreference = "Slow"
	FlowModerate FlowPreference = "Moderate"
	FlowFast     FlowPreference = "Fast"
)

const DefaultBioloadLevel = 5

// FishSpeciesProps is reference data about a species. Temperatures are °C,
// hardness °dGH, tank size litres, body size cm.
type FishSpeciesProps struct {
	NameEn         string
	NameVn         string
	ScientificName *string
	Aliases        []string
	ImageURL       *string

	TempMin float64
	TempMax float64
	PhMin   float64
	PhMax   float64
	GhMin   *float64
	GhMax   *float64

	MinTankSize    int
	SizeMax        float64
	BioloadLevel   int
	FlowPreference FlowPreference

	CareLevel       CareLevel
	Temperament     Temperament
	DietType        DietType
	IsSchooling     bool
	MinSchoolSize   int
	PlantSafe       bool
	SubstrateDigger bool
	Jumper          bool

	Description string
}

func (p FishSpeciesProps) clone() FishSpeciesProps {
	p.ScientificName = clonePtr(p.ScientificName)
	p.ImageURL = clonePtr(p.ImageURL)
	p.GhMin = clonePtr(p.GhMin)
	p.GhMax = clonePtr(p.GhMax)
	if p.Aliases == nil {
		p.Aliases = []string{}
	} else {
		p.Aliases = slices.Clone(p.Aliases)
	}
	return p
}

func (p FishSpeciesProps) withDefaults() FishSpeciesProps {
	if p.BioloadLevel == 0 {
		p.BioloadLevel = DefaultBioloadLevel
	}
	if p.FlowPreference == "" {
		p.FlowPreference = FlowModerate
	}
	if p.MinSchoolSize == 0 {
		p.MinSchoolSize = 1
	}
	return p
}

type FishSpecies struct {
	Base
	p FishSpeciesProps
}

// NewFishSpecies fills bioload (5), flow (Moderate) and min school size (1)
// when left at their zero values.
func NewFishSpecies(p FishSpeciesProps) *FishSpecies {
	return RestoreFishSpecies(0, p.withDefaults(), time.Time{}, time.Time{})
}

func RestoreFishSpecies(id int64, p FishSpeciesProps, createdAt, updatedAt time.Time) *FishSpecies {
	return &FishSpecies{Base: NewBase(id, createdAt, updatedAt), p: p.clone()}
}

func (s *FishSpecies) Props() FishSpeciesProps { return s.p.clone() }

func (s *FishSpecies) NameEn() string      { return s.p.NameEn }
func (s *FishSpecies) Aliases() []string   { return slices.Clone(s.p.Aliases) }
func (s *FishSpecies) BioloadLevel() int   { return s.p.BioloadLevel }
func (s *FishSpecies) Description() string { return s.p.Description }

func (s *FishSpecies) UpdateIdentity(nameEn, nameVn, scientificName, imageURL opt.Field[string]) {
	if v, ok := nameEn.Get(); ok {
		s.p.NameEn = v
	}
	if v, ok := nameVn.Get(); ok {
		s.p.NameVn = v
	}
	if v, ok := scientificName.Get(); ok {
		s.p.ScientificName = strPtr(v)
	}
	if v, ok := imageURL.Get(); ok {
		s.p.ImageURL = strPtr(v)
	}
	s.touch()
}

// AddAlias touches only when the alias is new.
func (s *FishSpecies) AddAlias(alias string) {
	if slices.Contains(s.p.Aliases, alias) {
		return
	}
	s.p.Aliases = append(s.p.Aliases, alias)
	s.touch()
}

// RemoveAlias touches only when the alias was present.
func (s *FishSpecies) RemoveAlias(alias string) {
	i := slices.Index(s.p.Aliases, alias)
	if i < 0 {
		return
	}
	s.p.Aliases = slices.Delete(s.p.Aliases, i, i+1)
	s.touch()
}

func (s *FishSpecies) ReplaceAliases(aliases []string) {
	s.p.Aliases = slices.Clone(aliases)
	if s.p.Aliases == nil {
		s.p.Aliases = []string{}
	}
	s.touch()
}

func (s *FishSpecies) UpdateWaterParameters(tempMin, tempMax, phMin, phMax, ghMin, ghMax opt.Field[float64]) {
	s.p.TempMin = tempMin.OrElse(s.p.TempMin)
	s.p.TempMax = tempMax.OrElse(s.p.TempMax)
	s.p.PhMin = phMin.OrElse(s.p.PhMin)
	s.p.PhMax = phMax.OrElse(s.p.PhMax)
	if v, ok := ghMin.Get(); ok {
		s.p.GhMin = &v
	}
	if v, ok := ghMax.Get(); ok {
		s.p.GhMax = &v
	}
	s.touch()
}

func (s *FishSpecies) UpdateTankRequirements(minTankSize opt.Field[int], sizeMax opt.Field[float64], bioload opt.Field[int], flow opt.Field[FlowPreference]) {
	s.p.MinTankSize = minTankSize.OrElse(s.p.MinTankSize)
	s.p.SizeMax = sizeMax.OrElse(s.p.SizeMax)
	s.p.BioloadLevel = bioload.OrElse(s.p.BioloadLevel)
	s.p.FlowPreference = flow.OrElse(s.p.FlowPreference)
	s.touch()
}

// Behavior groups the behaviour and compatibility fields of a species update.
type Behavior struct {
	CareLevel       opt.Field[CareLevel]
	Temperament     opt.Field[Temperament]
	DietType        opt.Field[DietType]
	IsSchooling     opt.Field[bool]
	MinSchoolSize   opt.Field[int]
	PlantSafe       opt.Field[bool]
	SubstrateDigger opt.Field[bool]
	Jumper          opt.Field[bool]
}

func (b Behavior) any() bool {
	return b.CareLevel.IsSet() || b.Temperament.IsSet() || b.DietType.IsSet() ||
		b.IsSchooling.IsSet() || b.MinSchoolSize.IsSet() || b.PlantSafe.IsSet() ||
		b.SubstrateDigger.IsSet() || b.Jumper.IsSet()
}

func (s *FishSpecies) UpdateBehavior(b Behavior) {
	s.p.CareLevel = b.CareLevel.OrElse(s.p.CareLevel)
	s.p.Temperament = b.Temperament.OrElse(s.p.Temperament)
	s.p.DietType = b.DietType.OrElse(s.p.DietType)
	s.p.IsSchooling = b.IsSchooling.OrElse(s.p.IsSchooling)
	s.p.MinSchoolSize = b.MinSchoolSize.OrElse(s.p.MinSchoolSize)
	s.p.PlantSafe = b.PlantSafe.OrElse(s.p.PlantSafe)
	s.p.SubstrateDigger = b.SubstrateDigger.OrElse(s.p.SubstrateDigger)
	s.p.Jumper = b.Jumper.OrElse(s.p.Jumper)
	s.touch()
}

func (s *FishSpecies) UpdateDescription(description string) {
	s.p.Description = description
	s.touch()
}

// RangeViolations lists every min/max pair where min exceeds max.
func (s *FishSpecies) RangeViolations() []Violation { return s.p.RangeViolations() }

func (p FishSpeciesProps) RangeViolations() []Violation {
	var out []Violation
	out = appendRange(out, "tempMin", "tempMax", p.TempMin, p.TempMax)
	out = appendRange(out, "phMin", "phMax", p.PhMin, p.PhMax)
	if p.GhMin != nil && p.GhMax != nil {
		out = appendRange(out, "ghMin", "ghMax", *p.GhMin, *p.GhMax)
	}
	return out
}

func appendRange(out []Violation, minField, maxField string, lo, hi float64) []Violation {
	if lo <= hi {
		return out
	}
	return append(out, Violation{Field: maxField, Message: maxField + " must be greater than or equal to " + minField})
}

// WaterRange is the water a tank offers; species whose tolerated ranges
// overlap it on both temperature and pH are compatible.
type WaterRange struct {
	TempMin float64
	TempMax float64
	PhMin   float64
	PhMax   float64
}

func (w WaterRange) RangeViolations() []Violation {
	out := appendRange(nil, "tempMin", "tempMax", w.TempMin, w.TempMax)
	return appendRange(out, "phMin", "phMax", w.PhMin, w.PhMax)
}

func (p FishSpeciesProps) CompatibleWith(w WaterRange) bool {
	return p.TempMin <= w.TempMax && p.TempMax >= w.TempMin &&
		p.PhMin <= w.PhMax && p.PhMax >= w.PhMin
}

type FishSpeciesPatch struct {
	NameEn         opt.Field[string]
	NameVn         opt.Field[string]
	ScientificName opt.Field[string]
	Aliases        opt.Field[[]string]
	ImageURL       opt.Field[string]

	TempMin opt.Field[float64]
	TempMax opt.Field[float64]
	PhMin   opt.Field[float64]
	PhMax   opt.Field[float64]
	GhMin   opt.Field[float64]
	GhMax   opt.Field[float64]

	MinTankSize    opt.Field[int]
	SizeMax        opt.Field[float64]
	BioloadLevel   opt.Field[int]
	FlowPreference opt.Field[FlowPreference]

	Behavior

	Description opt.Field[string]
	UpdatedAt   time.Time
}

// Apply calls one grouped mutation per group that has any field present.
func (s *FishSpecies) Apply(p FishSpeciesPatch) {
	if p.NameEn.IsSet() || p.NameVn.IsSet() || p.ScientificName.IsSet() || p.ImageURL.IsSet() {
		s.UpdateIdentity(p.NameEn, p.NameVn, p.ScientificName, p.ImageURL)
	}
	if v, ok := p.Aliases.Get(); ok {
		s.ReplaceAliases(v)
	}
	if p.TempMin.IsSet() || p.TempMax.IsSet() || p.PhMin.IsSet() || p.PhMax.IsSet() || p.GhMin.IsSet() || p.GhMax.IsSet() {
		s.UpdateWaterParameters(p.TempMin, p.TempMax, p.PhMin, p.PhMax, p.GhMin, p.GhMax)
	}
	if p.MinTankSize.IsSet() || p.SizeMax.IsSet() || p.BioloadLevel.IsSet() || p.FlowPreference.IsSet() {
		s.UpdateTankRequirements(p.MinTankSize, p.SizeMax, p.BioloadLevel, p.FlowPreference)
	}
	if p.Behavior.any() {
		s.UpdateBehavior(p.Behavior)
	}
	if v, ok := p.Description.Get(); ok {
		s.UpdateDescription(v)
	}
}

func (p FishSpeciesPatch) Merge(props FishSpeciesProps) FishSpeciesProps {
	s := RestoreFishSpecies(0, props, time.Time{}, time.Time{})
	s.Apply(p)
	return s.p.clone()
}
