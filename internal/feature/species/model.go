package species

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"aquarium-tank-api/internal/domain"
)

// Aliases is stored as text[] on postgres and as the same array literal in a
// text column on other dialects.
type Aliases []string

func (a Aliases) Value() (driver.Value, error) { return pq.StringArray(a).Value() }

func (a *Aliases) Scan(src any) error { return (*pq.StringArray)(a).Scan(src) }

func (Aliases) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

type FishSpeciesModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	NameEn         string  `gorm:"size:100;not null;uniqueIndex"`
	NameVn         string  `gorm:"size:100;not null"`
	ScientificName *string `gorm:"size:150"`
	Aliases        Aliases
	ImageURL       *string `gorm:"column:image_url;size:500"`

	TempMin float64 `gorm:"not null"`
	TempMax float64 `gorm:"not null"`
	PhMin   float64 `gorm:"not null"`
	PhMax   float64 `gorm:"not null"`
	GhMin   *float64
	GhMax   *float64

	MinTankSize    int     `gorm:"not null"`
	SizeMax        float64 `gorm:"not null"`
	BioloadLevel   int     `gorm:"not null;default:5"`
	FlowPreference string  `gorm:"size:20;not null;default:Moderate"`

	CareLevel       string `gorm:"size:20;not null;index"`
	Temperament     string `gorm:"size:20;not null;index"`
	DietType        string `gorm:"size:20;not null"`
	IsSchooling     bool   `gorm:"not null"`
	MinSchoolSize   int    `gorm:"not null;default:1"`
	PlantSafe       bool   `gorm:"not null"`
	SubstrateDigger bool   `gorm:"not null"`
	Jumper          bool   `gorm:"not null"`

	Description string `gorm:"type:text;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (FishSpeciesModel) TableName() string { return "fish_species" }

func FromDomain(s *domain.FishSpecies) FishSpeciesModel {
	p := s.Props()
	return FishSpeciesModel{
		ID:              s.ID(),
		NameEn:          p.NameEn,
		NameVn:          p.NameVn,
		ScientificName:  p.ScientificName,
		Aliases:         Aliases(p.Aliases),
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
		FlowPreference:  string(p.FlowPreference),
		CareLevel:       string(p.CareLevel),
		Temperament:     string(p.Temperament),
		DietType:        string(p.DietType),
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

func (m FishSpeciesModel) ToDomain() *domain.FishSpecies {
	return domain.RestoreFishSpecies(m.ID, domain.FishSpeciesProps{
		NameEn:          m.NameEn,
		NameVn:          m.NameVn,
		ScientificName:  m.ScientificName,
		Aliases:         []string(m.Aliases),
		ImageURL:        m.ImageURL,
		TempMin:         m.TempMin,
		TempMax:         m.TempMax,
		PhMin:           m.PhMin,
		PhMax:           m.PhMax,
		GhMin:           m.GhMin,
		GhMax:           m.GhMax,
		MinTankSize:     m.MinTankSize,
		SizeMax:         m.SizeMax,
		BioloadLevel:    m.BioloadLevel,
		FlowPreference:  domain.FlowPreference(m.FlowPreference),
		CareLevel:       domain.CareLevel(m.CareLevel),
		Temperament:     domain.Temperament(m.Temperament),
		DietType:        domain.DietType(m.DietType),
		IsSchooling:     m.IsSchooling,
		MinSchoolSize:   m.MinSchoolSize,
		PlantSafe:       m.PlantSafe,
		SubstrateDigger: m.SubstrateDigger,
		Jumper:          m.Jumper,
		Description:     m.Description,
	}, m.CreatedAt, m.UpdatedAt)
}

func Columns(p domain.FishSpeciesPatch) map[string]any {
	cols := map[string]any{"updated_at": p.UpdatedAt}
	p.NameEn.Into(cols, "name_en")
	p.NameVn.Into(cols, "name_vn")
	p.ScientificName.Into(cols, "scientific_name")
	if v, ok := p.Aliases.Get(); ok {
		cols["aliases"] = Aliases(v)
	}
	p.ImageURL.Into(cols, "image_url")
	p.TempMin.Into(cols, "temp_min")
	p.TempMax.Into(cols, "temp_max")
	p.PhMin.Into(cols, "ph_min")
	p.PhMax.Into(cols, "ph_max")
	p.GhMin.Into(cols, "gh_min")
	p.GhMax.Into(cols, "gh_max")
	p.MinTankSize.Into(cols, "min_tank_size")
	p.SizeMax.Into(cols, "size_max")
	p.BioloadLevel.Into(cols, "bioload_level")
	if v, ok := p.FlowPreference.Get(); ok {
		cols["flow_preference"] = string(v)
	}
	if v, ok := p.CareLevel.Get(); ok {
		cols["care_level"] = string(v)
	}
	if v, ok := p.Temperament.Get(); ok {
		cols["temperament"] = string(v)
	}
	if v, ok := p.DietType.Get(); ok {
		cols["diet_type"] = string(v)
	}
	p.IsSchooling.Into(cols, "is_schooling")
	p.MinSchoolSize.Into(cols, "min_school_size")
	p.PlantSafe.Into(cols, "plant_safe")
	p.SubstrateDigger.Into(cols, "substrate_digger")
	p.Jumper.Into(cols, "jumper")
	p.Description.Into(cols, "description")
	return cols
}
