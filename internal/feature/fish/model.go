package fish

import (
	"time"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/feature/tank"
)

// FishModel is a row of "fish". Species is free text.
type FishModel struct {
	ID      int64           `gorm:"primaryKey;autoIncrement"`
	Name    string          `gorm:"size:100;not null"`
	Species string          `gorm:"size:100;not null;index"`
	TankID  *int64          `gorm:"index"`
	Tank    *tank.TankModel `gorm:"foreignKey:TankID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (FishModel) TableName() string { return "fish" }

func FromDomain(f *domain.Fish) FishModel {
	return FishModel{
		ID:        f.ID(),
		Name:      f.Name(),
		Species:   f.Species(),
		TankID:    f.TankID(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

func (m FishModel) ToDomain() *domain.Fish {
	return domain.RestoreFish(m.ID, domain.FishProps{Name: m.Name, Species: m.Species, TankID: m.TankID}, m.CreatedAt, m.UpdatedAt)
}

func Columns(p domain.FishPatch) map[string]any {
	cols := map[string]any{"updated_at": p.UpdatedAt}
	p.Name.Into(cols, "name")
	p.Species.Into(cols, "species")
	p.TankID.Into(cols, "tank_id")
	return cols
}
