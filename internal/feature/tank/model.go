package tank

import (
	"time"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/internal/feature/user"
)

// TankModel is a row of "tanks". Deleting the owning user leaves the tank
// unowned.
type TankModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"size:100;not null"`
	Width       int        `gorm:"not null"`
	Height      int        `gorm:"not null"`
	Length      int        `gorm:"not null"`
	Type        *string    `gorm:"size:50"`
	Style       *string    `gorm:"size:50"`
	Description *string    `gorm:"size:500"`
	Status      *string    `gorm:"size:20"`
	Avatar      *string    `gorm:"size:255"`
	SetupAt     *time.Time
	WaterVolume *float64
	OwnerID     *int64          `gorm:"index"`
	Owner       *user.UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TankModel) TableName() string { return "tanks" }

func FromDomain(t *domain.Tank) TankModel {
	p := t.Props()
	return TankModel{
		ID:          t.ID(),
		Name:        p.Name,
		Width:       p.Width,
		Height:      p.Height,
		Length:      p.Length,
		Type:        p.Type,
		Style:       p.Style,
		Description: p.Description,
		Status:      p.Status,
		Avatar:      p.Avatar,
		SetupAt:     p.SetupAt,
		WaterVolume: p.WaterVolume,
		OwnerID:     p.OwnerID,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func (m TankModel) ToDomain() *domain.Tank {
	return domain.RestoreTank(m.ID, domain.TankProps{
		Name:        m.Name,
		Width:       m.Width,
		Height:      m.Height,
		Length:      m.Length,
		Type:        m.Type,
		Style:       m.Style,
		Description: m.Description,
		Status:      m.Status,
		Avatar:      m.Avatar,
		SetupAt:     m.SetupAt,
		WaterVolume: m.WaterVolume,
		OwnerID:     m.OwnerID,
	}, m.CreatedAt, m.UpdatedAt)
}

// Columns maps the present fields of a patch to column names.
func Columns(p domain.TankPatch) map[string]any {
	cols := map[string]any{"updated_at": p.UpdatedAt}
	p.Name.Into(cols, "name")
	p.Width.Into(cols, "width")
	p.Height.Into(cols, "height")
	p.Length.Into(cols, "length")
	p.Type.Into(cols, "type")
	p.Style.Into(cols, "style")
	p.Description.Into(cols, "description")
	p.Status.Into(cols, "status")
	p.Avatar.Into(cols, "avatar")
	p.SetupAt.Into(cols, "setup_at")
	p.WaterVolume.Into(cols, "water_volume")
	p.OwnerID.Into(cols, "owner_id")
	return cols
}
