package domain

import (
	"time"

	"aquarium-tank-api/pkg/opt"
)

// TankProps is the mutable state of a tank. Dimensions are centimetres,
// water volume litres.
type TankProps struct {
	Name        string
	Width       int
	Height      int
	Length      int
	Type        *string
	Style       *string
	Description *string
	Status      *string
	Avatar      *string
	SetupAt     *time.Time
	WaterVolume *float64
	OwnerID     *int64
}

type Tank struct {
	Base
	p TankProps
}

// NewTank builds a tank that has not been persisted yet.
func NewTank(p TankProps) *Tank { return RestoreTank(0, p, time.Time{}, time.Time{}) }

// RestoreTank rebuilds a tank from stored state.
func RestoreTank(id int64, p TankProps, createdAt, updatedAt time.Time) *Tank {
	return &Tank{Base: NewBase(id, createdAt, updatedAt), p: p.clone()}
}

func (p TankProps) clone() TankProps {
	p.Type = clonePtr(p.Type)
	p.Style = clonePtr(p.Style)
	p.Description = clonePtr(p.Description)
	p.Status = clonePtr(p.Status)
	p.Avatar = clonePtr(p.Avatar)
	p.SetupAt = clonePtr(p.SetupAt)
	p.WaterVolume = clonePtr(p.WaterVolume)
	p.OwnerID = clonePtr(p.OwnerID)
	return p
}

// Props returns a copy; changing it does not affect the tank.
func (t *Tank) Props() TankProps { return t.p.clone() }

func (t *Tank) Name() string    { return t.p.Name }
func (t *Tank) Width() int      { return t.p.Width }
func (t *Tank) Height() int     { return t.p.Height }
func (t *Tank) Length() int     { return t.p.Length }
func (t *Tank) OwnerID() *int64 { return clonePtr(t.p.OwnerID) }

// Volume is the recorded water volume, or the gross volume of the box in litres.
func (t *Tank) Volume() float64 {
	if t.p.WaterVolume != nil {
		return *t.p.WaterVolume
	}
	return float64(t.p.Width*t.p.Height*t.p.Length) / 1000
}

func (t *Tank) Rename(name string) {
	t.p.Name = name
	t.touch()
}

func (t *Tank) Resize(width, height, length int) {
	t.p.Width, t.p.Height, t.p.Length = width, height, length
	t.touch()
}

func (t *Tank) ChangeType(v string) {
	t.p.Type = strPtr(v)
	t.touch()
}

func (t *Tank) ChangeStyle(v string) {
	t.p.Style = strPtr(v)
	t.touch()
}

func (t *Tank) ChangeDescription(v string) {
	t.p.Description = strPtr(v)
	t.touch()
}

func (t *Tank) ChangeStatus(v string) {
	t.p.Status = strPtr(v)
	t.touch()
}

func (t *Tank) ChangeAvatar(v string) {
	t.p.Avatar = strPtr(v)
	t.touch()
}

func (t *Tank) ScheduleSetup(at time.Time) {
	t.p.SetupAt = &at
	t.touch()
}

func (t *Tank) ChangeWaterVolume(litres float64) {
	t.p.WaterVolume = &litres
	t.touch()
}

func (t *Tank) AssignToUser(userID int64) {
	t.p.OwnerID = &userID
	t.touch()
}

func (t *Tank) RemoveFromUser() {
	t.p.OwnerID = nil
	t.touch()
}

// TankPatch lists the fields a partial update writes. Absent fields are left
// untouched; OwnerID set to nil clears the owner.
type TankPatch struct {
	Name        opt.Field[string]
	Width       opt.Field[int]
	Height      opt.Field[int]
	Length      opt.Field[int]
	Type        opt.Field[string]
	Style       opt.Field[string]
	Description opt.Field[string]
	Status      opt.Field[string]
	Avatar      opt.Field[string]
	SetupAt     opt.Field[time.Time]
	WaterVolume opt.Field[float64]
	OwnerID     opt.Field[*int64]
	UpdatedAt   time.Time
}

// Apply runs the named mutation for every field present in p. Dimensions given
// together or partially are merged with the current ones and applied in one
// Resize call.
func (t *Tank) Apply(p TankPatch) {
	if v, ok := p.Name.Get(); ok {
		t.Rename(v)
	}
	if p.Width.IsSet() || p.Height.IsSet() || p.Length.IsSet() {
		t.Resize(p.Width.OrElse(t.p.Width), p.Height.OrElse(t.p.Height), p.Length.OrElse(t.p.Length))
	}
	if v, ok := p.Type.Get(); ok {
		t.ChangeType(v)
	}
	if v, ok := p.Style.Get(); ok {
		t.ChangeStyle(v)
	}
	if v, ok := p.Description.Get(); ok {
		t.ChangeDescription(v)
	}
	if v, ok := p.Status.Get(); ok {
		t.ChangeStatus(v)
	}
	if v, ok := p.Avatar.Get(); ok {
		t.ChangeAvatar(v)
	}
	if v, ok := p.SetupAt.Get(); ok {
		t.ScheduleSetup(v)
	}
	if v, ok := p.WaterVolume.Get(); ok {
		t.ChangeWaterVolume(v)
	}
	if v, ok := p.OwnerID.Get(); ok {
		if v == nil {
			t.RemoveFromUser()
		} else {
			t.AssignToUser(*v)
		}
	}
}

// Merge writes the present fields of p over props. It is pure data: no
// timestamps move.
func (p TankPatch) Merge(props TankProps) TankProps {
	props = props.clone()
	if v, ok := p.Name.Get(); ok {
		props.Name = v
	}
	props.Width = p.Width.OrElse(props.Width)
	props.Height = p.Height.OrElse(props.Height)
	props.Length = p.Length.OrElse(props.Length)
	if v, ok := p.Type.Get(); ok {
		props.Type = strPtr(v)
	}
	if v, ok := p.Style.Get(); ok {
		props.Style = strPtr(v)
	}
	if v, ok := p.Description.Get(); ok {
		props.Description = strPtr(v)
	}
	if v, ok := p.Status.Get(); ok {
		props.Status = strPtr(v)
	}
	if v, ok := p.Avatar.Get(); ok {
		props.Avatar = strPtr(v)
	}
	if v, ok := p.SetupAt.Get(); ok {
		props.SetupAt = &v
	}
	if v, ok := p.WaterVolume.Get(); ok {
		props.WaterVolume = &v
	}
	if v, ok := p.OwnerID.Get(); ok {
		props.OwnerID = clonePtr(v)
	}
	return props
}
