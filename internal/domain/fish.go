package domain

import (
	"time"

	"aquarium-tank-api/pkg/opt"
)

// FishProps is the mutable state of a fish. Species is free text, not a
// reference to FishSpecies.
type FishProps struct {
	Name    string
	Species string
	TankID  *int64
}

type Fish struct {
	Base
	p FishProps
}

func NewFish(p FishProps) *Fish { return RestoreFish(0, p, time.Time{}, time.Time{}) }

func RestoreFish(id int64, p FishProps, createdAt, updatedAt time.Time) *Fish {
	p.TankID = clonePtr(p.TankID)
	return &Fish{Base: NewBase(id, createdAt, updatedAt), p: p}
}

func (f *Fish) Props() FishProps {
	p := f.p
	p.TankID = clonePtr(p.TankID)
	return p
}

func (f *Fish) Name() string    { return f.p.Name }
func (f *Fish) Species() string { return f.p.Species }
func (f *Fish) TankID() *int64  { return clonePtr(f.p.TankID) }

func (f *Fish) Rename(name string) {
	f.p.Name = name
	f.touch()
}

func (f *Fish) ChangeSpecies(species string) {
	f.p.Species = species
	f.touch()
}

func (f *Fish) AssignToTank(tankID int64) {
	f.p.TankID = &tankID
	f.touch()
}

func (f *Fish) RemoveFromTank() {
	f.p.TankID = nil
	f.touch()
}

type FishPatch struct {
	Name      opt.Field[string]
	Species   opt.Field[string]
	TankID    opt.Field[*int64]
	UpdatedAt time.Time
}

func (f *Fish) Apply(p FishPatch) {
	if v, ok := p.Name.Get(); ok {
		f.Rename(v)
	}
	if v, ok := p.Species.Get(); ok {
		f.ChangeSpecies(v)
	}
	if v, ok := p.TankID.Get(); ok {
		if v == nil {
			f.RemoveFromTank()
		} else {
			f.AssignToTank(*v)
		}
	}
}

func (p FishPatch) Merge(props FishProps) FishProps {
	props.Name = p.Name.OrElse(props.Name)
	props.Species = p.Species.OrElse(props.Species)
	if v, ok := p.TankID.Get(); ok {
		props.TankID = clonePtr(v)
	} else {
		props.TankID = clonePtr(props.TankID)
	}
	return props
}
