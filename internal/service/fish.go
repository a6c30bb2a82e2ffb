package service

import (
	"context"
	"time"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/opt"
	"aquarium-tank-api/pkg/paginate"
)

type CreateFishInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Species string `json:"species" validate:"required,max=100"`
	TankID  *int64 `json:"tankId" validate:"omitempty,min=1"`
}

type UpdateFishInput struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Species *string `json:"species" validate:"omitempty,min=1,max=100"`
}

func (in UpdateFishInput) patch() domain.FishPatch {
	return domain.FishPatch{Name: opt.FromPtr(in.Name), Species: opt.FromPtr(in.Species)}
}

// ListFishInput is bound from ?page=&perPage=&species=.
type ListFishInput struct {
	paginate.Request
	Species string `form:"species" json:"species" validate:"omitempty,max=100"`
}

type FishOut struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	TankID    *int64    `json:"tankId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewFishOut(f *domain.Fish) FishOut {
	return FishOut{
		ID:        f.ID(),
		Name:      f.Name(),
		Species:   f.Species(),
		TankID:    f.TankID(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}

type FishService struct {
	fish  domain.FishRepository
	tanks domain.TankRepository
	v     *Validator
}

func NewFishService(fish domain.FishRepository, tanks domain.TankRepository, v *Validator) *FishService {
	return &FishService{fish: fish, tanks: tanks, v: v}
}

func (s *FishService) Create(ctx context.Context, in CreateFishInput) (FishOut, error) {
	if err := s.v.Struct(in); err != nil {
		return FishOut{}, err
	}
	if in.TankID != nil {
		if err := s.requireTank(ctx, *in.TankID); err != nil {
			return FishOut{}, err
		}
	}
	saved, err := s.fish.Save(ctx, domain.NewFish(domain.FishProps{Name: in.Name, Species: in.Species, TankID: in.TankID}))
	if err != nil {
		return FishOut{}, err
	}
	return NewFishOut(saved), nil
}

// List pages through all fish, narrowed to one species when in.Species is set.
func (s *FishService) List(ctx context.Context, in ListFishInput) (paginate.Page[FishOut], error) {
	if err := s.v.Struct(in); err != nil {
		return paginate.Page[FishOut]{}, err
	}
	req := in.Request.Normalize()
	page, err := s.fish.Page(ctx, in.Species, req.Page, req.PerPage)
	if err != nil {
		return paginate.Page[FishOut]{}, err
	}
	return paginate.Map(page, NewFishOut), nil
}

func (s *FishService) Get(ctx context.Context, id int64) (FishOut, error) {
	f, err := s.load(ctx, id)
	if err != nil {
		return FishOut{}, err
	}
	return NewFishOut(f), nil
}

func (s *FishService) Update(ctx context.Context, id int64, in UpdateFishInput) (FishOut, error) {
	if err := s.v.Struct(in); err != nil {
		return FishOut{}, err
	}
	f, err := s.load(ctx, id)
	if err != nil {
		return FishOut{}, err
	}
	p := in.patch()
	f.Apply(p)
	return s.save(ctx, f, p)
}

func (s *FishService) Delete(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.fish.Delete(ctx, id)
}

// AssignToTank moves the fish into tankID, which must exist.
func (s *FishService) AssignToTank(ctx context.Context, fishID, tankID int64) (FishOut, error) {
	f, err := s.load(ctx, fishID)
	if err != nil {
		return FishOut{}, err
	}
	if err := s.requireTank(ctx, tankID); err != nil {
		return FishOut{}, err
	}
	f.AssignToTank(tankID)
	return s.save(ctx, f, domain.FishPatch{TankID: opt.Some(&tankID)})
}

func (s *FishService) RemoveFromTank(ctx context.Context, fishID int64) (FishOut, error) {
	f, err := s.load(ctx, fishID)
	if err != nil {
		return FishOut{}, err
	}
	f.RemoveFromTank()
	return s.save(ctx, f, domain.FishPatch{TankID: opt.Some[*int64](nil)})
}

func (s *FishService) load(ctx context.Context, id int64) (*domain.Fish, error) {
	f, err := s.fish.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.NotFound("Fish", id)
	}
	return f, nil
}

func (s *FishService) requireTank(ctx context.Context, id int64) error {
	t, err := s.tanks.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.NotFound("Tank", id)
	}
	return nil
}

func (s *FishService) save(ctx context.Context, f *domain.Fish, p domain.FishPatch) (FishOut, error) {
	p.UpdatedAt = f.UpdatedAt()
	updated, err := s.fish.Update(ctx, f.ID(), p)
	if err != nil {
		return FishOut{}, err
	}
	return NewFishOut(updated), nil
}
