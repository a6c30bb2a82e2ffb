package service

import (
	"context"
	"time"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/opt"
	"aquarium-tank-api/pkg/paginate"
)

type CreateTankInput struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Width       int        `json:"width" validate:"min=1"`
	Height      int        `json:"height" validate:"min=1"`
	Length      int        `json:"length" validate:"min=1"`
	Type        *string    `json:"type" validate:"omitempty,max=50"`
	Style       *string    `json:"style" validate:"omitempty,max=50"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Status      *string    `json:"status" validate:"omitempty,max=20"`
	SetupAt     *time.Time `json:"setup_at"`
	WaterVolume *float64   `json:"water_volume" validate:"omitempty,min=0"`
	Avatar      *string    `json:"avatar" validate:"omitempty,max=255"`
}

func (in CreateTankInput) props(ownerID int64) domain.TankProps {
	return domain.TankProps{
		Name:        in.Name,
		Width:       in.Width,
		Height:      in.Height,
		Length:      in.Length,
		Type:        in.Type,
		Style:       in.Style,
		Description: in.Description,
		Status:      in.Status,
		Avatar:      in.Avatar,
		SetupAt:     in.SetupAt,
		WaterVolume: in.WaterVolume,
		OwnerID:     &ownerID,
	}
}

// UpdateTankInput: nil fields are left unchanged.
type UpdateTankInput struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Width       *int       `json:"width" validate:"omitempty,min=1"`
	Height      *int       `json:"height" validate:"omitempty,min=1"`
	Length      *int       `json:"length" validate:"omitempty,min=1"`
	Type        *string    `json:"type" validate:"omitempty,max=50"`
	Style       *string    `json:"style" validate:"omitempty,max=50"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Status      *string    `json:"status" validate:"omitempty,max=20"`
	SetupAt     *time.Time `json:"setup_at"`
	WaterVolume *float64   `json:"water_volume" validate:"omitempty,min=0"`
	Avatar      *string    `json:"avatar" validate:"omitempty,max=255"`
}

func (in UpdateTankInput) patch() domain.TankPatch {
	return domain.TankPatch{
		Name:        opt.FromPtr(in.Name),
		Width:       opt.FromPtr(in.Width),
		Height:      opt.FromPtr(in.Height),
		Length:      opt.FromPtr(in.Length),
		Type:        opt.FromPtr(in.Type),
		Style:       opt.FromPtr(in.Style),
		Description: opt.FromPtr(in.Description),
		Status:      opt.FromPtr(in.Status),
		Avatar:      opt.FromPtr(in.Avatar),
		SetupAt:     opt.FromPtr(in.SetupAt),
		WaterVolume: opt.FromPtr(in.WaterVolume),
	}
}

type TankOut struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Length      int        `json:"length"`
	Type        *string    `json:"type,omitempty"`
	Style       *string    `json:"style,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	SetupAt     *time.Time `json:"setup_at,omitempty"`
	WaterVolume *float64   `json:"water_volume,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	OwnerID     *int64     `json:"ownerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewTankOut(t *domain.Tank) TankOut {
	p := t.Props()
	return TankOut{
		ID:          t.ID(),
		Name:        p.Name,
		Width:       p.Width,
		Height:      p.Height,
		Length:      p.Length,
		Type:        p.Type,
		Style:       p.Style,
		Description: p.Description,
		Status:      p.Status,
		SetupAt:     p.SetupAt,
		WaterVolume: p.WaterVolume,
		Avatar:      p.Avatar,
		OwnerID:     p.OwnerID,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type TankService struct {
	tanks domain.TankRepository
	fish  domain.FishRepository
	v     *Validator
}

func NewTankService(tanks domain.TankRepository, fish domain.FishRepository, v *Validator) *TankService {
	return &TankService{tanks: tanks, fish: fish, v: v}
}

// Create stores a new tank owned by ownerID.
func (s *TankService) Create(ctx context.Context, in CreateTankInput, ownerID int64) (TankOut, error) {
	if err := s.v.Struct(in); err != nil {
		return TankOut{}, err
	}
	saved, err := s.tanks.Save(ctx, domain.NewTank(in.props(ownerID)))
	if err != nil {
		return TankOut{}, err
	}
	return NewTankOut(saved), nil
}

// List pages through the tanks owned by ownerID.
func (s *TankService) List(ctx context.Context, ownerID int64, req paginate.Request) (paginate.Page[TankOut], error) {
	if err := s.v.Struct(req); err != nil {
		return paginate.Page[TankOut]{}, err
	}
	req = req.Normalize()
	page, err := s.tanks.PageByOwner(ctx, ownerID, req.Page, req.PerPage)
	if err != nil {
		return paginate.Page[TankOut]{}, err
	}
	return paginate.Map(page, NewTankOut), nil
}

func (s *TankService) ListByOwner(ctx context.Context, ownerID int64) ([]TankOut, error) {
	tanks, err := s.tanks.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]TankOut, 0, len(tanks))
	for _, t := range tanks {
		out = append(out, NewTankOut(t))
	}
	return out, nil
}

func (s *TankService) Get(ctx context.Context, id int64) (TankOut, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return TankOut{}, err
	}
	return NewTankOut(t), nil
}

func (s *TankService) Update(ctx context.Context, id int64, in UpdateTankInput) (TankOut, error) {
	if err := s.v.Struct(in); err != nil {
		return TankOut{}, err
	}
	t, err := s.load(ctx, id)
	if err != nil {
		return TankOut{}, err
	}
	p := in.patch()
	t.Apply(p)
	return s.save(ctx, t, p)
}

func (s *TankService) Delete(ctx context.Context, id int64) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.tanks.Delete(ctx, id)
}

func (s *TankService) AssignToUser(ctx context.Context, tankID, userID int64) (TankOut, error) {
	t, err := s.load(ctx, tankID)
	if err != nil {
		return TankOut{}, err
	}
	t.AssignToUser(userID)
	return s.save(ctx, t, domain.TankPatch{OwnerID: opt.Some(&userID)})
}

func (s *TankService) RemoveFromUser(ctx context.Context, tankID int64) (TankOut, error) {
	t, err := s.load(ctx, tankID)
	if err != nil {
		return TankOut{}, err
	}
	t.RemoveFromUser()
	return s.save(ctx, t, domain.TankPatch{OwnerID: opt.Some[*int64](nil)})
}

// ListFish pages through the fish living in tankID.
func (s *TankService) ListFish(ctx context.Context, tankID int64, req paginate.Request) (paginate.Page[FishOut], error) {
	if err := s.v.Struct(req); err != nil {
		return paginate.Page[FishOut]{}, err
	}
	if _, err := s.load(ctx, tankID); err != nil {
		return paginate.Page[FishOut]{}, err
	}
	req = req.Normalize()
	page, err := s.fish.PageByTank(ctx, tankID, req.Page, req.PerPage)
	if err != nil {
		return paginate.Page[FishOut]{}, err
	}
	return paginate.Map(page, NewFishOut), nil
}

func (s *TankService) load(ctx context.Context, id int64) (*domain.Tank, error) {
	t, err := s.tanks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound("Tank", id)
	}
	return t, nil
}

// save persists the fields of p; the timestamp comes from the mutated entity.
func (s *TankService) save(ctx context.Context, t *domain.Tank, p domain.TankPatch) (TankOut, error) {
	p.UpdatedAt = t.UpdatedAt()
	updated, err := s.tanks.Update(ctx, t.ID(), p)
	if err != nil {
		return TankOut{}, err
	}
	return NewTankOut(updated), nil
}
