package domain

import "time"

// now is swapped in tests to observe timestamp refreshes.
var now = time.Now

// Entity is what every persisted aggregate exposes.
type Entity interface {
	ID() int64
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

// Base holds identity and timestamps. ID and CreatedAt never change after
// construction; UpdatedAt moves forward once per mutation call.
type Base struct {
	id        int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBase defaults missing timestamps to the current time.
func NewBase(id int64, createdAt, updatedAt time.Time) Base {
	t := now()
	if createdAt.IsZero() {
		createdAt = t
	}
	if updatedAt.IsZero() {
		updatedAt = t
	}
	return Base{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

func (b Base) ID() int64            { return b.id }
func (b Base) CreatedAt() time.Time { return b.createdAt }
func (b Base) UpdatedAt() time.Time { return b.updatedAt }

func (b *Base) touch() { b.updatedAt = now() }

func strPtr(s string) *string { return &s }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
