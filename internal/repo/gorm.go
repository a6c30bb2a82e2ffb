// Package repo implements the domain repositories on gorm.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"aquarium-tank-api/internal/domain"
	"aquarium-tank-api/pkg/paginate"
)

// first loads one row matching query. E is a pointer type; it is nil when no
// row matches.
func first[M any, E any](q *gorm.DB, conv func(M) E, query any, args ...any) (E, error) {
	var (
		m    M
		zero E
	)
	err := q.Where(query, args...).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return conv(m), nil
}

func findAll[M any, E any](q *gorm.DB, conv func(M) E) ([]E, error) {
	var ms []M
	if err := q.Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]E, 0, len(ms))
	for _, m := range ms {
		out = append(out, conv(m))
	}
	return out, nil
}

// pageOf counts q, then loads one id-ordered page of it. A page past the end
// is answered from the count alone.
func pageOf[M any, E any](q *gorm.DB, page, perPage int, conv func(M) E) (paginate.Page[E], error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return paginate.Page[E]{}, err
	}
	if paginate.PastEnd(total, page, perPage) {
		return paginate.Page[E]{Items: []E{}, Meta: paginate.NewMeta(total, page, perPage)}, nil
	}
	var ms []M
	if err := q.Order("id").Offset(paginate.Offset(page, perPage)).Limit(perPage).Find(&ms).Error; err != nil {
		return paginate.Page[E]{}, err
	}
	items := make([]E, 0, len(ms))
	for _, m := range ms {
		items = append(items, conv(m))
	}
	return paginate.Page[E]{Items: items, Meta: paginate.NewMeta(total, page, perPage)}, nil
}

// updateColumns writes cols to the row with id and reports whether it existed.
func updateColumns(ctx context.Context, db *gorm.DB, model any, id int64, cols map[string]any) (bool, error) {
	if t, ok := cols["updated_at"].(time.Time); !ok || t.IsZero() {
		cols["updated_at"] = time.Now()
	}
	res := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, entity string, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(entity, id)
	}
	return nil
}

// translate turns a unique-key violation into an *AlreadyExistsError when the
// caller knows which field it guards.
func translate(err error, entity, field, value string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) && entity != "" {
		return &domain.AlreadyExistsError{Entity: entity, Field: field, Value: value}
	}
	return err
}
