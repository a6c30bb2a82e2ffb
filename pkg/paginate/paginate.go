// Package paginate turns a (page, perPage) request into a bounded slice of an
// ordered collection plus the metadata clients need to walk it.
package paginate

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Request is bound from ?page=&perPage=. Zero values mean "use the default".
type Request struct {
	Page    int `form:"page" json:"page" validate:"omitempty,min=1"`
	PerPage int `form:"perPage" json:"perPage" validate:"omitempty,min=1,max=100"`
}

func (r Request) Normalize() Request {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	if r.PerPage == 0 {
		r.PerPage = DefaultPerPage
	}
	return r
}

type Meta struct {
	Total       int64 `json:"total"`
	LastPage    int   `json:"lastPage"`
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	Prev        *int  `json:"prev"`
	Next        *int  `json:"next"`
}

type Page[T any] struct {
	Items []T `json:"items"`
	Meta  Meta `json:"meta"`
}

// Offset is the number of items skipped before page starts. perPage must be > 0.
// It saturates at math.MaxInt instead of overflowing.
func Offset(page, perPage int) int {
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// PastEnd reports whether page starts at or after the last of total items, so
// loading it can be skipped.
func PastEnd(total int64, page, perPage int) bool {
	return int64(page-1) >= (total+int64(perPage)-1)/int64(perPage)
}

// NewMeta computes page metadata. perPage must be > 0; callers reject other
// values before getting here.
func NewMeta(total int64, page, perPage int) Meta {
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	m := Meta{Total: total, LastPage: last, CurrentPage: page, PerPage: perPage}
	if page > 1 {
		p := page - 1
		m.Prev = &p
	}
	if page < last {
		n := page + 1
		m.Next = &n
	}
	return m
}

// Slice paginates an already ordered in-memory source without reordering it.
// A page past the end yields no items but still carries correct metadata.
func Slice[T any](items []T, page, perPage int) Page[T] {
	total := len(items)
	start := Offset(page, perPage)
	out := make([]T, 0)
	if start >= 0 && start < total {
		end := start + perPage
		if end > total {
			end = total
		}
		out = append(out, items[start:end]...)
	}
	return Page[T]{Items: out, Meta: NewMeta(int64(total), page, perPage)}
}

// Map projects every item, keeping the metadata.
func Map[T, U any](p Page[T], f func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, f(it))
	}
	return Page[U]{Items: out, Meta: p.Meta}
}
