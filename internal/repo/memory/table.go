// Package memory keeps entities in process memory. It backs the `memory`
// database driver and the service and router tests.
package memory

import (
	"sort"
	"sync"
	"time"
)

type row[P any] struct {
	id        int64
	p         P
	createdAt time.Time
	updatedAt time.Time
}

// table is an id-ordered map of rows guarded by one lock.
type table[P any] struct {
	mu   sync.RWMutex
	seq  int64
	rows map[int64]row[P]
}

func newTable[P any]() *table[P] { return &table[P]{rows: map[int64]row[P]{}} }

func (t *table[P]) get(id int64) (row[P], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.rows[id]
	return r, ok
}

// find returns the matching rows in id order; a nil match keeps every row.
func (t *table[P]) find(match func(P) bool) []row[P] {
	t.mu.RLock()
	out := make([]row[P], 0, len(t.rows))
	for _, r := range t.rows {
		if match == nil || match(r.p) {
			out = append(out, r)
		}
	}
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (t *table[P]) first(match func(P) bool) (row[P], bool) {
	rs := t.find(match)
	if len(rs) == 0 {
		return row[P]{}, false
	}
	return rs[0], true
}

func (t *table[P]) insert(p P, createdAt, updatedAt time.Time) row[P] {
	r, _ := t.insertUnique(p, nil, createdAt, updatedAt)
	return r
}

// insertUnique stores p unless it clashes with a stored row. The check and the
// write happen under one lock.
func (t *table[P]) insertUnique(p P, clash func(a, b P) bool, createdAt, updatedAt time.Time) (row[P], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.clashes(p, 0, clash) {
		return row[P]{}, false
	}
	t.seq++
	r := row[P]{id: t.seq, p: p, createdAt: createdAt, updatedAt: updatedAt}
	t.rows[r.id] = r
	return r, true
}

func (t *table[P]) update(id int64, merge func(P) P, updatedAt time.Time) (row[P], bool) {
	r, found, _ := t.updateUnique(id, merge, nil, updatedAt)
	return r, found
}

// updateUnique merges into row id unless the result clashes with another row.
func (t *table[P]) updateUnique(id int64, merge func(P) P, clash func(a, b P) bool, updatedAt time.Time) (r row[P], found, clashed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[id]
	if !ok {
		return row[P]{}, false, false
	}
	merged := merge(r.p)
	if t.clashes(merged, id, clash) {
		return row[P]{}, true, true
	}
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	r.p = merged
	r.updatedAt = updatedAt
	t.rows[id] = r
	return r, true, false
}

// clashes reports whether p clashes with any row other than self. Callers hold mu.
func (t *table[P]) clashes(p P, self int64, clash func(a, b P) bool) bool {
	if clash == nil {
		return false
	}
	for id, r := range t.rows {
		if id != self && clash(p, r.p) {
			return true
		}
	}
	return false
}

func (t *table[P]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func mapRows[P, E any](rs []row[P], f func(row[P]) E) []E {
	out := make([]E, 0, len(rs))
	for _, r := range rs {
		out = append(out, f(r))
	}
	return out
}
