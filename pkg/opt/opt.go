// Package opt models a field that may be absent from a partial update.
package opt

// Field carries a value together with whether it was provided at all.
// The zero Field is absent.
type Field[T any] struct {
	v   T
	set bool
}

func Some[T any](v T) Field[T] { return Field[T]{v: v, set: true} }

func None[T any]() Field[T] { return Field[T]{} }

// FromPtr treats nil as absent.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Field[T]{}
	}
	return Some(*p)
}

func (f Field[T]) Get() (T, bool) { return f.v, f.set }

func (f Field[T]) IsSet() bool { return f.set }

func (f Field[T]) OrElse(def T) T {
	if f.set {
		return f.v
	}
	return def
}

// Into stores the value in m under key when it is present.
func (f Field[T]) Into(m map[string]any, key string) {
	if f.set {
		m[key] = f.v
	}
}
