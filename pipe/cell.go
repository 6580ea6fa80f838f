package pipe

import "reflect"

// Cell is a pipe whose value is set from outside the graph. It is the only place
// where change originates.
type Cell[T any] struct {
	subs  subs
	v     T
	old   T
	equal func(a, b T) bool
}

type CellOption[T any] func(c *Cell[T])

// WithEqual replaces the identity comparison used by Set.
func WithEqual[T any](equal func(a, b T) bool) CellOption[T] {
	return func(c *Cell[T]) {
		c.equal = equal
	}
}

func NewCell[T any](value T, opts ...CellOption[T]) *Cell[T] {
	c := &Cell[T]{v: value, equal: Identical[T]}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cell[T]) Value() T {
	return c.v
}

// OldValue is the value replaced by the last Set that changed the cell.
func (c *Cell[T]) OldValue() T {
	return c.old
}

// Set stores value and notifies every listener before returning. Setting a value
// identical to the current one does nothing.
func (c *Cell[T]) Set(value T) {
	if c.equal(c.v, value) {
		return
	}
	c.old = c.v
	c.v = value
	c.subs.invalidate()
	c.subs.notify(c)
}

func (c *Cell[T]) Subscribe(l Listener) (Token, error) {
	return c.subs.add(l)
}

func (c *Cell[T]) Unsubscribe(t Token) {
	c.subs.remove(t)
}

func (c *Cell[T]) Dispose() {
	for _, t := range c.subs.tokens() {
		c.subs.remove(t)
	}
}

func (c *Cell[T]) Subscribers() int {
	return c.subs.len()
}

// Identical reports whether a and b are the same value: equal for comparable
// values, the same backing reference for slices, maps, pointers, channels and
// functions. Two slices are identical only if they share data pointer and length.
func Identical[T any](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return false
}
