package view

import "github.com/delaneyj/pipes/pipe"

type ChildKind uint8

const (
	LiteralChild ChildKind = iota
	FutureChild
	PipeChild
	ThunkChild
)

func (k ChildKind) String() string {
	switch k {
	case LiteralChild:
		return "literal"
	case FutureChild:
		return "future"
	case PipeChild:
		return "pipe"
	case ThunkChild:
		return "thunk"
	default:
		return "unknown"
	}
}

// Child is something that can be placed inside an element. Build one with
// Literal, Await, Bind or Thunk.
type Child struct {
	kind   ChildKind
	value  any
	future *Future
	source pipe.Observable
	read   func() any
	thunk  func() Child
}

func (c Child) Kind() ChildKind {
	return c.kind
}

// Literal renders v once. v may be nil, a string, a number, a bool, a
// fmt.Stringer, a *Node, a Child or a slice of any of those.
func Literal(v any) Child {
	return Child{kind: LiteralChild, value: v}
}

// Await renders nothing until f resolves, then renders what it resolved to.
func Await(f *Future) Child {
	return Child{kind: FutureChild, future: f}
}

// Bind renders the current value of p and re-renders it whenever p changes.
func Bind[T any](p pipe.Pipe[T]) Child {
	return Child{
		kind:   PipeChild,
		source: p,
		read:   func() any { return p.Value() },
	}
}

// Thunk defers building a child until it is placed.
func Thunk(fn func() Child) Child {
	return Child{kind: ThunkChild, thunk: fn}
}

func childOf(v any) Child {
	if c, ok := v.(Child); ok {
		return c
	}
	return Literal(v)
}

// Future is a child that is resolved later by the application, typically once
// some asynchronous work has finished. Resolve must be called from the same
// goroutine that drives the pipes.
type Future struct {
	done    bool
	value   Child
	next    int
	waiters map[int]func(Child)
}

func NewFuture() *Future {
	return &Future{waiters: map[int]func(Child){}}
}

func (f *Future) Resolved() bool {
	return f.done
}

// Resolve settles f with c and updates every place it was rendered. Only the
// first call has an effect.
func (f *Future) Resolve(c Child) {
	if f.done {
		return
	}
	f.done, f.value = true, c
	for i := 0; i < f.next; i++ {
		if fn, ok := f.waiters[i]; ok {
			fn(c)
		}
	}
	clear(f.waiters)
}

func (f *Future) then(fn func(Child)) (cancel func()) {
	id := f.next
	f.next++
	f.waiters[id] = fn
	return func() {
		delete(f.waiters, id)
	}
}
