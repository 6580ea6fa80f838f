// Package pipe is a small push/pull reactive library. A graph of pipes is built
// from mutable Cells and derived pipes (projections, combinations and collection
// operators). Setting a Cell synchronously notifies every listener downstream of
// it; derived pipes recompute lazily the next time their value is read.
package pipe

// Token identifies one subscription on one observable.
type Token uint64

// Listener is told when an observable it subscribed to has changed. It receives
// the observable itself and reads the new value from it.
type Listener interface {
	Changed(o Observable)
}

// ListenerFunc adapts a plain function to a Listener.
//
// Functions are not comparable, so a ListenerFunc is never rejected as a
// duplicate subscription.
type ListenerFunc func(o Observable)

func (f ListenerFunc) Changed(o Observable) {
	f(o)
}

type Observable interface {
	// Subscribe registers l and returns the token that unsubscribes it.
	Subscribe(l Listener) (Token, error)
	// Unsubscribe is a no-op for unknown or already removed tokens.
	Unsubscribe(t Token)
	// Dispose unsubscribes every listener. The observable must not be used after.
	Dispose()
	// Subscribers reports how many listeners are currently registered.
	Subscribers() int
}

type Pipe[T any] interface {
	Observable
	Value() T
}

// Watch subscribes fn to o and returns a function that stops it.
func Watch(o Observable, fn func(o Observable)) (stop func()) {
	t, err := o.Subscribe(ListenerFunc(fn))
	if err != nil {
		// ListenerFunc is never reported as a duplicate.
		panic(err)
	}
	return func() {
		o.Unsubscribe(t)
	}
}
