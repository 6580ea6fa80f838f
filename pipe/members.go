package pipe

import mapset "github.com/deckarep/golang-set/v2"

// members tracks, for one downstream subscription, the per-element observables
// a collection operator listens to. After sync it holds exactly one subscription
// per distinct element of the list it was given.
type members[E comparable] struct {
	items mapset.Set[E]
	subs  map[E]upstream
}

func newMembers[E comparable]() *members[E] {
	return &members[E]{
		items: mapset.NewThreadUnsafeSet[E](),
		subs:  map[E]upstream{},
	}
}

// sync drops the subscriptions of elements no longer in items and subscribes to
// the observables of new ones. Elements present before and after keep their
// existing subscription.
func (m *members[E]) sync(items []E, watch func(E) Observable, subscribe func(Observable) upstream) {
	current := mapset.NewThreadUnsafeSet[E](items...)
	for _, gone := range m.items.Difference(current).ToSlice() {
		m.drop(gone)
	}
	for _, item := range items {
		if m.items.Contains(item) {
			continue
		}
		m.items.Add(item)
		if o := watch(item); o != nil {
			m.subs[item] = subscribe(o)
		}
	}
}

func (m *members[E]) drop(item E) {
	if u, ok := m.subs[item]; ok {
		u.close()
		delete(m.subs, item)
	}
	m.items.Remove(item)
}

func (m *members[E]) close() {
	for _, item := range m.items.ToSlice() {
		m.drop(item)
	}
}
