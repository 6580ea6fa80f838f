package pipe

// Monitored passes its parent's value through unchanged, but also notifies when
// any of a set of observables chosen from that value changes. The set is chosen
// again every time the parent changes.
type Monitored[T any] struct {
	derived
	parent    Pipe[T]
	selectors []func(T) Observable
	watched   map[Token][]upstream
}

// Monitor watches parent and every observable selected from its current value.
// A selector returning nil watches nothing for that value.
func Monitor[T any](parent Pipe[T], selectors ...func(T) Observable) *Monitored[T] {
	m := &Monitored[T]{
		parent:    parent,
		selectors: selectors,
		watched:   map[Token][]upstream{},
	}
	m.init(m, func() {}, m.unwatch)
	return m
}

func (m *Monitored[T]) Value() T {
	return m.parent.Value()
}

func (m *Monitored[T]) Subscribe(l Listener) (Token, error) {
	t, err := m.add(l)
	if err != nil {
		return 0, err
	}
	m.listen(m.parent, t, m.parentChanged)
	m.watch(t)
	return t, nil
}

func (m *Monitored[T]) parentChanged(t Token) {
	if !m.active(t) {
		return
	}
	m.unwatch(t)
	m.watch(t)
	m.forward(t)
}

func (m *Monitored[T]) watch(t Token) {
	v := m.parent.Value()
	for _, sel := range m.selectors {
		o := sel(v)
		if o == nil {
			continue
		}
		m.watched[t] = append(m.watched[t], m.subscribeTo(o, t, m.forward))
	}
}

func (m *Monitored[T]) unwatch(t Token) {
	for _, u := range m.watched[t] {
		u.close()
	}
	delete(m.watched, t)
}
