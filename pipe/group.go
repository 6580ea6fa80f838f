package pipe

type Group[E, K comparable] struct {
	Key   K
	Items []E
}

// Grouped partitions a list by a per-element key pipe. Groups appear in the
// order their key is first seen scanning the list left to right. Like Filtered,
// it notifies when the list changes and when any current element's key changes.
type Grouped[E, K comparable] struct {
	derived
	parent  Pipe[[]E]
	key     func(E) Pipe[K]
	tracked map[Token]*members[E]
	cache   []Group[E, K]
	valid   bool
}

// GroupBy groups the elements of parent by the current value of key(element).
// Elements whose key pipe is nil are grouped under the zero key.
func GroupBy[E, K comparable](parent Pipe[[]E], key func(E) Pipe[K]) *Grouped[E, K] {
	g := &Grouped[E, K]{
		parent:  parent,
		key:     key,
		tracked: map[Token]*members[E]{},
	}
	g.init(g, g.reset, g.untrack)
	return g
}

func (g *Grouped[E, K]) Value() []Group[E, K] {
	if g.valid {
		return g.cache
	}
	var groups []Group[E, K]
	index := map[K]int{}
	for _, item := range g.parent.Value() {
		var k K
		if p := g.key(item); p != nil {
			k = p.Value()
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[E, K]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	g.cache, g.valid = groups, g.linked()
	return g.cache
}

func (g *Grouped[E, K]) Subscribe(l Listener) (Token, error) {
	t, err := g.add(l)
	if err != nil {
		return 0, err
	}
	g.listen(g.parent, t, g.parentChanged)
	m := newMembers[E]()
	g.tracked[t] = m
	g.sync(t, m)
	return t, nil
}

func (g *Grouped[E, K]) parentChanged(t Token) {
	m, ok := g.tracked[t]
	if !ok {
		return
	}
	g.sync(t, m)
	g.forward(t)
}

func (g *Grouped[E, K]) sync(t Token, m *members[E]) {
	m.sync(g.parent.Value(), g.watch, func(o Observable) upstream {
		return g.subscribeTo(o, t, g.forward)
	})
}

func (g *Grouped[E, K]) watch(item E) Observable {
	p := g.key(item)
	if p == nil {
		return nil
	}
	return p
}

func (g *Grouped[E, K]) untrack(t Token) {
	if m, ok := g.tracked[t]; ok {
		m.close()
		delete(g.tracked, t)
	}
}

func (g *Grouped[E, K]) reset() {
	g.cache, g.valid = nil, false
}
