package pipe

// Filtered keeps the elements of a list whose predicate pipe currently holds
// true. It notifies when the list changes and when any current element's
// predicate changes, so membership can move without the list itself changing.
type Filtered[E comparable] struct {
	derived
	parent  Pipe[[]E]
	pred    func(E) Pipe[bool]
	tracked map[Token]*members[E]
	cache   []E
	valid   bool
}

// Filter keeps the elements of parent for which pred(element) holds true. pred
// should return the same pipe for the same element; a nil pipe counts as false.
func Filter[E comparable](parent Pipe[[]E], pred func(E) Pipe[bool]) *Filtered[E] {
	f := &Filtered[E]{
		parent:  parent,
		pred:    pred,
		tracked: map[Token]*members[E]{},
	}
	f.init(f, f.reset, f.untrack)
	return f
}

func (f *Filtered[E]) Value() []E {
	if f.valid {
		return f.cache
	}
	items := f.parent.Value()
	kept := make([]E, 0, len(items))
	for _, item := range items {
		if p := f.pred(item); p != nil && p.Value() {
			kept = append(kept, item)
		}
	}
	f.cache, f.valid = kept, f.linked()
	return f.cache
}

func (f *Filtered[E]) Subscribe(l Listener) (Token, error) {
	t, err := f.add(l)
	if err != nil {
		return 0, err
	}
	f.listen(f.parent, t, f.parentChanged)
	m := newMembers[E]()
	f.tracked[t] = m
	f.sync(t, m)
	return t, nil
}

func (f *Filtered[E]) parentChanged(t Token) {
	m, ok := f.tracked[t]
	if !ok {
		return
	}
	f.sync(t, m)
	f.forward(t)
}

func (f *Filtered[E]) sync(t Token, m *members[E]) {
	m.sync(f.parent.Value(), f.watch, func(o Observable) upstream {
		return f.subscribeTo(o, t, f.forward)
	})
}

func (f *Filtered[E]) watch(item E) Observable {
	p := f.pred(item)
	if p == nil {
		return nil
	}
	return p
}

func (f *Filtered[E]) untrack(t Token) {
	if m, ok := f.tracked[t]; ok {
		m.close()
		delete(f.tracked, t)
	}
}

func (f *Filtered[E]) reset() {
	f.cache, f.valid = nil, false
}
