package pipe

// Projection derives its value from one parent through a pure function. The
// result is cached until the parent notifies.
type Projection[T, U any] struct {
	derived
	parent Pipe[T]
	fn     func(T) U
	cache  U
	valid  bool
}

func Project[T, U any](parent Pipe[T], fn func(T) U) *Projection[T, U] {
	p := &Projection[T, U]{parent: parent, fn: fn}
	p.init(p, p.reset, nil)
	return p
}

func (p *Projection[T, U]) Value() U {
	if p.valid {
		return p.cache
	}
	p.cache = p.fn(p.parent.Value())
	p.valid = p.linked()
	return p.cache
}

func (p *Projection[T, U]) Subscribe(l Listener) (Token, error) {
	t, err := p.add(l)
	if err != nil {
		return 0, err
	}
	p.listen(p.parent, t, p.forward)
	return t, nil
}

func (p *Projection[T, U]) reset() {
	var zero U
	p.cache, p.valid = zero, false
}
