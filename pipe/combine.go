package pipe

// Combiner groups several observables into one. Its value is the list of the
// observables themselves, not their values: readers pull what they need from
// each one, including things like a Cell's OldValue.
type Combiner struct {
	derived
	parents []Observable
}

func Combine(parents ...Observable) *Combiner {
	if len(parents) == 0 {
		panic("pipe: Combine needs at least one observable")
	}
	c := &Combiner{parents: parents}
	c.init(c, func() {}, nil)
	return c
}

func (c *Combiner) Value() []Observable {
	return c.parents
}

func (c *Combiner) Subscribe(l Listener) (Token, error) {
	t, err := c.add(l)
	if err != nil {
		return 0, err
	}
	for _, parent := range c.parents {
		c.listen(parent, t, c.forward)
	}
	return t, nil
}
