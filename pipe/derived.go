package pipe

// upstream is a subscription a derived pipe holds on one of its sources.
type upstream struct {
	src Observable
	tok Token
}

func (u upstream) close() {
	u.src.Unsubscribe(u.tok)
}

// relay is the listener a derived pipe registers upstream on behalf of one of
// its own subscriptions. Every relay is a distinct pointer, so it can never be
// mistaken for a duplicate.
type relay struct {
	tok  Token
	d    *derived
	fire func(t Token)
}

func (r *relay) Changed(Observable) {
	r.fire(r.tok)
}

func (r *relay) stale() {
	r.d.stale(r.tok)
}

// derived holds the bookkeeping shared by every derived pipe.
//
// Each downstream subscription owns its own upstream subscriptions (links), and
// an upstream notification is forwarded to that one listener only. Unsubscribing
// a listener closes exactly the links it created.
//
// A change travels in two passes. The source first calls stale on every relay,
// which clears caches all the way down; only then are listeners notified. A
// listener anywhere in the graph therefore never reads a cache computed before
// the change, whatever order the relays were subscribed in.
type derived struct {
	self  Observable
	subs  subs
	links map[Token][]upstream

	invalidate func()
	release    func(t Token)
}

func (d *derived) init(self Observable, invalidate func(), release func(t Token)) {
	d.self = self
	d.links = map[Token][]upstream{}
	d.invalidate = invalidate
	d.release = release
}

func (d *derived) add(l Listener) (Token, error) {
	t, err := d.subs.add(l)
	if err != nil {
		return 0, err
	}
	if len(d.links) == 0 {
		// Nothing told us about upstream changes while we were unlinked.
		d.invalidate()
	}
	return t, nil
}

// subscribeTo subscribes to src on behalf of t without recording the link; the
// caller owns the returned upstream.
func (d *derived) subscribeTo(src Observable, t Token, fire func(t Token)) upstream {
	ut, err := src.Subscribe(&relay{tok: t, d: d, fire: fire})
	if err != nil {
		panic(err)
	}
	return upstream{src: src, tok: ut}
}

// listen subscribes to src on behalf of t and records the link so that
// Unsubscribe(t) closes it.
func (d *derived) listen(src Observable, t Token, fire func(t Token)) {
	d.links[t] = append(d.links[t], d.subscribeTo(src, t, fire))
}

// linked reports whether upstream changes currently reach this pipe. A cache is
// only trustworthy while it is linked.
func (d *derived) linked() bool {
	return len(d.links) > 0
}

// forward invalidates the cache and tells the listener behind t, if it is still
// subscribed.
func (d *derived) forward(t Token) {
	l, ok := d.subs.get(t)
	if !ok {
		return
	}
	d.invalidate()
	l.Changed(d.self)
}

// stale clears the cache ahead of a notification that will reach t, and passes
// the invalidation on to the listener behind t.
func (d *derived) stale(t Token) {
	l, ok := d.subs.get(t)
	if !ok {
		return
	}
	d.invalidate()
	if st, ok := l.(staler); ok {
		st.stale()
	}
}

func (d *derived) active(t Token) bool {
	_, ok := d.subs.get(t)
	return ok
}

func (d *derived) Unsubscribe(t Token) {
	if !d.subs.remove(t) {
		return
	}
	links := d.links[t]
	delete(d.links, t)
	for _, u := range links {
		u.close()
	}
	if d.release != nil {
		d.release(t)
	}
	if len(d.links) == 0 {
		d.invalidate()
	}
}

func (d *derived) Dispose() {
	for _, t := range d.subs.tokens() {
		d.Unsubscribe(t)
	}
}

func (d *derived) Subscribers() int {
	return d.subs.len()
}
