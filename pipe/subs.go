package pipe

import (
	"reflect"
	"slices"
)

// staler is implemented by the relays derived pipes register upstream. A source
// calls stale on all of them before notifying anyone, so every cache below it is
// cleared before the first listener can read it.
type staler interface {
	stale()
}

// subs is the token -> listener table every observable owns.
// Tokens are handed out in ascending order and never reused, so order is always
// sorted and notification order is subscription order.
type subs struct {
	last  Token
	table map[Token]Listener
	order []Token
	// index holds the listeners whose value can be compared, for duplicate checks.
	index map[Listener]Token
}

func (s *subs) add(l Listener) (Token, error) {
	if l == nil {
		panic("pipe: nil listener")
	}
	keyed := reflect.ValueOf(l).Comparable()
	if keyed {
		if t, ok := s.index[l]; ok {
			return 0, &DuplicateSubscriptionError{Token: t}
		}
	}
	if s.table == nil {
		s.table = map[Token]Listener{}
		s.index = map[Listener]Token{}
	}
	s.last++
	s.table[s.last] = l
	s.order = append(s.order, s.last)
	if keyed {
		s.index[l] = s.last
	}
	return s.last, nil
}

func (s *subs) get(t Token) (Listener, bool) {
	l, ok := s.table[t]
	return l, ok
}

func (s *subs) remove(t Token) bool {
	l, ok := s.table[t]
	if !ok {
		return false
	}
	delete(s.table, t)
	if reflect.ValueOf(l).Comparable() && s.index[l] == t {
		delete(s.index, l)
	}
	if i, found := slices.BinarySearch(s.order, t); found {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// tokens returns a snapshot of the live tokens. Iterating the snapshot while
// listeners subscribe or unsubscribe is safe: removed tokens are skipped by get
// and tokens added after the snapshot are not visited.
func (s *subs) tokens() []Token {
	return slices.Clone(s.order)
}

// invalidate clears every cache downstream of the owner. It runs no listener code.
func (s *subs) invalidate() {
	for _, t := range s.tokens() {
		if st, ok := s.table[t].(staler); ok {
			st.stale()
		}
	}
}

func (s *subs) notify(o Observable) {
	for _, t := range s.tokens() {
		if l, ok := s.table[t]; ok {
			l.Changed(o)
		}
	}
}

func (s *subs) len() int {
	return len(s.order)
}
