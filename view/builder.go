// Package view builds a node tree from pipe values and keeps it in sync as the
// pipes change.
package view

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/delaneyj/pipes/pipe"
)

// Attrs maps attribute names to values. A value is either a Child or anything
// Literal accepts that has a text form.
type Attrs map[string]any

type cleanups []func()

func (c *cleanups) add(fn func()) {
	*c = append(*c, fn)
}

// run calls the cleanups newest first and forgets them.
func (c *cleanups) run() {
	fns := *c
	*c = nil
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Builder creates nodes and owns the pipe subscriptions that keep them
// current. Anchor names are numbered per Builder.
type Builder struct {
	anchors  int
	cleanups cleanups
	// owner collects the cleanups of whatever is being built right now: the
	// Builder itself, or the content of a bound region being rebuilt.
	owner *cleanups
}

func NewBuilder() *Builder {
	b := &Builder{}
	b.owner = &b.cleanups
	return b
}

// Dispose unsubscribes every binding made by b. The nodes keep their last
// content.
func (b *Builder) Dispose() {
	b.cleanups.run()
}

func (b *Builder) Text(s string) *Node {
	return &Node{Kind: TextNode, Data: s}
}

// Element builds a tag with attributes and children. Each child is a Child or
// a value accepted by Literal.
func (b *Builder) Element(tag string, attrs Attrs, children ...any) (*Node, error) {
	n := &Node{Kind: ElementNode, Tag: tag}

	var local cleanups
	err := b.within(&local, func() error {
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if err := b.bindAttr(n, name, childOf(attrs[name])); err != nil {
				return fmt.Errorf("attribute %q of <%s>: %w", name, tag, err)
			}
		}
		for _, c := range children {
			nodes, err := b.build(childOf(c))
			if err != nil {
				return fmt.Errorf("child of <%s>: %w", tag, err)
			}
			n.append(nodes...)
		}
		return nil
	})
	if err != nil {
		local.run()
		return nil, err
	}
	if len(local) > 0 {
		b.owner.add(local.run)
	}
	return n, nil
}

func (b *Builder) within(owner *cleanups, fn func() error) error {
	prev := b.owner
	b.owner = owner
	defer func() {
		b.owner = prev
	}()
	return fn()
}

func (b *Builder) build(c Child) ([]*Node, error) {
	switch c.kind {
	case LiteralChild:
		return b.nodesOf(c.value)
	case ThunkChild:
		return b.build(c.thunk())
	case FutureChild:
		if c.future.Resolved() {
			return b.build(c.future.value)
		}
		r := b.region()
		cancel := c.future.then(r.update)
		b.owner.add(func() {
			cancel()
			r.content.run()
		})
		return r.wrap(nil), nil
	case PipeChild:
		r := b.region()
		// Read inside the region so that anything created while computing the
		// value is owned by it.
		current := Thunk(func() Child {
			return Literal(c.read())
		})
		nodes, content, err := r.build(current)
		if err != nil {
			content.run()
			return nil, err
		}
		r.content = content
		stop := pipe.Watch(c.source, func(pipe.Observable) {
			r.update(current)
		})
		b.owner.add(func() {
			stop()
			r.content.run()
		})
		return r.wrap(nodes), nil
	default:
		panic(fmt.Sprintf("view: unknown child kind %d", c.kind))
	}
}

func (b *Builder) bindAttr(n *Node, name string, c Child) error {
	switch c.kind {
	case LiteralChild:
		s, ok := textOf(c.value)
		if !ok {
			return &UnsupportedValueError{Value: c.value}
		}
		n.setAttr(name, s)
		return nil
	case ThunkChild:
		return b.bindAttr(n, name, c.thunk())
	case FutureChild:
		if c.future.Resolved() {
			return b.bindAttr(n, name, c.future.value)
		}
		owner := b.owner
		b.owner.add(c.future.then(func(v Child) {
			must(b.within(owner, func() error {
				return b.bindAttr(n, name, v)
			}))
		}))
		return nil
	case PipeChild:
		set := func() error {
			return b.bindAttr(n, name, Literal(c.read()))
		}
		if err := set(); err != nil {
			return err
		}
		b.owner.add(pipe.Watch(c.source, func(pipe.Observable) {
			must(set())
		}))
		return nil
	default:
		panic(fmt.Sprintf("view: unknown child kind %d", c.kind))
	}
}

// must panics on errors found while reacting to a change, where there is no
// caller to return them to.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func (b *Builder) nodesOf(v any) ([]*Node, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *Node:
		return []*Node{v}, nil
	case []*Node:
		return v, nil
	case Child:
		return b.build(v)
	case []Child:
		var out []*Node
		for _, c := range v {
			nodes, err := b.build(c)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
		return out, nil
	}
	if s, ok := textOf(v); ok {
		return []*Node{b.Text(s)}, nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
		var out []*Node
		for i := 0; i < rv.Len(); i++ {
			nodes, err := b.nodesOf(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
		return out, nil
	}
	return nil, &UnsupportedValueError{Value: v}
}

func textOf(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}

// region is the stretch of siblings between two anchors that a Bind or Await
// child renders into.
type region struct {
	b          *Builder
	start, end *Node
	content    cleanups
}

func (b *Builder) region() *region {
	b.anchors++
	name := "pipe-" + strconv.Itoa(b.anchors)
	return &region{
		b:     b,
		start: &Node{Kind: AnchorNode, Data: name},
		end:   &Node{Kind: AnchorNode, Data: "/" + name},
	}
}

func (r *region) wrap(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes)+2)
	out = append(out, r.start)
	out = append(out, nodes...)
	return append(out, r.end)
}

func (r *region) build(c Child) (nodes []*Node, content cleanups, err error) {
	err = r.b.within(&content, func() error {
		nodes, err = r.b.build(c)
		return err
	})
	return nodes, content, err
}

// update rebuilds the region from c. When the new content renders to the same
// HTML as the current one the existing nodes and their bindings are kept.
func (r *region) update(c Child) {
	nodes, content, err := r.build(c)
	if err != nil {
		content.run()
		panic(err)
	}
	parent := r.start.Parent
	if parent == nil {
		r.content.run()
		r.content = content
		return
	}
	start, end := parent.between(r.start, r.end)
	if digest(parent.Children[start:end]) == digest(nodes) {
		content.run()
		return
	}
	r.content.run()
	r.content = content
	parent.replace(start, end, nodes)
}
