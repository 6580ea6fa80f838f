package view

import (
	"slices"
	"strings"
)

type Kind uint8

const (
	ElementNode Kind = iota
	TextNode
	// AnchorNode marks the edges of a bound region. Renders as an HTML comment.
	AnchorNode
)

type Attr struct {
	Name  string
	Value string
}

type Node struct {
	Kind Kind
	// Tag is the element name for ElementNode.
	Tag string
	// Data is the text of a TextNode or the marker name of an AnchorNode.
	Data     string
	Attrs    []Attr
	Children []*Node
	Parent   *Node
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) setAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

func (n *Node) append(children ...*Node) {
	for _, c := range children {
		c.Parent = n
	}
	n.Children = append(n.Children, children...)
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.Children, child)
}

// between returns the children strictly between the from and to markers.
func (n *Node) between(from, to *Node) (start, end int) {
	start, end = n.indexOf(from)+1, n.indexOf(to)
	if start <= 0 || end < start {
		panic("view: region markers are not children of their parent")
	}
	return start, end
}

func (n *Node) replace(start, end int, nodes []*Node) {
	for _, old := range n.Children[start:end] {
		old.Parent = nil
	}
	for _, c := range nodes {
		c.Parent = n
	}
	n.Children = slices.Replace(n.Children, start, end, nodes...)
}

// TextContent concatenates the text of every text node under n.
func (n *Node) TextContent() string {
	switch n.Kind {
	case TextNode:
		return n.Data
	case AnchorNode:
		return ""
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}
