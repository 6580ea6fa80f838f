package view

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Render writes n as HTML. Text and attribute values are escaped.
func Render(w io.Writer, n *Node) {
	WriteHTML(w, n)
}

// digest fingerprints the HTML of nodes without building the string.
func digest(nodes []*Node) uint64 {
	d := xxhash.New()
	WriteNodesHTML(d, nodes)
	return d.Sum64()
}
