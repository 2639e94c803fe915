// Package load parses key catalogue text into the forest consumed by
// the gen package. It accepts the whitespace-indented form, the fully
// dotted form, and any line-by-line mix of the two.
package load

import "strings"

// Node is one path segment of the key forest. Children are ordered by
// first occurrence in the input and unique by name. Whether a node is a
// grouping or a terminal is derived from Children at render time, never
// stored, so a leaf later extended by a deeper path becomes a grouping
// with no state to migrate.
type Node struct {
	Name     string
	Children []*Node
}

// Child returns the child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ensure returns the child with the given name, creating and appending
// it when absent. Re-declaring a known path is a merge, never an error.
func (n *Node) ensure(name string) *Node {
	if c := n.Child(name); c != nil {
		return c
	}
	c := &Node{Name: name}
	n.Children = append(n.Children, c)
	return c
}

// Forest is the ordered sequence of top-level nodes declared by an input
// file. There is no synthetic root: a file may declare any number of
// unrelated top-level keys.
type Forest []*Node

// Root returns the top-level node with the given name, or nil.
func (f Forest) Root(name string) *Node {
	for _, n := range f {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func (f *Forest) ensure(name string) *Node {
	if n := f.Root(name); n != nil {
		return n
	}
	n := &Node{Name: name}
	*f = append(*f, n)
	return n
}

// Walk visits every node pre-order: forest order first, then insertion
// order among siblings. fn receives each node with its full dotted path
// and reports whether the walk should continue.
func (f Forest) Walk(fn func(path string, n *Node) bool) {
	var walk func(prefix string, n *Node) bool
	walk = func(prefix string, n *Node) bool {
		path := n.Name
		if prefix != "" {
			path = prefix + "." + n.Name
		}
		if !fn(path, n) {
			return false
		}
		for _, c := range n.Children {
			if !walk(path, c) {
				return false
			}
		}
		return true
	}
	for _, n := range f {
		if !walk("", n) {
			return
		}
	}
}

// frame is one active indentation level: the most recently placed node
// at that width. The stack is ordered by increasing width.
type frame struct {
	width int
	node  *Node
}

// Parse builds the key forest from raw catalogue text in a single pass.
//
// For every non-blank line the stack is popped down to entries strictly
// shallower than the line's width; the survivor (or the forest top level
// when none survives) is the attachment parent. Each dot segment is then
// found-or-created in order, and the line's deepest node is pushed once,
// regardless of how many segments the line carried. Fully dotted lines
// sit at width zero and therefore always re-derive their path from the
// top level, which is what makes the two notations freely mixable.
//
// Parsing never fails: a dedent to a width that was never pushed simply
// attaches at the nearest shallower level.
func Parse(src string) Forest {
	var (
		forest Forest
		stack  []frame
	)
	for _, raw := range strings.Split(src, "\n") {
		ln, ok := normalize(raw)
		if !ok {
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].width >= ln.width {
			stack = stack[:len(stack)-1]
		}
		var node *Node
		if len(stack) == 0 {
			node = forest.ensure(ln.segments[0])
		} else {
			node = stack[len(stack)-1].node.ensure(ln.segments[0])
		}
		for _, seg := range ln.segments[1:] {
			node = node.ensure(seg)
		}
		stack = append(stack, frame{width: ln.width, node: node})
	}
	return forest
}
