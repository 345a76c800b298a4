package dom

import (
	"fmt"
	"slices"
)

// Children returns a copy of the children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the child at index i.
func (n *Node) Child(i int) (*Node, error) {
	if i < 0 || i >= len(n.children) {
		return nil, indexError(i, len(n.children))
	}
	return n.children[i], nil
}

// Slice returns a copy of the children in [lo:hi].
func (n *Node) Slice(lo, hi int) ([]*Node, error) {
	if lo < 0 || hi < lo || hi > len(n.children) {
		return nil, rangeError(lo, hi, len(n.children))
	}
	return slices.Clone(n.children[lo:hi]), nil
}

// Add appends a child and returns it, converted to a text node if needed.
func (n *Node) Add(child any) (*Node, error) {
	c, err := wrap(child)
	if err != nil {
		return nil, err
	}
	if err := n.splice(len(n.children), len(n.children), []*Node{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// Insert inserts a child before index i. Indexes at or past Len() append.
func (n *Node) Insert(i int, child any) (*Node, error) {
	c, err := wrap(child)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, indexError(i, len(n.children))
	}
	i = min(i, len(n.children))
	if err := n.splice(i, i, []*Node{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// SetChild replaces the child at index i. The replaced child is detached.
func (n *Node) SetChild(i int, child any) (*Node, error) {
	c, err := wrap(child)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(n.children) {
		return nil, indexError(i, len(n.children))
	}
	if err := n.splice(i, i+1, []*Node{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// SetSlice replaces the children in [lo:hi] with children, which may be
// longer or shorter than the replaced span.
func (n *Node) SetSlice(lo, hi int, children ...any) error {
	nodes := make([]*Node, 0, len(children))
	for _, child := range children {
		c, err := wrap(child)
		if err != nil {
			return err
		}
		nodes = append(nodes, c)
	}
	return n.splice(lo, hi, nodes)
}

// DelChild removes the child at index i.
func (n *Node) DelChild(i int) error {
	if i < 0 || i >= len(n.children) {
		return indexError(i, len(n.children))
	}
	return n.splice(i, i+1, nil)
}

// DelSlice removes the children in [lo:hi].
func (n *Node) DelSlice(lo, hi int) error {
	return n.splice(lo, hi, nil)
}

// splice replaces n.children[lo:hi] with nodes. Indexes refer to the
// children before the call. Nodes already owned elsewhere are detached from
// their parent and from the build scope they were registered in; nodes that
// are already children of n are moved.
func (n *Node) splice(lo, hi int, nodes []*Node) error {
	if lo < 0 || hi < lo || hi > len(n.children) {
		return rangeError(lo, hi, len(n.children))
	}
	if len(nodes) > 0 {
		if err := n.acceptsChildren(); err != nil {
			return err
		}
	}

	incoming := make(map[*Node]struct{}, len(nodes))
	for _, c := range nodes {
		if _, dup := incoming[c]; dup {
			return fmt.Errorf("%w: node given twice", ErrInvalidChild)
		}
		incoming[c] = struct{}{}
		for p := n; p != nil; p = p.parent {
			if p == c {
				return ErrCycle
			}
		}
	}
	moved := func(c *Node) bool {
		_, ok := incoming[c]
		return ok
	}

	out := make([]*Node, 0, len(n.children)-(hi-lo)+len(nodes))
	for _, c := range n.children[:lo] {
		if !moved(c) {
			out = append(out, c)
		}
	}
	out = append(out, nodes...)
	for _, c := range n.children[hi:] {
		if !moved(c) {
			out = append(out, c)
		}
	}

	for _, old := range n.children[lo:hi] {
		if !moved(old) {
			old.parent = nil
		}
	}
	for _, c := range nodes {
		if c.parent != nil && c.parent != n {
			c.parent.detach(c)
		}
		c.unregister()
		c.parent = n
	}
	n.children = out
	return nil
}

func (n *Node) acceptsChildren() error {
	switch {
	case n.typ == TextNode || n.typ == RawTextNode:
		return fmt.Errorf("%w: %s node cannot have children", ErrNotElement, n.typ)
	case n.typ == ElementNode && n.kind.Empty:
		return &EmptyElementChildrenError{Element: n.kind.Name}
	}
	return nil
}

// detach removes c from n's children without touching c.
func (n *Node) detach(c *Node) {
	if i := slices.Index(n.children, c); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}
