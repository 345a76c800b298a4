package dom

import (
	"fmt"

	"github.com/domify-dev/domify/pkg/validate"
)

// Type is the node type discriminator.
type Type uint8

const (
	ElementNode   Type = iota // <div>, <input>, etc.
	TextNode                  // Escaped text
	RawTextNode               // Unescaped text (dangerous)
	ContainerNode             // Children without a wrapping tag
)

// String returns the string representation of the Type.
func (t Type) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case RawTextNode:
		return "RawText"
	case ContainerNode:
		return "Container"
	default:
		return "Unknown"
	}
}

// Node is one entity of a markup tree. A node owns its children exclusively:
// attaching a node somewhere detaches it from its previous parent.
//
// Nodes are not safe for concurrent mutation. Concurrent reads of a tree that
// is not being mutated are safe.
type Node struct {
	typ      Type
	kind     *Kind
	attrs    Attributes
	children []*Node
	text     string
	doctype  bool
	parent   *Node
	pending  *frame
	reporter Reporter
}

// Attr is an attribute argument for New. A nil Value means "not provided".
type Attr struct {
	Key   string
	Value any
}

// A creates an Attr.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Option configures a node at construction.
type Option func(*nodeOptions)

type nodeOptions struct {
	doctype  *bool
	reporter Reporter
}

// Doctype overrides the kind's default for prepending the document marker.
func Doctype(prepend bool) Option {
	return func(o *nodeOptions) {
		o.doctype = &prepend
	}
}

// WithReporter sets the reporter receiving the node's schema warnings.
func WithReporter(r Reporter) Option {
	return func(o *nodeOptions) {
		o.reporter = r
	}
}

// New creates an element node of the given kind.
//
// Arguments can be: nil, *Node, []*Node, Attr, []Attr, Option, or a string,
// number or fmt.Stringer, which becomes an escaped text child. Children are
// attached in argument order, then attributes are set in argument order.
func New(kind *Kind, args ...any) (*Node, error) {
	if kind == nil {
		return nil, fmt.Errorf("%w: nil kind", ErrUnknownKind)
	}

	var (
		children []*Node
		attrs    []Attr
		opts     nodeOptions
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			attrs = append(attrs, v)
		case []Attr:
			attrs = append(attrs, v...)
		case Option:
			v(&opts)
		case []*Node:
			for _, c := range v {
				if c != nil {
					children = append(children, c)
				}
			}
		case *Node:
			if v != nil {
				children = append(children, v)
			}
		default:
			c, err := wrap(v)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
	}

	if kind.Empty && len(children) > 0 {
		return nil, &EmptyElementChildrenError{Element: kind.Name}
	}

	n := &Node{
		typ:      ElementNode,
		kind:     kind,
		doctype:  kind.Doctype,
		reporter: opts.reporter,
	}
	if opts.doctype != nil {
		n.doctype = *opts.doctype
	}

	if err := n.splice(0, 0, children); err != nil {
		return nil, err
	}
	for _, a := range attrs {
		if err := n.SetAttr(a.Key, a.Value); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// MustNew is like New but panics on error.
func MustNew(kind *Kind, args ...any) *Node {
	n, err := New(kind, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// Text creates an escaped text node. Non-string values are converted with
// validate.ToString.
func Text(value any) *Node {
	return &Node{typ: TextNode, text: validate.ToString(value)}
}

// Raw creates a text node rendered verbatim.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(value any) *Node {
	return &Node{typ: RawTextNode, text: validate.ToString(value)}
}

// Concat creates a container holding parts in order. A container renders as
// the concatenation of its children, without a tag of its own. Parts are
// converted like the children arguments of New.
func Concat(parts ...any) (*Node, error) {
	nodes := make([]*Node, 0, len(parts))
	for _, p := range parts {
		c, err := wrap(p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, c)
	}
	n := &Node{typ: ContainerNode}
	if err := n.splice(0, 0, nodes); err != nil {
		return nil, err
	}
	return n, nil
}

// wrap converts a child argument to a node.
func wrap(v any) (*Node, error) {
	switch c := v.(type) {
	case *Node:
		if c == nil {
			return nil, fmt.Errorf("%w: nil node", ErrInvalidChild)
		}
		return c, nil
	case string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return Text(c), nil
	case fmt.Stringer:
		return Text(c.String()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidChild, v)
	}
}

// Type returns the node type.
func (n *Node) Type() Type { return n.typ }

// Kind returns the element kind, or nil for text leaves and containers.
func (n *Node) Kind() *Kind { return n.kind }

// Name returns the element name, or "" for text leaves and containers.
func (n *Node) Name() string {
	if n.kind == nil {
		return ""
	}
	return n.kind.Name
}

// Content returns the payload of a text leaf.
func (n *Node) Content() string { return n.text }

// Doctype reports whether the document marker is rendered before the node.
func (n *Node) Doctype() bool { return n.doctype }

// Parent returns the node owning n, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Walk visits n and its descendants depth-first in document order. When fn
// returns false the children of that node are skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) report(w Warning) {
	r := n.reporter
	if r == nil {
		r = DefaultReporter()
	}
	r.Report(w)
}
