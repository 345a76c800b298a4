package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	clierrors "github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/dom"
)

// Option configures loading.
type Option func(*loader)

// WithReporter sets the reporter for attribute warnings.
func WithReporter(r dom.Reporter) Option {
	return func(l *loader) { l.builderOpts = append(l.builderOpts, dom.UseReporter(r)) }
}

// WithRegistry sets the registry tag names are resolved against.
func WithRegistry(r *dom.Registry) Option {
	return func(l *loader) { l.builderOpts = append(l.builderOpts, dom.UseRegistry(r)) }
}

// WithFilename names the input in error locations.
func WithFilename(name string) Option {
	return func(l *loader) { l.filename = name }
}

type loader struct {
	filename    string
	onDisk      bool
	src         []byte
	builderOpts []dom.BuilderOption
	b           *dom.Builder
}

// Load reads and builds the document at path.
func Load(path string, opts ...Option) (*dom.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clierrors.New("D006").Wrap(err).WithDetail(err.Error())
	}
	l := newLoader(data, append([]Option{WithFilename(path)}, opts...))
	l.onDisk = true
	return l.load()
}

// Parse builds a document from YAML source.
func Parse(data []byte, opts ...Option) (*dom.Node, error) {
	return newLoader(data, opts).load()
}

func newLoader(data []byte, opts []Option) *loader {
	l := &loader{filename: "<input>", src: data}
	for _, opt := range opts {
		opt(l)
	}
	l.b = dom.NewBuilder(l.builderOpts...)
	return l
}

func (l *loader) load() (*dom.Node, error) {
	var file yaml.Node
	if err := yaml.Unmarshal(l.src, &file); err != nil {
		return nil, clierrors.New("D001").Wrap(err).WithDetail(err.Error())
	}
	if file.Kind != yaml.DocumentNode || len(file.Content) == 0 {
		return nil, clierrors.New("D003").WithDetail("document is empty")
	}
	top := file.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, l.fail("D003", top, "document must be a mapping with a root key")
	}

	var (
		root    *yaml.Node
		doctype *bool
	)
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "root":
			root = val
		case "doctype":
			var d bool
			if err := val.Decode(&d); err != nil {
				return nil, l.fail("D003", val, "doctype must be a boolean")
			}
			doctype = &d
		default:
			return nil, l.fail("D003", key, fmt.Sprintf("unknown document key %q", key.Value))
		}
	}
	if root == nil {
		return nil, l.fail("D003", top, "missing root")
	}

	var extra []any
	if doctype != nil {
		extra = append(extra, dom.Doctype(*doctype))
	}
	return l.node(root, extra...)
}

// node builds one node. The result is also registered with any open scope.
func (l *loader) node(n *yaml.Node, extra ...any) (*dom.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if len(extra) > 0 {
			return nil, l.fail("D003", n, "root must be an element")
		}
		return l.b.Text(n.Value), nil
	case yaml.MappingNode:
	default:
		return nil, l.fail("D003", n, "node must be a string or a mapping")
	}

	var (
		tagNode, textNode, rawNode *yaml.Node
		attrs, children            *yaml.Node
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "tag":
			tagNode = val
		case "text":
			textNode = val
		case "raw":
			rawNode = val
		case "attrs":
			attrs = val
		case "children":
			children = val
		default:
			return nil, l.fail("D003", key, fmt.Sprintf("unknown node key %q", key.Value))
		}
	}

	set := 0
	for _, v := range []*yaml.Node{tagNode, textNode, rawNode} {
		if v != nil {
			set++
		}
	}
	if set != 1 {
		return nil, l.fail("D003", n, "node needs exactly one of tag, text or raw")
	}

	if tagNode == nil {
		if attrs != nil || children != nil {
			return nil, l.fail("D003", n, "text nodes have no attrs or children")
		}
		if len(extra) > 0 {
			return nil, l.fail("D003", n, "root must be an element")
		}
		if textNode != nil {
			return l.b.Text(textNode.Value), nil
		}
		return l.b.Raw(rawNode.Value), nil
	}

	args := extra
	if attrs != nil {
		list, err := l.attrs(attrs)
		if err != nil {
			return nil, err
		}
		args = append(args, list)
	}

	el, err := l.b.El(tagNode.Value, args...)
	if err != nil {
		if errors.Is(err, dom.ErrUnknownKind) {
			return nil, l.fail("D002", tagNode, fmt.Sprintf("unknown element %q", tagNode.Value)).
				WithSuggestion(`run "domify kinds" to list element names`)
		}
		return nil, l.fail("D003", tagNode, err.Error()).Wrap(err)
	}
	if children == nil {
		return el, nil
	}
	if children.Kind != yaml.SequenceNode {
		return nil, l.fail("D003", children, "children must be a list")
	}
	if el.Kind().Empty && len(children.Content) > 0 {
		return nil, l.fail("D004", children, fmt.Sprintf("element %q is empty and cannot have children", el.Name()))
	}

	err = l.b.Scope(el, func() error {
		for _, c := range children.Content {
			if _, err := l.node(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return el, nil
}

// attrs decodes an attribute mapping in file order.
func (l *loader) attrs(n *yaml.Node) ([]dom.Attr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, l.fail("D003", n, "attrs must be a mapping")
	}
	out := make([]dom.Attr, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, l.fail("D005", val, fmt.Sprintf("attribute %q must be a scalar", key.Value))
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return nil, l.fail("D005", val, err.Error()).Wrap(err)
		}
		out = append(out, dom.Attr{Key: key.Value, Value: v})
	}
	return out, nil
}

// fail builds a coded error located at n.
func (l *loader) fail(code string, n *yaml.Node, detail string) *clierrors.Error {
	err := clierrors.New(code).WithDetail(detail)
	if l.onDisk {
		return err.WithLocation(l.filename, n.Line, n.Column)
	}
	err.Location = &clierrors.Location{File: l.filename, Line: n.Line, Column: n.Column}
	lines := bytes.Split(l.src, []byte("\n"))
	start := max(n.Line-2, 1)
	end := min(n.Line+2, len(lines))
	var ctx []string
	for i := start; i <= end; i++ {
		ctx = append(ctx, string(lines[i-1]))
	}
	return err.WithContext(ctx, start)
}
