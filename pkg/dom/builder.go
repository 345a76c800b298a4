package dom

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// frame is one open build scope: the owner and the nodes constructed
// through the builder while the scope was innermost.
type frame struct {
	owner *Node
	nodes []*Node
}

// Builder implements scoped building. Nodes constructed through a builder
// are collected by its innermost open scope and attached to the scope owner,
// in construction order, when the scope closes. A node that is attached
// explicitly before then leaves the scope.
//
// A Builder is not safe for concurrent use. Each goroutine building a tree
// uses its own Builder; builders never share scope state.
type Builder struct {
	registry *Registry
	reporter Reporter
	stack    []*frame
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// UseRegistry sets the registry El looks element names up in.
func UseRegistry(r *Registry) BuilderOption {
	return func(b *Builder) {
		b.registry = r
	}
}

// UseReporter sets the reporter of every node built through the builder.
func UseReporter(r Reporter) BuilderOption {
	return func(b *Builder) {
		b.reporter = r
	}
}

// NewBuilder creates a Builder. Without UseRegistry it uses DefaultRegistry.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{registry: DefaultRegistry}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// New creates an element like the package-level New and registers it with
// the innermost open scope.
func (b *Builder) New(kind *Kind, args ...any) (*Node, error) {
	if b.reporter != nil {
		args = append([]any{WithReporter(b.reporter)}, args...)
	}
	n, err := New(kind, args...)
	if err != nil {
		return nil, err
	}
	b.register(n)
	return n, nil
}

// MustNew is like New but panics on error.
func (b *Builder) MustNew(kind *Kind, args ...any) *Node {
	n, err := b.New(kind, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// El creates an element by name, looking its kind up in the builder's registry.
func (b *Builder) El(name string, args ...any) (*Node, error) {
	kind, ok := b.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return b.New(kind, args...)
}

// MustEl is like El but panics on error.
func (b *Builder) MustEl(name string, args ...any) *Node {
	n, err := b.El(name, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// Text creates an escaped text node registered with the innermost scope.
func (b *Builder) Text(value any) *Node {
	n := Text(value)
	b.register(n)
	return n
}

// Raw creates a raw text node registered with the innermost scope.
func (b *Builder) Raw(value any) *Node {
	n := Raw(value)
	b.register(n)
	return n
}

// Concat creates a container like the package-level Concat and registers it
// with the innermost scope.
func (b *Builder) Concat(parts ...any) (*Node, error) {
	n, err := Concat(parts...)
	if err != nil {
		return nil, err
	}
	b.register(n)
	return n, nil
}

// Enter opens a scope owned by owner. Every Enter must be paired with an
// Exit for the same owner; Scope does the pairing.
func (b *Builder) Enter(owner *Node) {
	if owner == nil {
		panic("dom: Enter with nil owner")
	}
	b.stack = append(b.stack, &frame{owner: owner})
}

// Exit closes the innermost scope and attaches the nodes it collected to
// owner. The scope is closed even if attaching fails.
func (b *Builder) Exit(owner *Node) error {
	if len(b.stack) == 0 {
		return ErrNoScope
	}
	top := b.stack[len(b.stack)-1]
	if top.owner != owner {
		return fmt.Errorf("%w: innermost scope belongs to <%s>", ErrScopeMismatch, top.owner.Name())
	}
	b.pop()

	for _, n := range top.nodes {
		n.pending = nil
	}
	return owner.splice(owner.Len(), owner.Len(), top.nodes)
}

// Scope runs fn inside a scope owned by owner. The scope is closed when fn
// returns or panics; scopes fn left open are discarded.
func (b *Builder) Scope(owner *Node, fn func() error) (err error) {
	b.Enter(owner)
	depth := len(b.stack)
	defer func() {
		var unwound error
		if len(b.stack) > depth {
			for len(b.stack) > depth {
				for _, n := range b.pop().nodes {
					n.pending = nil
				}
			}
			unwound = fmt.Errorf("%w: nested scope left open", ErrScopeMismatch)
		}
		err = errors.Join(err, unwound, b.Exit(owner))
	}()
	return fn()
}

// Depth returns the number of open scopes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) pop() *frame {
	top := b.stack[len(b.stack)-1]
	b.stack[len(b.stack)-1] = nil
	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) == 0 {
		b.stack = nil
	}
	return top
}

func (b *Builder) register(n *Node) {
	if len(b.stack) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	top.nodes = append(top.nodes, n)
	n.pending = top
}

// unregister removes n from the scope it was collected by, if any.
func (n *Node) unregister() {
	f := n.pending
	if f == nil {
		return
	}
	if i := slices.Index(f.nodes, n); i >= 0 {
		f.nodes = slices.Delete(f.nodes, i, i+1)
	}
	n.pending = nil
}

type builderKey struct{}

// WithBuilder returns a context carrying b.
func WithBuilder(ctx context.Context, b *Builder) context.Context {
	return context.WithValue(ctx, builderKey{}, b)
}

// BuilderFrom returns the builder carried by ctx.
func BuilderFrom(ctx context.Context) (*Builder, bool) {
	b, ok := ctx.Value(builderKey{}).(*Builder)
	return b, ok && b != nil
}
