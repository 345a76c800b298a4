package dom

import (
	"fmt"
	"sort"
	"sync"

	"github.com/domify-dev/domify/pkg/validate"
)

// Kind describes one element type. Kinds are shared by every node of that
// type and must not be modified once nodes have been created from them.
type Kind struct {
	// Name is the rendered tag name (e.g. "div").
	Name string

	// Empty marks void elements: no children and no closing tag.
	Empty bool

	// GlobalAttributes are the attributes shared by a family of kinds.
	GlobalAttributes Schema

	// ElementAttributes are the attributes specific to this kind.
	ElementAttributes Schema

	// AnyAttribute disables the unknown attribute check.
	AnyAttribute bool

	// Doctype is the default for prepending the document marker.
	Doctype bool
}

// Rule returns the schema rule for a normalized key, looking at element
// attributes first.
func (k *Kind) Rule(key string) (Rule, bool) {
	if r, ok := k.ElementAttributes[key]; ok {
		return r, true
	}
	r, ok := k.GlobalAttributes[key]
	return r, ok
}

// Schema maps normalized attribute keys to their rule.
type Schema map[string]Rule

// Rule decides whether a value is legal for an attribute. attrs is a
// snapshot of the node's attributes before the write.
type Rule interface {
	Allows(key string, value any, attrs Attributes) bool
}

// OneOf returns a rule accepting exactly the given string literals.
func OneOf(values ...string) Rule {
	return literalRule{values: newStringSet(values)}
}

// Toggle returns a rule accepting the given string literals and also the
// booleans true and false. It is used for enumerated attributes that may be
// written as a bare attribute, such as hidden="until-found".
func Toggle(values ...string) Rule {
	return literalRule{values: newStringSet(values), toggle: true}
}

type literalRule struct {
	values map[string]struct{}
	toggle bool
}

func (r literalRule) Allows(key string, value any, _ Attributes) bool {
	if s, ok := value.(string); ok {
		_, member := r.values[s]
		return member
	}
	return r.toggle && validate.Bool(value)
}

// Check returns a rule backed by a value predicate.
func Check(p validate.Predicate) Rule {
	return predicateRule(p)
}

type predicateRule validate.Predicate

func (r predicateRule) Allows(_ string, value any, _ Attributes) bool {
	return r(value)
}

// CheckAttrs returns a rule that may also inspect the node's other
// attributes, e.g. "only valid when type is checkbox".
func CheckAttrs(fn func(value any, attrs Attributes) bool) Rule {
	return attrsRule(fn)
}

type attrsRule func(value any, attrs Attributes) bool

func (r attrsRule) Allows(_ string, value any, attrs Attributes) bool {
	return r(value, attrs)
}

func newStringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Registry maps element names to kinds. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

// DefaultRegistry is populated by catalogue packages such as pkg/html and
// used by builders created without WithRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// Register adds a kind. Registering a second kind under the same name fails.
func (r *Registry) Register(k *Kind) error {
	if k == nil || k.Name == "" {
		return fmt.Errorf("%w: kind without a name", ErrUnknownKind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.kinds[k.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, k.Name)
	}
	r.kinds[k.Name] = k
	return nil
}

// MustRegister is like Register but panics on error. It returns k.
func (r *Registry) MustRegister(k *Kind) *Kind {
	if err := r.Register(k); err != nil {
		panic(err)
	}
	return k
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (*Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[name]
	return k, ok
}

// Kinds returns all registered kinds sorted by name.
func (r *Registry) Kinds() []*Kind {
	r.mu.RLock()
	kinds := make([]*Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		kinds = append(kinds, k)
	}
	r.mu.RUnlock()
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name })
	return kinds
}
