package dom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/domify-dev/domify/pkg/validate"
)

// Attribute is a stored attribute. Bare attributes have no value and render
// as the key alone.
type Attribute struct {
	Key   string
	Value string
	Bare  bool
}

// Attributes is an ordered attribute list.
type Attributes []Attribute

// Get returns the value for key: the string value, true for bare
// attributes, or false when unset.
func (a Attributes) Get(key string) any {
	i := a.index(key)
	if i < 0 {
		return false
	}
	if a[i].Bare {
		return true
	}
	return a[i].Value
}

// Has reports whether key is set.
func (a Attributes) Has(key string) bool {
	return a.index(key) >= 0
}

func (a Attributes) index(key string) int {
	for i := range a {
		if a[i].Key == key {
			return i
		}
	}
	return -1
}

// NormalizeKey strips trailing underscores and replaces the remaining
// underscores with dashes: "class_" becomes "class", "data_foo_" becomes
// "data-foo".
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimRight(key, "_"), "_", "-")
}

// SetAttr validates and stores an attribute.
//
// The key is normalized first. Keys unknown to the kind's schemas (other
// than data-* and aria-*) and values rejected by the key's rule are
// reported as warnings; the write happens anyway. true stores a bare
// attribute, false removes the attribute, nil is ignored and any other value
// is stored in its string form.
func (n *Node) SetAttr(key string, value any) error {
	if n.typ != ElementNode {
		return fmt.Errorf("%w: cannot set attribute %q on %s node", ErrNotElement, key, n.typ)
	}
	if value == nil {
		return nil
	}
	key = NormalizeKey(key)
	n.check(key, value)

	if b, ok := value.(bool); ok {
		if b {
			n.store(Attribute{Key: key, Bare: true})
		} else if i := n.attrs.index(key); i >= 0 {
			n.attrs = slices.Delete(n.attrs, i, i+1)
		}
		return nil
	}
	n.store(Attribute{Key: key, Value: validate.ToString(value)})
	return nil
}

func (n *Node) check(key string, value any) {
	kind := n.kind
	rule, known := kind.Rule(key)
	if !known {
		if !kind.AnyAttribute && !strings.HasPrefix(key, "data-") && !strings.HasPrefix(key, "aria-") {
			n.report(&InvalidAttributeWarning{ElementName: kind.Name, AttributeName: key})
		}
		return
	}
	if rule != nil && !rule.Allows(key, value, n.Attrs()) {
		n.report(&InvalidAttributeValueWarning{
			ElementName:   kind.Name,
			AttributeName: key,
			Value:         validate.ToString(value),
		})
	}
}

// store replaces an existing attribute in place or appends a new one.
func (n *Node) store(a Attribute) {
	if i := n.attrs.index(a.Key); i >= 0 {
		n.attrs[i] = a
		return
	}
	n.attrs = append(n.attrs, a)
}

// Attr returns the value of an attribute: its string value, true for a bare
// attribute, or false when unset.
func (n *Node) Attr(key string) any {
	return n.attrs.Get(NormalizeKey(key))
}

// HasAttr reports whether an attribute is set.
func (n *Node) HasAttr(key string) bool {
	return n.attrs.Has(NormalizeKey(key))
}

// Attrs returns a copy of the attributes in insertion order.
func (n *Node) Attrs() Attributes {
	return slices.Clone(n.attrs)
}

// DelAttr removes an attribute.
func (n *Node) DelAttr(key string) error {
	key = NormalizeKey(key)
	i := n.attrs.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrAttributeNotFound, key)
	}
	n.attrs = slices.Delete(n.attrs, i, i+1)
	return nil
}

// Classes returns the tokens of the class attribute.
func (n *Node) Classes() []string {
	s, ok := n.attrs.Get("class").(string)
	if !ok {
		return []string{}
	}
	var classes []string
	for _, c := range strings.Split(s, " ") {
		if c != "" {
			classes = append(classes, c)
		}
	}
	if classes == nil {
		return []string{}
	}
	return classes
}

// AddClass appends classes not already present, keeping first-seen order.
func (n *Node) AddClass(classes ...string) error {
	if n.typ != ElementNode {
		return fmt.Errorf("%w: cannot add class to %s node", ErrNotElement, n.typ)
	}
	current := n.Classes()
	for _, c := range classes {
		if !slices.Contains(current, c) {
			current = append(current, c)
		}
	}
	n.store(Attribute{Key: "class", Value: strings.Join(current, " ")})
	return nil
}

// RemoveClass removes classes. If any class is missing nothing is removed.
func (n *Node) RemoveClass(classes ...string) error {
	if n.typ != ElementNode {
		return fmt.Errorf("%w: cannot remove class from %s node", ErrNotElement, n.typ)
	}
	current := n.Classes()
	for _, c := range classes {
		i := slices.Index(current, c)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrClassNotFound, c)
		}
		current = slices.Delete(current, i, i+1)
	}
	n.store(Attribute{Key: "class", Value: strings.Join(current, " ")})
	return nil
}
