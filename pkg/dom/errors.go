package dom

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeNotFound is returned when deleting an attribute that is not set.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrClassNotFound is returned when removing a class the node does not have.
	ErrClassNotFound = errors.New("class not found")

	// ErrIndexOutOfRange is returned for child indexes outside the children.
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrNotElement is returned when attributes or children are given to a
	// text leaf, or attributes to a container.
	ErrNotElement = errors.New("node is not an element")

	// ErrInvalidChild is returned for child values that cannot become nodes.
	ErrInvalidChild = errors.New("invalid child")

	// ErrCycle is returned when a node would become its own descendant.
	ErrCycle = errors.New("node cannot contain itself")

	// ErrNoScope is returned by Builder.Exit when no scope is open.
	ErrNoScope = errors.New("no open build scope")

	// ErrScopeMismatch is returned by Builder.Exit when the owner is not the
	// owner of the innermost scope.
	ErrScopeMismatch = errors.New("build scope closed out of order")

	// ErrUnknownKind is returned when an element name is not registered.
	ErrUnknownKind = errors.New("unknown element kind")

	// ErrDuplicateKind is returned when registering a name twice.
	ErrDuplicateKind = errors.New("element kind already registered")
)

// EmptyElementChildrenError is returned when children are given to an
// element whose kind is empty.
type EmptyElementChildrenError struct {
	Element string
}

func (e *EmptyElementChildrenError) Error() string {
	return fmt.Sprintf("element %q is empty and cannot have children", e.Element)
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d with %d children", ErrIndexOutOfRange, i, n)
}

func rangeError(lo, hi, n int) error {
	return fmt.Errorf("%w: range [%d:%d] with %d children", ErrIndexOutOfRange, lo, hi, n)
}
