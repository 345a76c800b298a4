// Package dom provides the node tree used to build markup documents.
//
// # Core Types
//
// Kind describes an element type: its name, whether it is empty (void), and
// the attribute schemas its nodes are validated against. Node is the single
// tree entity; its Type distinguishes elements, escaped text, raw text and
// plain containers.
//
// # Construction
//
// Nodes are created with New, which accepts children, attributes and options
// in any order:
//
//	div, err := dom.New(divKind,
//	    dom.A("class_", "card"),
//	    dom.A("data_id", 7),
//	    "Hello",
//	    dom.Text(" & welcome"),
//	)
//
// Attribute keys are normalized: trailing underscores are stripped and the
// remaining underscores become dashes, so "class_" is "class" and
// "data_id" is "data-id".
//
// # Validation
//
// Every attribute write is checked against the kind's schemas. Unknown keys
// and bad values produce warnings, delivered to a Reporter; they never stop
// the write. Only structural mistakes (children on an empty element, missing
// attributes, indexes out of range) are errors.
//
// # Scoped Building
//
// A Builder collects the nodes constructed through it while a scope is open
// and attaches them to the scope owner when the scope closes:
//
//	b := dom.NewBuilder()
//	page := b.MustEl("div")
//	err := b.Scope(page, func() error {
//	    b.MustEl("h1", "Title")
//	    b.MustEl("p", "Body")
//	    return nil
//	})
//
// A Builder belongs to one build sequence. Concurrent builds use one Builder
// each, which keeps their scopes isolated.
package dom
