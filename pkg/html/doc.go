// Package html is the HTML element catalogue for dom.
//
// Each element has a constructor that panics on construction errors, so
// trees read like markup:
//
//	page := html.Html(html.Lang("en"),
//	    html.Body(
//	        html.Div(html.Class("card"), html.ID("main"),
//	            html.H1("Title"),
//	            html.P("Content"),
//	        ),
//	    ),
//	)
//
// The only construction error is passing children to an empty element such
// as Input or Br. html.Img("x") panics with *dom.EmptyElementChildrenError;
// use dom.New(html.Kind(atom.Img), ...) to get it back as an error instead.
//
// Constructors are not tied to any dom.Builder. A node made with html.P
// inside Builder.Scope is not collected by the scope and must be added to
// its parent explicitly. Scoped builds create nodes through the builder:
//
//	b := dom.NewBuilder()
//	list := b.MustEl("ul")
//	err := b.Scope(list, func() error {
//	    b.MustEl("li", "one")
//	    _, err := b.New(html.Kind(atom.Li), "two")
//	    return err
//	})
//
// Importing the package registers every kind in dom.DefaultRegistry, which
// is what dom.Builder.El resolves names against.
package html
