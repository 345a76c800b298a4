package render

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"

	"github.com/domify-dev/domify/pkg/dom"
)

// Component adapts a tree to a gomponents node rendered with r.
func (r *Renderer) Component(node *dom.Node) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return r.RenderToWriter(w, node)
	})
}

// Component adapts a tree to a gomponents node rendered with the default
// configuration.
func Component(node *dom.Node) g.Node {
	return defaultRenderer.Component(node)
}

// FromComponent renders a gomponents node and wraps the output in a raw
// text node, so it can be placed in a dom tree.
func FromComponent(c g.Node) (*dom.Node, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return nil, err
	}
	return dom.Raw(buf.String()), nil
}
