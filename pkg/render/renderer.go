package render

import (
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/domify-dev/domify/pkg/dom"
)

// Doctype is the default document marker.
const Doctype = "<!DOCTYPE html>"

const defaultTracerName = "domify"

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty puts block elements and their children on separate indented
	// lines. Elements whose children are all text or inline elements stay
	// on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Doctype is the marker written before elements flagged with Doctype.
	// Defaults to "<!DOCTYPE html>".
	Doctype string

	// TracerName names the OpenTelemetry tracer used by RenderContext.
	// Defaults to "domify".
	TracerName string
}

// Renderer serializes node trees. A Renderer holds no per-render state and
// is safe for concurrent use.
type Renderer struct {
	config RendererConfig
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.Doctype == "" {
		config.Doctype = Doctype
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	return &Renderer{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

var defaultRenderer = NewRenderer(RendererConfig{})

// String renders a tree with the default configuration.
func String(node *dom.Node) string {
	return defaultRenderer.RenderToString(node)
}

// Fragments returns the output as an ordered list of fragments whose
// concatenation is the rendered tree.
func (r *Renderer) Fragments(node *dom.Node) []string {
	var parts []string
	r.renderNode(func(s string) error {
		parts = append(parts, s)
		return nil
	}, node, 0)
	return parts
}

// RenderToString renders a tree to a string.
func (r *Renderer) RenderToString(node *dom.Node) string {
	var sb strings.Builder
	r.renderNode(func(s string) error {
		sb.WriteString(s)
		return nil
	}, node, 0)
	return sb.String()
}

// RenderToWriter streams a tree to w, stopping at the first write error.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(func(s string) error {
		_, err := io.WriteString(w, s)
		return err
	}, node, 0)
}

// RenderContext is RenderToWriter inside a "domify.render" span.
func (r *Renderer) RenderContext(ctx context.Context, w io.Writer, node *dom.Node) error {
	count := 0
	if node != nil {
		node.Walk(func(*dom.Node) bool {
			count++
			return true
		})
	}

	_, span := r.tracer.Start(ctx, "domify.render",
		trace.WithAttributes(
			attribute.String("domify.root", rootLabel(node)),
			attribute.Int("domify.nodes", count),
			attribute.Bool("domify.pretty", r.config.Pretty),
		),
	)
	defer span.End()

	if err := r.RenderToWriter(w, node); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func rootLabel(node *dom.Node) string {
	if node == nil {
		return ""
	}
	if node.Type() == dom.ElementNode {
		return node.Name()
	}
	return node.Type().String()
}

type emitFunc func(s string) error

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(emit emitFunc, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Type() {
	case dom.ElementNode:
		return r.renderElement(emit, node, depth)
	case dom.TextNode:
		return r.renderLeaf(emit, escapeHTML(node.Content()), depth)
	case dom.RawTextNode:
		return r.renderLeaf(emit, node.Content(), depth)
	default:
		return r.renderChildren(emit, node, depth)
	}
}

// renderChildren renders children without a wrapper element.
func (r *Renderer) renderChildren(emit emitFunc, node *dom.Node, depth int) error {
	for _, child := range node.Children() {
		if err := r.renderNode(emit, child, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderLeaf(emit emitFunc, text string, depth int) error {
	if !r.config.Pretty {
		return emit(text)
	}
	return r.line(emit, depth, text)
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(emit emitFunc, node *dom.Node, depth int) error {
	open := openTag(node)
	closing := "</" + node.Name() + ">"

	if !r.config.Pretty {
		if node.Doctype() {
			if err := emit(r.config.Doctype); err != nil {
				return err
			}
		}
		if err := emit(open); err != nil {
			return err
		}
		if node.Kind().Empty {
			return nil
		}
		if err := r.renderChildren(emit, node, depth+1); err != nil {
			return err
		}
		return emit(closing)
	}

	if node.Doctype() {
		if err := r.line(emit, depth, r.config.Doctype); err != nil {
			return err
		}
	}
	if node.Kind().Empty {
		return r.line(emit, depth, open)
	}
	if !hasBlockChildren(node) {
		// Inline content stays on the opening tag's line.
		var sb strings.Builder
		flat := &Renderer{config: r.config}
		flat.config.Pretty = false
		flat.renderChildren(func(s string) error {
			sb.WriteString(s)
			return nil
		}, node, depth+1)
		return r.line(emit, depth, open+sb.String()+closing)
	}
	if err := r.line(emit, depth, open); err != nil {
		return err
	}
	if err := r.renderChildren(emit, node, depth+1); err != nil {
		return err
	}
	return r.line(emit, depth, closing)
}

// line writes one indented line in pretty mode.
func (r *Renderer) line(emit emitFunc, depth int, s string) error {
	return emit(strings.Repeat(r.config.Indent, depth) + s + "\n")
}

// openTag builds the opening tag with attributes in insertion order.
func openTag(node *dom.Node) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(node.Name())
	for _, a := range node.Attrs() {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if a.Bare {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}
