// Package render serializes dom trees to HTML.
//
// The render package walks a node tree and produces markup:
//
//   - Elements render as an opening tag, their children and a closing tag
//   - Empty (void) elements render the opening tag only
//   - Attributes render in insertion order; bare attributes as the key alone
//   - Text is escaped, raw text is written verbatim
//   - Containers render their children without a tag of their own
//   - Elements flagged with Doctype are preceded by <!DOCTYPE html>
//
// # Basic Usage
//
// To render a tree to a string:
//
//	html := render.String(node)
//
// To stream to a writer, or to get the output fragments:
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true})
//	err := renderer.RenderToWriter(w, node)
//	parts := renderer.Fragments(node)
//
// # Tracing
//
// RenderContext wraps rendering in an OpenTelemetry span using the global
// tracer provider.
//
// # gomponents
//
// Component adapts a dom tree to a gomponents.Node, and FromComponent embeds
// gomponents output in a dom tree as raw text.
//
// # Security
//
// All text content and attribute values are escaped. Raw text nodes bypass
// escaping and should only be used with trusted content.
package render
