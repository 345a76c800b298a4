package render

import "github.com/domify-dev/domify/pkg/dom"

// inlineElements are elements that are typically rendered inline
// and don't need newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"bdi":    true,
	"bdo":    true,
	"br":     true,
	"cite":   true,
	"code":   true,
	"data":   true,
	"dfn":    true,
	"em":     true,
	"i":      true,
	"kbd":    true,
	"mark":   true,
	"q":      true,
	"rb":     true,
	"rp":     true,
	"rt":     true,
	"rtc":    true,
	"ruby":   true,
	"s":      true,
	"samp":   true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"u":      true,
	"var":    true,
	"wbr":    true,
}

// isInlineElement returns true if the tag is an inline element.
func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// hasBlockChildren reports whether pretty mode puts node's children on
// their own lines.
func hasBlockChildren(node *dom.Node) bool {
	for _, c := range node.Children() {
		switch c.Type() {
		case dom.ElementNode:
			if !isInlineElement(c.Name()) {
				return true
			}
		case dom.ContainerNode:
			if hasBlockChildren(c) {
				return true
			}
		}
	}
	return false
}
