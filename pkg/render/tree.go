package render

import (
	"strconv"

	"github.com/xlab/treeprint"

	"github.com/domify-dev/domify/pkg/dom"
)

// Tree returns an indented outline of a tree for debugging:
//
//	<div class="card">
//	├── <h1>
//	│   └── "Title"
//	└── raw "<hr>"
func Tree(node *dom.Node) string {
	if node == nil {
		return ""
	}
	root := treeprint.NewWithRoot(label(node))
	addBranches(root, node)
	return root.String()
}

func addBranches(t treeprint.Tree, node *dom.Node) {
	for _, c := range node.Children() {
		if c.Len() == 0 {
			t.AddNode(label(c))
			continue
		}
		addBranches(t.AddBranch(label(c)), c)
	}
}

func label(node *dom.Node) string {
	switch node.Type() {
	case dom.ElementNode:
		return openTag(node)
	case dom.TextNode:
		return strconv.Quote(node.Content())
	case dom.RawTextNode:
		return "raw " + strconv.Quote(node.Content())
	default:
		return "(container)"
	}
}
