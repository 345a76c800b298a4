package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/diag"
	"github.com/domify-dev/domify/pkg/dom"
	_ "github.com/domify-dev/domify/pkg/html"
	"github.com/domify-dev/domify/pkg/render"
)

const page = `
root:
  tag: html
  attrs:
    lang: en
  children:
    - tag: body
      attrs:
        class: page
        hidden: false
        data_count: 3
      children:
        - tag: h1
          children: [Hello]
        - text: "a < b"
        - raw: "<hr>"
        - tag: input
          attrs:
            type: checkbox
            checked: true
        - plain child
`

func TestParse(t *testing.T) {
	n, err := Parse([]byte(page))
	require.NoError(t, err)

	want := `<!DOCTYPE html><html lang="en"><body class="page" data-count="3">` +
		`<h1>Hello</h1>a &lt; b<hr><input type="checkbox" checked>plain child</body></html>`
	assert.Equal(t, want, render.String(n))

	// Rendering the same document twice gives the same output.
	again, err := Parse([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, render.String(n), render.String(again))
}

func TestParseDoctypeOverride(t *testing.T) {
	n, err := Parse([]byte("doctype: false\nroot: {tag: html}\n"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", render.String(n))

	n, err = Parse([]byte("doctype: true\nroot: {tag: div}\n"))
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html><div></div>", render.String(n))
}

func TestParseWarnings(t *testing.T) {
	c := &diag.Collector{}
	_, err := Parse([]byte("root:\n  tag: div\n  attrs: {dir: up, bogus: 1}\n"), WithReporter(c))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "dir", c.Warnings()[0].Attribute())
	assert.Equal(t, "bogus", c.Warnings()[1].Attribute())
}

func TestParseRegistry(t *testing.T) {
	reg := dom.NewRegistry()
	reg.MustRegister(&dom.Kind{Name: "card", AnyAttribute: true})

	n, err := Parse([]byte("root: {tag: card, attrs: {x: 1}}\n"), WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, `<card x="1"></card>`, render.String(n))

	_, err = Parse([]byte("root: {tag: div}\n"), WithRegistry(reg))
	assert.True(t, clierrors.Is(err, "D002"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
		line int
	}{
		{"syntax", "root: [", "D001", 0},
		{"empty", "", "D003", 0},
		{"not a mapping", "- a\n", "D003", 1},
		{"missing root", "doctype: true\n", "D003", 1},
		{"unknown document key", "root: {tag: p}\nextra: 1\n", "D003", 2},
		{"bad doctype", "doctype: maybe\nroot: {tag: p}\n", "D003", 1},
		{"unknown tag", "root:\n  tag: dvi\n", "D002", 2},
		{"nested unknown tag", "root:\n  tag: div\n  children:\n    - tag: p\n    - tag: blink\n", "D002", 5},
		{"two kinds", "root: {tag: p, text: x}\n", "D003", 1},
		{"no kind", "root: {attrs: {id: x}}\n", "D003", 1},
		{"text with children", "root:\n  tag: p\n  children:\n    - text: x\n      children: []\n", "D003", 4},
		{"unknown node key", "root: {tag: p, kids: []}\n", "D003", 1},
		{"children not list", "root: {tag: p, children: x}\n", "D003", 1},
		{"empty element", "root:\n  tag: br\n  children: [x]\n", "D004", 3},
		{"attr not scalar", "root: {tag: p, attrs: {id: [1]}}\n", "D005", 1},
		{"attrs not mapping", "root: {tag: p, attrs: [id]}\n", "D003", 1},
		{"sequence child", "root:\n  tag: p\n  children:\n    - [x]\n", "D003", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.src), WithFilename("page.yaml"))
			require.Error(t, err)
			assert.Nil(t, n)
			assert.True(t, clierrors.Is(err, tt.code), "got %v", err)
			if tt.line > 0 {
				var e *clierrors.Error
				require.ErrorAs(t, err, &e)
				require.NotNil(t, e.Location)
				assert.Equal(t, "page.yaml", e.Location.File)
				assert.Equal(t, tt.line, e.Location.Line)
				assert.NotEmpty(t, e.Context)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root:\n  tag: ul\n  children:\n    - tag: li\n      children: [one]\n    - tag: nope\n"), 0o644))

	_, err := Load(path)
	var e *clierrors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "D002", e.Code)
	assert.Equal(t, path, e.Location.File)
	assert.Equal(t, 6, e.Location.Line)
	assert.Equal(t, 4, e.ContextStart)
	assert.Contains(t, e.Context, "    - tag: nope")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, clierrors.Is(err, "D006"))
}
