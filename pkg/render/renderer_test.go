package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/domify-dev/domify/pkg/dom"
	"github.com/domify-dev/domify/pkg/html"
)

type recorder struct {
	mu       sync.Mutex
	warnings []dom.Warning
}

func (r *recorder) Report(w dom.Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

func TestRenderBareKinds(t *testing.T) {
	kinds := dom.DefaultRegistry.Kinds()
	require.NotEmpty(t, kinds)
	for _, k := range kinds {
		want := "<" + k.Name + ">"
		if !k.Empty {
			want += "</" + k.Name + ">"
		}
		if k.Doctype {
			want = Doctype + want
		}
		assert.Equal(t, want, String(dom.MustNew(k)), k.Name)
	}
}

func TestRenderText(t *testing.T) {
	tests := []struct {
		name string
		node *dom.Node
		want string
	}{
		{"text", dom.Text("Hello, World!"), "Hello, World!"},
		{"escaped text", dom.Text("<script>alert('x')</script>"), "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"},
		{"raw text", dom.Raw("<hr>"), "<hr>"},
		{"number", dom.Text(42), "42"},
		{"child string", html.P("a < b"), "<p>a &lt; b</p>"},
		{"child raw", html.P(dom.Raw("<em>x</em>")), "<p><em>x</em></p>"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.node))
		})
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *dom.Node
		want string
	}{
		{"insertion order", html.Div(html.ID("a"), html.Class("b"), html.Data("x", "1")), `<div id="a" class="b" data-x="1"></div>`},
		{"normalized key", html.Div(dom.A("data_foo_", "value")), `<div data-foo="value"></div>`},
		{"trailing underscore", html.Label(dom.A("for_", "name")), `<label for="name"></label>`},
		{"bare", html.Input(html.Checked()), `<input checked>`},
		{"false removes", html.Input(html.Checked(), dom.A("checked", false)), `<input>`},
		{"false never stored", html.Input(dom.A("checked", false)), `<input>`},
		{"number", html.Div(dom.A("title", 82)), `<div title="82"></div>`},
		{"escaped value", html.Div(html.TitleAttr(`say "hi" & <go>`)), `<div title="say &quot;hi&quot; &amp; &lt;go&gt;"></div>`},
		{"rewrite keeps position", html.Div(html.ID("a"), html.Class("b"), html.ID("c")), `<div id="c" class="b"></div>`},
		{"nil skipped", html.Div(nil, dom.A("id", nil)), `<div></div>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.node))
		})
	}
}

func TestRenderInvalidAttributeStillRenders(t *testing.T) {
	rec := &recorder{}
	n := html.Div(dom.WithReporter(rec), dom.A("foo", "bar"), html.Dir("sideways"))

	assert.Equal(t, `<div foo="bar" dir="sideways"></div>`, String(n))
	require.Len(t, rec.warnings, 2)

	var unknown *dom.InvalidAttributeWarning
	require.True(t, errors.As(rec.warnings[0], &unknown))
	assert.Equal(t, "attribute `foo` not allowed on element `div`", unknown.Error())

	var bad *dom.InvalidAttributeValueWarning
	require.True(t, errors.As(rec.warnings[1], &bad))
	assert.Equal(t, "sideways", bad.Value)
}

func TestRenderDoctype(t *testing.T) {
	assert.Equal(t, "<!DOCTYPE html><html><body></body></html>", String(html.Html(html.Body())))
	assert.Equal(t, "<html></html>", String(html.Html(dom.Doctype(false))))
	assert.Equal(t, "<!DOCTYPE html><div></div>", String(html.Div(dom.Doctype(true))))

	r := NewRenderer(RendererConfig{Doctype: "<!doctype html>"})
	assert.Equal(t, "<!doctype html><html></html>", r.RenderToString(html.Html()))
}

func TestRenderConcat(t *testing.T) {
	c, err := dom.Concat(html.B("x"), " & ", html.I("y"))
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b> &amp; <i>y</i>", String(c))

	// A container placed inside an element renders its parts only.
	assert.Equal(t, "<p><b>x</b> &amp; <i>y</i></p>", String(html.P(c)))
}

func TestRenderIdempotent(t *testing.T) {
	n := html.Ul(html.Class("list"), html.Li("one"), html.Li(html.A(html.Href("/two"), "two")))
	first := String(n)
	assert.Equal(t, first, String(n))
	assert.Equal(t, `<ul class="list"><li>one</li><li><a href="/two">two</a></li></ul>`, first)
}

func TestFragments(t *testing.T) {
	n := html.Html(html.Body(html.P("hi")))
	got := NewRenderer(RendererConfig{}).Fragments(n)
	want := []string{
		Doctype, "<html>", "<body>", "<p>", "hi", "</p>", "</body>", "</html>",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fragments() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, String(n), strings.Join(got, ""))
}

func TestPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})

	n := html.Div(
		html.H1("Title"),
		html.P("a ", html.Strong("b")),
		html.Ul(html.Li("x")),
		html.Br(),
	)
	want := strings.Join([]string{
		"<div>",
		"  <h1>Title</h1>",
		"  <p>a <strong>b</strong></p>",
		"  <ul>",
		"    <li>x</li>",
		"  </ul>",
		"  <br>",
		"</div>",
		"",
	}, "\n")
	assert.Equal(t, want, r.RenderToString(n))

	assert.Equal(t, "<!DOCTYPE html>\n<html>\n  <body></body>\n</html>\n",
		r.RenderToString(html.Html(html.Body())))
}

func TestPrettyIndent(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})
	assert.Equal(t, "<ul>\n\t<li>x</li>\n</ul>\n", r.RenderToString(html.Ul(html.Li("x"))))
}

type failingWriter struct {
	writes int
	limit  int
}

var errWrite = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.limit {
		return 0, errWrite
	}
	w.writes++
	return len(p), nil
}

func TestRenderToWriter(t *testing.T) {
	n := html.Div(html.P("a"), html.P("b"))

	var buf bytes.Buffer
	require.NoError(t, defaultRenderer.RenderToWriter(&buf, n))
	assert.Equal(t, String(n), buf.String())

	w := &failingWriter{limit: 3}
	err := defaultRenderer.RenderToWriter(w, n)
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 3, w.writes)
}

func TestRenderContext(t *testing.T) {
	n := html.Section(html.H2("x"))

	var buf bytes.Buffer
	require.NoError(t, defaultRenderer.RenderContext(context.Background(), &buf, n))
	assert.Equal(t, "<section><h2>x</h2></section>", buf.String())

	err := defaultRenderer.RenderContext(context.Background(), &failingWriter{}, n)
	assert.ErrorIs(t, err, errWrite)

	assert.NoError(t, defaultRenderer.RenderContext(context.Background(), &buf, nil))
}

func TestRootLabel(t *testing.T) {
	assert.Equal(t, "", rootLabel(nil))
	assert.Equal(t, "div", rootLabel(html.Div()))
	assert.Equal(t, "Text", rootLabel(dom.Text("x")))
}

func TestComponent(t *testing.T) {
	n := html.P(html.Class("lead"), "x < y")

	var buf bytes.Buffer
	require.NoError(t, Component(n).Render(&buf))
	assert.Equal(t, `<p class="lead">x &lt; y</p>`, buf.String())

	// Round trip through gomponents keeps markup verbatim.
	raw, err := FromComponent(g.El("em", g.Text("a & b")))
	require.NoError(t, err)
	assert.Equal(t, dom.RawTextNode, raw.Type())
	assert.Equal(t, "<div><em>a &amp; b</em></div>", String(html.Div(raw)))

	_, err = FromComponent(g.NodeFunc(func(w io.Writer) error { return errWrite }))
	assert.ErrorIs(t, err, errWrite)
}

func TestTree(t *testing.T) {
	n := html.Div(html.Class("card"), html.H1("Title"), dom.Raw("<hr>"))
	out := Tree(n)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `<div class="card">`, lines[0])
	assert.Contains(t, lines[1], "<h1>")
	assert.Contains(t, lines[2], `"Title"`)
	assert.Contains(t, lines[3], `raw "<hr>"`)

	assert.Equal(t, "", Tree(nil))
}
