package dom

import (
	"sync"

	"github.com/domify-dev/domify/pkg/validate"
)

// collector records warnings for assertions.
type collector struct {
	mu       sync.Mutex
	warnings []Warning
}

func (c *collector) Report(w Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

func (c *collector) all() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Warning(nil), c.warnings...)
}

var testGlobals = Schema{
	"class":  Check(validate.Str),
	"id":     Check(validate.Str),
	"title":  Check(validate.Str),
	"hidden": Toggle("until-found", "hidden"),
	"dir":    OneOf("ltr", "rtl", "auto"),
}

var (
	divKind   = &Kind{Name: "div", GlobalAttributes: testGlobals}
	spanKind  = &Kind{Name: "span", GlobalAttributes: testGlobals}
	h1Kind    = &Kind{Name: "h1", GlobalAttributes: testGlobals}
	htmlKind  = &Kind{Name: "html", GlobalAttributes: testGlobals, Doctype: true}
	anyKind   = &Kind{Name: "x-widget", AnyAttribute: true}
	inputKind = &Kind{
		Name:             "input",
		Empty:            true,
		GlobalAttributes: testGlobals,
		ElementAttributes: Schema{
			"type":      OneOf("text", "checkbox", "number"),
			"checked":   Check(validate.Bool),
			"maxlength": Check(validate.IntGeZero),
			"min": CheckAttrs(func(value any, attrs Attributes) bool {
				return attrs.Get("type") == "number"
			}),
		},
	}
)

// testRegistry holds the kinds above for builder tests.
func testRegistry() *Registry {
	r := NewRegistry()
	for _, k := range []*Kind{divKind, spanKind, h1Kind, htmlKind, anyKind, inputKind} {
		r.MustRegister(k)
	}
	return r
}

func quiet() Option {
	return WithReporter(ReporterFunc(func(Warning) {}))
}
