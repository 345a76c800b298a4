package html

import (
	"golang.org/x/net/html/atom"

	"github.com/domify-dev/domify/pkg/dom"
	"github.com/domify-dev/domify/pkg/validate"
)

// def describes one catalogue entry before registration.
type def struct {
	empty   bool
	any     bool
	doctype bool
	attrs   dom.Schema
}

// merge flattens schemas; later entries win.
func merge(schemas ...dom.Schema) dom.Schema {
	out := make(dom.Schema)
	for _, s := range schemas {
		for k, r := range s {
			out[k] = r
		}
	}
	return out
}

var (
	hyperlink = dom.Schema{
		"download":       dom.Check(validate.Any(validate.Bool, validate.Str)),
		"href":           str,
		"ping":           str,
		"referrerpolicy": str,
		"rel":            tokens,
		"target":         str,
	}
	formSubmit = dom.Schema{
		"formaction":     str,
		"formenctype":    encTypes,
		"formmethod":     formMethod,
		"formnovalidate": boolean,
		"formtarget":     str,
	}
	media = dom.Schema{
		"autoplay":    boolean,
		"controls":    boolean,
		"crossorigin": crossOrig,
		"loop":        boolean,
		"muted":       boolean,
		"preload":     dom.OneOf("none", "metadata", "auto"),
		"src":         str,
	}
	dimensions = dom.Schema{
		"height": nonNeg,
		"width":  nonNeg,
	}
	edit = dom.Schema{
		"cite":     str,
		"datetime": str,
	}
	cell = dom.Schema{
		"colspan": positive,
		"headers": tokens,
		"rowspan": nonNeg,
	}
	gauge = dom.Check(validate.Float())
)

var catalogue = map[atom.Atom]def{
	// Document structure
	atom.Html:  {doctype: true},
	atom.Head:  {},
	atom.Title: {},
	atom.Base:  {empty: true, attrs: dom.Schema{"href": str, "target": str}},
	atom.Link: {empty: true, attrs: dom.Schema{
		"as":             str,
		"color":          str,
		"crossorigin":    crossOrig,
		"disabled":       boolean,
		"href":           str,
		"hreflang":       str,
		"imagesizes":     str,
		"imagesrcset":    str,
		"integrity":      str,
		"media":          str,
		"referrerpolicy": str,
		"rel":            tokens,
		"sizes":          str,
		"type":           str,
	}},
	atom.Meta: {empty: true, attrs: dom.Schema{
		"charset": dom.OneOf("utf-8"),
		"content": str,
		"http-equiv": dom.OneOf("content-type", "default-style", "refresh",
			"x-ua-compatible", "content-security-policy"),
		"media": str,
		"name":  str,
	}},
	atom.Style: {attrs: dom.Schema{"media": str}},
	atom.Script: {attrs: dom.Schema{
		"async":          boolean,
		"crossorigin":    crossOrig,
		"defer":          boolean,
		"integrity":      str,
		"nomodule":       boolean,
		"referrerpolicy": str,
		"src":            str,
		"type":           str,
	}},
	atom.Noscript: {},
	atom.Body: {attrs: dom.Schema{
		"onafterprint":         str,
		"onbeforeprint":        str,
		"onbeforeunload":       str,
		"onhashchange":         str,
		"onlanguagechange":     str,
		"onmessage":            str,
		"onmessageerror":       str,
		"onoffline":            str,
		"ononline":             str,
		"onpagehide":           str,
		"onpageshow":           str,
		"onpopstate":           str,
		"onrejectionhandled":   str,
		"onstorage":            str,
		"onunhandledrejection": str,
		"onunload":             str,
	}},

	// Sectioning
	atom.Header:  {},
	atom.Footer:  {},
	atom.Main:    {},
	atom.Nav:     {},
	atom.Section: {},
	atom.Article: {},
	atom.Aside:   {},
	atom.Address: {},
	atom.H1:      {},
	atom.H2:      {},
	atom.H3:      {},
	atom.H4:      {},
	atom.H5:      {},
	atom.H6:      {},
	atom.Hgroup:  {},

	// Text content
	atom.Div:        {},
	atom.P:          {},
	atom.Pre:        {},
	atom.Blockquote: {attrs: dom.Schema{"cite": str}},
	atom.Ul:         {},
	atom.Ol: {attrs: dom.Schema{
		"reversed": boolean,
		"start":    integer,
		"type":     dom.OneOf("1", "a", "A", "i", "I"),
	}},
	atom.Li:         {attrs: dom.Schema{"value": integer}},
	atom.Menu:       {},
	atom.Dl:         {},
	atom.Dt:         {},
	atom.Dd:         {},
	atom.Hr:         {empty: true},
	atom.Figure:     {},
	atom.Figcaption: {},

	// Inline text
	atom.A:      {attrs: merge(hyperlink, dom.Schema{"hreflang": str, "type": str})},
	atom.Span:   {},
	atom.Strong: {},
	atom.Em:     {},
	atom.B:      {},
	atom.I:      {},
	atom.U:      {},
	atom.S:      {},
	atom.Small:  {},
	atom.Mark:   {},
	atom.Sub:    {},
	atom.Sup:    {},
	atom.Code:   {},
	atom.Kbd:    {},
	atom.Samp:   {},
	atom.Var:    {},
	atom.Abbr:   {},
	atom.Time:   {attrs: dom.Schema{"datetime": str}},
	atom.Cite:   {},
	atom.Q:      {attrs: dom.Schema{"cite": str}},
	atom.Dfn:    {},
	atom.Ruby:   {},
	atom.Rt:     {},
	atom.Rp:     {},
	atom.Bdi:    {},
	atom.Bdo:    {},
	atom.Data:   {attrs: dom.Schema{"value": str}},
	atom.Br:     {empty: true},
	atom.Wbr:    {empty: true},
	atom.Ins:    {attrs: edit},
	atom.Del:    {attrs: edit},

	// Forms
	atom.Form: {attrs: dom.Schema{
		"accept-charset": dom.Check(validate.StrLiteralCI("UTF-8")),
		"action":         str,
		"autocomplete":   dom.OneOf("on", "off"),
		"enctype":        encTypes,
		"method":         formMethod,
		"name":           str,
		"novalidate":     boolean,
		"target":         str,
	}},
	atom.Input: {empty: true, attrs: merge(formSubmit, dimensions, dom.Schema{
		"accept":       str,
		"alt":          str,
		"autocomplete": str,
		"checked":      boolean,
		"dirname":      str,
		"disabled":     boolean,
		"form":         str,
		"list":         str,
		"max":          str,
		"maxlength":    nonNeg,
		"min":          str,
		"minlength":    nonNeg,
		"multiple":     boolean,
		"name":         str,
		"pattern":      str,
		"placeholder":  str,
		"readonly":     boolean,
		"required":     boolean,
		"size":         positive,
		"src":          str,
		"step":         dom.Check(validate.Any(validate.FloatGtZero, validate.StrLiteral("any"))),
		"type": dom.OneOf("hidden", "text", "search", "tel", "url", "email",
			"password", "date", "month", "week", "time", "datetime-local",
			"number", "range", "color", "checkbox", "radio", "file", "submit",
			"image", "reset", "button"),
		"value": str,
	})},
	atom.Textarea: {attrs: dom.Schema{
		"autocomplete": str,
		"cols":         positive,
		"dirname":      str,
		"disabled":     boolean,
		"form":         str,
		"maxlength":    nonNeg,
		"minlength":    nonNeg,
		"name":         str,
		"placeholder":  str,
		"readonly":     boolean,
		"required":     boolean,
		"rows":         positive,
		"wrap":         dom.OneOf("soft", "hard"),
	}},
	atom.Select: {attrs: dom.Schema{
		"autocomplete": str,
		"disabled":     boolean,
		"form":         str,
		"multiple":     boolean,
		"name":         str,
		"required":     boolean,
		"size":         positive,
	}},
	atom.Option: {attrs: dom.Schema{
		"disabled": boolean,
		"label":    str,
		"selected": boolean,
		"value":    str,
	}},
	atom.Optgroup: {attrs: dom.Schema{"disabled": boolean, "label": str}},
	atom.Button: {attrs: merge(formSubmit, dom.Schema{
		"disabled": boolean,
		"form":     str,
		"name":     str,
		"type":     dom.OneOf("submit", "reset", "button"),
		"value":    str,
	})},
	atom.Label:    {attrs: dom.Schema{"for": str}},
	atom.Fieldset: {attrs: dom.Schema{"disabled": boolean, "form": str, "name": str}},
	atom.Legend:   {},
	atom.Datalist: {},
	atom.Output:   {attrs: dom.Schema{"for": tokens, "form": str, "name": str}},
	atom.Progress: {attrs: dom.Schema{"max": gauge, "value": gauge}},
	atom.Meter: {attrs: dom.Schema{
		"high":    gauge,
		"low":     gauge,
		"max":     gauge,
		"min":     gauge,
		"optimum": gauge,
		"value":   gauge,
	}},

	// Tables
	atom.Table:    {},
	atom.Caption:  {},
	atom.Colgroup: {attrs: dom.Schema{"span": positive}},
	atom.Col:      {empty: true, attrs: dom.Schema{"span": positive}},
	atom.Thead:    {},
	atom.Tbody:    {},
	atom.Tfoot:    {},
	atom.Tr:       {},
	atom.Td:       {attrs: cell},
	atom.Th: {attrs: merge(cell, dom.Schema{
		"abbr":  str,
		"scope": dom.OneOf("row", "col", "rowgroup", "colgroup"),
	})},

	// Embedded content
	atom.Img: {empty: true, attrs: merge(dimensions, dom.Schema{
		"alt":            str,
		"crossorigin":    crossOrig,
		"decoding":       dom.OneOf("sync", "async", "auto"),
		"ismap":          boolean,
		"loading":        dom.OneOf("lazy", "eager"),
		"referrerpolicy": str,
		"sizes":          str,
		"src":            str,
		"srcset":         str,
		"usemap":         str,
	})},
	atom.Picture: {attrs: dom.Schema{"media": str, "width": nonNeg}},
	atom.Source: {empty: true, attrs: merge(dimensions, dom.Schema{
		"media":  str,
		"sizes":  str,
		"src":    str,
		"srcset": str,
		"type":   str,
	})},
	atom.Audio: {attrs: media},
	atom.Video: {attrs: merge(media, dimensions, dom.Schema{
		"playsinline": boolean,
		"poster":      str,
	})},
	atom.Track: {empty: true, attrs: dom.Schema{
		"default": boolean,
		"kind":    dom.OneOf("subtitles", "captions", "descriptions", "chapters", "metadata"),
		"label":   str,
		"src":     str,
		"srclang": str,
	}},
	atom.Iframe: {attrs: merge(dimensions, dom.Schema{
		"allow":           str,
		"allowfullscreen": boolean,
		"loading":         dom.OneOf("lazy", "eager"),
		"name":            str,
		"referrerpolicy":  str,
		"sandbox": dom.Check(validate.UniqueSetLiteralCI(
			"allow-forms", "allow-modals", "allow-orientation-lock",
			"allow-pointer-lock", "allow-popups", "allow-popups-to-escape-sandbox",
			"allow-presentation", "allow-same-origin", "allow-scripts",
			"allow-top-navigation")),
		"src":    str,
		"srcdoc": str,
	})},
	atom.Embed: {empty: true, any: true, attrs: merge(dimensions, dom.Schema{"src": str, "type": str})},
	atom.Object: {attrs: merge(dimensions, dom.Schema{
		"data": str,
		"form": str,
		"name": str,
		"type": str,
	})},
	atom.Param:  {empty: true, attrs: dom.Schema{"name": str, "value": str}},
	atom.Canvas: {attrs: dimensions},
	atom.Map:    {attrs: dom.Schema{"name": str}},
	atom.Area: {empty: true, attrs: merge(hyperlink, dom.Schema{
		"alt":    str,
		"coords": str,
		"shape":  dom.OneOf("circle", "default", "poly", "rect"),
	})},

	// Interactive and web components
	atom.Details:  {attrs: dom.Schema{"open": boolean}},
	atom.Summary:  {},
	atom.Dialog:   {attrs: dom.Schema{"open": boolean}},
	atom.Template: {},
	atom.Slot:     {attrs: dom.Schema{"name": str}},
}

// kinds holds the registered kind for every catalogue atom.
var kinds = register(dom.DefaultRegistry)

func register(r *dom.Registry) map[atom.Atom]*dom.Kind {
	out := make(map[atom.Atom]*dom.Kind, len(catalogue))
	for a, d := range catalogue {
		out[a] = r.MustRegister(&dom.Kind{
			Name:              a.String(),
			Empty:             d.empty,
			AnyAttribute:      d.any,
			Doctype:           d.doctype,
			GlobalAttributes:  globalAttributes,
			ElementAttributes: d.attrs,
		})
	}
	return out
}

// Kind returns the registered kind for a, or nil if a is not an element in
// the catalogue.
func Kind(a atom.Atom) *dom.Kind {
	return kinds[a]
}

// Lookup returns the kind for a tag name. Names are matched exactly, as
// atom.Lookup does.
func Lookup(name string) (*dom.Kind, bool) {
	k, ok := kinds[atom.Lookup([]byte(name))]
	return k, ok
}

// Global reports the rule for a global attribute.
func Global(key string) (dom.Rule, bool) {
	r, ok := globalAttributes[dom.NormalizeKey(key)]
	return r, ok
}

// el builds an element of a catalogue kind.
func el(a atom.Atom, args []any) *dom.Node {
	return dom.MustNew(kinds[a], args...)
}
