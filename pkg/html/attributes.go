package html

import (
	"strings"

	"github.com/domify-dev/domify/pkg/dom"
)

// attr creates a dom.Attr with the given key and value.
func attr(key string, value any) dom.Attr {
	return dom.Attr{Key: key, Value: value}
}

// ----------------------------------------------------------------------------
// Global attributes
// ----------------------------------------------------------------------------

func ID(id string) dom.Attr { return attr("id", id) }

// Class joins classes with spaces. Empty tokens are dropped.
func Class(classes ...string) dom.Attr {
	return attr("class", strings.Join(strings.Fields(strings.Join(classes, " ")), " "))
}

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) dom.Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) dom.Attr { return attr("title", title) }

// Data sets a data-* attribute.
func Data(key, value string) dom.Attr { return attr("data-"+key, value) }

// Aria sets an aria-* attribute.
func Aria(key string, value any) dom.Attr { return attr("aria-"+key, value) }

func Role(role string) dom.Attr        { return attr("role", role) }
func Lang(lang string) dom.Attr        { return attr("lang", lang) }
func Dir(dir string) dom.Attr          { return attr("dir", dir) }
func TabIndex(index int) dom.Attr      { return attr("tabindex", index) }
func AccessKey(key string) dom.Attr    { return attr("accesskey", key) }
func Autofocus() dom.Attr              { return attr("autofocus", true) }
func Translate(on bool) dom.Attr       { return attr("translate", yesNo(on)) }
func Spellcheck(on bool) dom.Attr      { return attr("spellcheck", trueFalse(on)) }
func ContentEditable(on bool) dom.Attr { return attr("contenteditable", trueFalse(on)) }
func Draggable(on bool) dom.Attr       { return attr("draggable", trueFalse(on)) }

// Hidden renders a bare hidden attribute; HiddenUntilFound renders
// hidden="until-found".
func Hidden() dom.Attr           { return attr("hidden", true) }
func HiddenUntilFound() dom.Attr { return attr("hidden", "until-found") }

// On sets an inline event handler, e.g. On("click", "go()") for onclick.
func On(event, script string) dom.Attr { return attr("on"+event, script) }

// ----------------------------------------------------------------------------
// Links and resources
// ----------------------------------------------------------------------------

func Href(url string) dom.Attr         { return attr("href", url) }
func Target(target string) dom.Attr    { return attr("target", target) }
func Rel(rel ...string) dom.Attr       { return attr("rel", strings.Join(rel, " ")) }
func Hreflang(lang string) dom.Attr    { return attr("hreflang", lang) }
func Src(url string) dom.Attr          { return attr("src", url) }
func Srcset(srcset string) dom.Attr    { return attr("srcset", srcset) }
func Integrity(hash string) dom.Attr   { return attr("integrity", hash) }
func CrossOrigin(mode string) dom.Attr { return attr("crossorigin", mode) }
func Media(query string) dom.Attr      { return attr("media", query) }
func Charset(cs string) dom.Attr       { return attr("charset", cs) }
func Content(c string) dom.Attr        { return attr("content", c) }
func HTTPEquiv(v string) dom.Attr      { return attr("http-equiv", v) }
func Async() dom.Attr                  { return attr("async", true) }
func Defer() dom.Attr                  { return attr("defer", true) }

// Download marks a link as a download, optionally naming the file.
func Download(filename ...string) dom.Attr {
	if len(filename) > 0 {
		return attr("download", filename[0])
	}
	return attr("download", true)
}

// ----------------------------------------------------------------------------
// Forms
// ----------------------------------------------------------------------------

func Name(name string) dom.Attr          { return attr("name", name) }
func Value(value any) dom.Attr           { return attr("value", value) }
func Type(t string) dom.Attr             { return attr("type", t) }
func Placeholder(text string) dom.Attr   { return attr("placeholder", text) }
func Disabled() dom.Attr                 { return attr("disabled", true) }
func Readonly() dom.Attr                 { return attr("readonly", true) }
func Required() dom.Attr                 { return attr("required", true) }
func Checked() dom.Attr                  { return attr("checked", true) }
func Selected() dom.Attr                 { return attr("selected", true) }
func Multiple() dom.Attr                 { return attr("multiple", true) }
func Autocomplete(value string) dom.Attr { return attr("autocomplete", value) }
func Pattern(pattern string) dom.Attr    { return attr("pattern", pattern) }
func MinLength(n int) dom.Attr           { return attr("minlength", n) }
func MaxLength(n int) dom.Attr           { return attr("maxlength", n) }
func Min(value string) dom.Attr          { return attr("min", value) }
func Max(value string) dom.Attr          { return attr("max", value) }
func Step(value any) dom.Attr            { return attr("step", value) }
func Accept(types string) dom.Attr       { return attr("accept", types) }
func Rows(n int) dom.Attr                { return attr("rows", n) }
func Cols(n int) dom.Attr                { return attr("cols", n) }
func Wrap(mode string) dom.Attr          { return attr("wrap", mode) }
func Action(url string) dom.Attr         { return attr("action", url) }
func Method(method string) dom.Attr      { return attr("method", method) }
func Enctype(enctype string) dom.Attr    { return attr("enctype", enctype) }
func AcceptCharset(cs string) dom.Attr   { return attr("accept-charset", cs) }
func Novalidate() dom.Attr               { return attr("novalidate", true) }
func For(id string) dom.Attr             { return attr("for", id) }
func FormAttr(id string) dom.Attr        { return attr("form", id) }
func LabelAttr(label string) dom.Attr    { return attr("label", label) }
func Size(n int) dom.Attr                { return attr("size", n) }
func List(id string) dom.Attr            { return attr("list", id) }
func FormAction(url string) dom.Attr     { return attr("formaction", url) }
func FormMethod(method string) dom.Attr  { return attr("formmethod", method) }
func Open() dom.Attr                     { return attr("open", true) }
func Reversed() dom.Attr                 { return attr("reversed", true) }
func Start(n int) dom.Attr               { return attr("start", n) }

// ----------------------------------------------------------------------------
// Tables
// ----------------------------------------------------------------------------

func Colspan(n int) dom.Attr         { return attr("colspan", n) }
func Rowspan(n int) dom.Attr         { return attr("rowspan", n) }
func Headers(ids ...string) dom.Attr { return attr("headers", strings.Join(ids, " ")) }
func Scope(scope string) dom.Attr    { return attr("scope", scope) }
func SpanAttr(n int) dom.Attr        { return attr("span", n) }

// ----------------------------------------------------------------------------
// Media
// ----------------------------------------------------------------------------

func Alt(text string) dom.Attr      { return attr("alt", text) }
func Width(w int) dom.Attr          { return attr("width", w) }
func Height(h int) dom.Attr         { return attr("height", h) }
func Loading(mode string) dom.Attr  { return attr("loading", mode) }
func Decoding(mode string) dom.Attr { return attr("decoding", mode) }
func Sizes(sizes string) dom.Attr   { return attr("sizes", sizes) }
func Controls() dom.Attr            { return attr("controls", true) }
func Autoplay() dom.Attr            { return attr("autoplay", true) }
func Loop() dom.Attr                { return attr("loop", true) }
func Muted() dom.Attr               { return attr("muted", true) }
func Poster(url string) dom.Attr    { return attr("poster", url) }
func Preload(mode string) dom.Attr  { return attr("preload", mode) }
func Sandbox(flags ...string) dom.Attr {
	return attr("sandbox", strings.Join(flags, " "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func trueFalse(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
