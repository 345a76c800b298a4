package html

import (
	"strings"

	"github.com/domify-dev/domify/pkg/dom"
	"github.com/domify-dev/domify/pkg/validate"
)

var (
	str        = dom.Check(validate.Str)
	boolean    = dom.Check(validate.Bool)
	integer    = dom.Check(validate.Int())
	nonNeg     = dom.Check(validate.IntGeZero)
	positive   = dom.Check(validate.IntGtZero)
	tokens     = dom.Check(validate.UniqueSet)
	crossOrig  = dom.OneOf("anonymous", "use-credentials")
	formMethod = dom.OneOf("GET", "POST", "dialog")
	encTypes   = dom.OneOf("application/x-www-form-urlencoded", "multipart/form-data", "text/plain")
)

// singleChars accepts token lists whose tokens are one character long.
func singleChars(value any) bool {
	for _, tok := range strings.Fields(validate.ToString(value)) {
		if len([]rune(tok)) > 1 {
			return false
		}
	}
	return true
}

var eventHandlers = []string{
	"onauxclick", "onblur", "oncancel", "oncanplay", "oncanplaythrough",
	"onchange", "onclick", "onclose", "oncontextlost", "oncontextmenu",
	"oncontextrestored", "oncopy", "oncuechange", "oncut", "ondblclick",
	"ondrag", "ondragend", "ondragenter", "ondragleave", "ondragover",
	"ondragstart", "ondrop", "ondurationchange", "onemptied", "onended",
	"onerror", "onfocus", "onformdata", "oninput", "oninvalid",
	"onkeydown", "onkeypress", "onkeyup", "onload", "onloadeddata",
	"onloadedmetadata", "onloadstart", "onmousedown", "onmouseenter",
	"onmouseleave", "onmousemove", "onmouseout", "onmouseover", "onmouseup",
	"onpaste", "onpause", "onplay", "onplaying", "onprogress",
	"onratechange", "onreset", "onresize", "onscroll",
	"onsecuritypolicyviolation", "onseeked", "onseeking", "onselect",
	"onslotchange", "onstalled", "onsubmit", "onsuspend", "ontimeupdate",
	"ontoggle", "onvolumechange", "onwaiting", "onwheel",
}

// globalAttributes apply to every HTML element.
var globalAttributes = func() dom.Schema {
	s := dom.Schema{
		"accesskey":       dom.Check(validate.All(validate.UniqueSet, singleChars)),
		"autocapitalize":  dom.OneOf("on", "off", "none", "sentences", "words", "characters"),
		"autofocus":       boolean,
		"class":           str,
		"contenteditable": dom.OneOf("true", "false"),
		"dir":             dom.OneOf("ltr", "rtl", "auto"),
		"draggable":       dom.OneOf("true", "false"),
		"enterkeyhint":    dom.OneOf("enter", "done", "go", "next", "previous", "search", "send"),
		"hidden":          dom.Toggle("", "hidden", "until-found"),
		"id":              str,
		"inert":           boolean,
		"inputmode":       dom.OneOf("none", "text", "tel", "email", "url", "numeric", "decimal", "search"),
		"is":              str,
		"itemid":          str,
		"itemprop":        tokens,
		"itemref":         tokens,
		"itemscope":       boolean,
		"itemtype":        tokens,
		"lang":            str,
		"nonce":           str,
		"popover":         dom.Toggle("", "auto", "manual"),
		"role":            str,
		"slot":            str,
		"spellcheck":      dom.OneOf("true", "false"),
		"style":           str,
		"tabindex":        integer,
		"title":           str,
		"translate":       dom.OneOf("yes", "no"),
	}
	for _, name := range eventHandlers {
		s[name] = str
	}
	return s
}()
