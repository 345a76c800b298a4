// Package document loads YAML page descriptions into dom trees.
//
// A document has an optional doctype override and one root node:
//
//	doctype: true
//	root:
//	  tag: html
//	  attrs:
//	    lang: en
//	  children:
//	    - tag: body
//	      children:
//	        - tag: h1
//	          children: [Hello]
//	        - raw: "<hr>"
//	        - text: "a < b"
//
// A node is a mapping with exactly one of tag, text or raw, or a plain
// scalar, which is shorthand for text. Attributes keep their file order and
// their YAML types: true renders bare, false omits the attribute, numbers
// render in their usual form.
//
// Trees are assembled with dom.Builder scopes, so every node created while
// an element's children are read attaches to that element.
package document
