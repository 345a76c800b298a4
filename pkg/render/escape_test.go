package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"tags", "<script>", "&lt;script&gt;"},
		{"quotes", `"it's"`, "&quot;it&#39;s&quot;"},
		{"already escaped", "&amp;", "&amp;amp;"},
		{"newline kept", "a\nb", "a\nb"},
		{"unicode", "日本語 <3", "日本語 &lt;3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeHTML(tt.input))
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "card", "card"},
		{"quote", `a"b`, "a&quot;b"},
		{"single quote", "a'b", "a&#39;b"},
		{"whitespace", "a\nb\rc\td", "a&#10;b&#13;c&#9;d"},
		{"markup", "<b>&", "&lt;b&gt;&amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeAttr(tt.input))
		})
	}
}
