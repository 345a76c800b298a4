package errors

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		code    string
		wantMsg string
		wantCat Category
	}{
		{"D002", "Unknown element", CategoryDocument},
		{"C001", "Invalid log level", CategoryConfig},
		{"R002", "Attribute warnings in strict mode", CategoryRender},
		{"X999", "Unknown error", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.wantCat, err.Category)
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("D002").WithDetail(`unknown element "dvi"`)
	assert.Equal(t, `D002: Unknown element: unknown element "dvi"`, err.Error())

	err.Location = &Location{File: "page.yaml", Line: 3, Column: 7}
	assert.Equal(t, `page.yaml:3:7: D002: Unknown element: unknown element "dvi"`, err.Error())

	bare := &Error{Message: "boom"}
	assert.Equal(t, "boom", bare.Error())
}

func TestLocationString(t *testing.T) {
	var nilLoc *Location
	assert.Equal(t, "", nilLoc.String())
	assert.Equal(t, "a.yaml:2", (&Location{File: "a.yaml", Line: 2}).String())
	assert.Equal(t, "a.yaml:2:4", (&Location{File: "a.yaml", Line: 2, Column: 4}).String())
}

func TestWrapAndIs(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := FromError(cause, "D006")
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, "D006"))
	assert.False(t, Is(err, "D001"))
	assert.False(t, Is(cause, "D006"))

	// Already coded errors pass through.
	assert.Same(t, err, FromError(err, "R001"))
	assert.Nil(t, FromError(nil, "R001"))
}

func TestWithLocationReadsContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	src := "root:\n  tag: div\n  children:\n    - tag: dvi\n    - text: hi\n    - text: bye\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	err := New("D002").WithLocation(path, 4, 12)
	assert.Equal(t, []string{"  tag: div", "  children:", "    - tag: dvi", "    - text: hi", "    - text: bye"}, err.Context)
	assert.Equal(t, 2, err.ContextStart)

	top := New("D001").WithLocation(path, 1, 1)
	assert.Equal(t, 1, top.ContextStart)
	assert.Equal(t, []string{"root:", "  tag: div", "  children:"}, top.Context)

	missing := New("D001").WithLocation(filepath.Join(t.TempDir(), "nope"), 1, 1)
	assert.Nil(t, missing.Context)
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("D002").
		WithDetail(`unknown element "dvi"`).
		WithSuggestion(`run "domify kinds" to list element names`).
		WithContext([]string{"  children:", "    - tag: dvi"}, 3)
	err.Location = &Location{File: "page.yaml", Line: 4, Column: 12}

	out := err.Format()
	assert.Contains(t, out, "ERROR D002: Unknown element")
	assert.Contains(t, out, "page.yaml:4:12")
	assert.Contains(t, out, "   3 │   children:")
	assert.Contains(t, out, "→    4 │     - tag: dvi")
	assert.Contains(t, out, strings.Repeat(" ", 11)+"^")
	assert.Contains(t, out, "Hint: run \"domify kinds\"")
	assert.NotContains(t, out, "\033[")

	assert.Equal(t,
		`page.yaml:4:12: D002: Unknown element: unknown element "dvi" (hint: run "domify kinds" to list element names)`,
		err.FormatCompact())
}

func TestFormatColors(t *testing.T) {
	EnableColors()
	out := New("C001").Format()
	assert.Contains(t, out, "\033[1;31mERROR\033[0m \033[1;37mC001:\033[0m Invalid log level")

	DisableColors()
	defer EnableColors()
	assert.Contains(t, New("C001").Format(), "ERROR C001: Invalid log level")
}

func TestFormatCompactSingleLine(t *testing.T) {
	err := New("D001").WithDetail("yaml: line 2:\n  mapping values are not allowed")
	assert.Equal(t, "D001: Invalid YAML: yaml: line 2: mapping values are not allowed", err.FormatCompact())
	assert.NotContains(t, err.FormatCompact(), "\n")
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, stderrors.New("plain"))
	assert.Equal(t, "\nERROR: plain\n\n", buf.String())

	buf.Reset()
	Fprint(&buf, New("C002"))
	assert.Contains(t, buf.String(), "ERROR C002: Invalid indent")

	buf.Reset()
	Warnf(&buf, "%d attribute warning(s) reported", 2)
	assert.Equal(t, "WARNING: 2 attribute warning(s) reported\n", buf.String())
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, wrapText("", 10))
	assert.Equal(t, []string{"short"}, wrapText("short", 10))
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrapText("aaa bbb ccc", 8))
	assert.Equal(t, []string{"a", "toolongword", "b"}, wrapText("a toolongword b", 5))
}
