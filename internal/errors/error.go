package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryConfig   Category = "config"
	CategoryRender   Category = "render"
	CategoryCLI      Category = "cli"
)

// Location is a position in an input file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a structured error with a code, location and hint.
type Error struct {
	// Code is a unique error identifier (e.g., "D001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Location is where in the input the error occurred.
	Location *Location

	// Context holds the input lines around Location, starting at line
	// ContextStart.
	Context      []string
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file position and reads the surrounding lines.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context, e.ContextStart = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with a format string.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// WithContext replaces the context lines; start is the line number of the
// first one.
func (e *Error) WithContext(lines []string, start int) *Error {
	e.Context, e.ContextStart = lines, start
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around targetLine from a file and returns
// them with the number of the first one.
func readContextLines(filename string, targetLine, contextSize int) ([]string, int) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := max(targetLine-contextSize/2, 1)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines, startLine
}

// template is a registered error code.
type template struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]template{
	// Documents (D001-D099)
	"D001": {CategoryDocument, "Invalid YAML"},
	"D002": {CategoryDocument, "Unknown element"},
	"D003": {CategoryDocument, "Malformed node"},
	"D004": {CategoryDocument, "Element cannot have children"},
	"D005": {CategoryDocument, "Invalid attribute value"},
	"D006": {CategoryDocument, "Cannot read document"},

	// Configuration (C001-C099)
	"C001": {CategoryConfig, "Invalid log level"},
	"C002": {CategoryConfig, "Invalid indent"},
	"C003": {CategoryConfig, "Cannot read configuration"},
	"C004": {CategoryConfig, "Invalid listen address"},

	// Rendering (R001-R099)
	"R001": {CategoryRender, "Render failed"},
	"R002": {CategoryRender, "Attribute warnings in strict mode"},
}

// New creates an Error from a registered code.
func New(code string) *Error {
	t, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "Unknown error"}
	}
	return &Error{Code: code, Category: t.Category, Message: t.Message}
}

// FromError wraps err under code, returning err itself when it already is
// an *Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err).WithDetail(err.Error())
}

// Is reports whether err carries code.
func Is(err error, code string) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}
