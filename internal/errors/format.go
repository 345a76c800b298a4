package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

// detailWidth is the column at which details are wrapped.
const detailWidth = 70

// style is an ANSI SGR sequence.
type style string

const (
	styleReset style = "\033[0m"
	styleError style = "\033[1;31m"
	styleWarn  style = "\033[1;33m"
	styleCode  style = "\033[1;37m"
	styleLoc   style = "\033[36m"
	styleDim   style = "\033[90m"
)

var noColor atomic.Bool

// DisableColors turns off ANSI styling in formatted output.
func DisableColors() { noColor.Store(true) }

// EnableColors turns ANSI styling back on.
func EnableColors() { noColor.Store(false) }

func (s style) paint(text string) string {
	if noColor.Load() || text == "" {
		return text
	}
	return string(s) + text + string(styleReset)
}

// Format returns the error laid out for a terminal: heading, location,
// source excerpt, wrapped detail and hint.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(e.heading())
	b.WriteString("\n\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", styleLoc.paint(e.Location.String()))
		if len(e.Context) > 0 {
			e.writeSource(&b)
			b.WriteString("\n")
		}
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n\n", styleLoc.paint("Hint:"), e.Suggestion)
	}

	return b.String()
}

func (e *Error) heading() string {
	if e.Code == "" {
		return styleError.paint("ERROR:") + " " + e.Message
	}
	return styleError.paint("ERROR") + " " + styleCode.paint(e.Code+":") + " " + e.Message
}

// writeSource prints the context lines behind a numbered gutter and points
// at the error column.
func (e *Error) writeSource(b *strings.Builder) {
	first := e.ContextStart
	if first == 0 {
		first = e.Location.Line - len(e.Context)/2
	}
	bar := styleDim.paint(" │ ")

	for i, line := range e.Context {
		n := first + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, bar, line)
			continue
		}
		fmt.Fprintf(b, "  %s %4d%s%s\n", styleError.paint("→"), n, bar, line)
		if e.Location.Column > 0 {
			fmt.Fprintf(b, "%7s%s%s%s\n", "", styleDim.paint("│ "),
				strings.Repeat(" ", e.Location.Column-1), styleError.paint("^"))
		}
	}
}

// FormatCompact returns the error on a single line with its hint, for
// places that cannot show multi-line output such as HTTP responses.
func (e *Error) FormatCompact() string {
	line := e.Error()
	if e.Suggestion != "" {
		line += " (hint: " + e.Suggestion + ")"
	}
	return strings.Join(strings.Fields(line), " ")
}

// wrapText splits text into lines of at most width bytes, breaking between
// words. A single word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, word := range words[1:] {
		last := len(lines) - 1
		if len(lines[last])+1+len(word) > width {
			lines = append(lines, word)
			continue
		}
		lines[last] += " " + word
	}
	return lines
}

// Fprint writes err to w, using Format for coded errors.
func Fprint(w io.Writer, err error) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", styleError.paint("ERROR:"), err)
}

// Warnf writes a one-line warning to w.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleWarn.paint("WARNING:"), fmt.Sprintf(format, args...))
}
