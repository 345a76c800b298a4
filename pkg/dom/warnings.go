package dom

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Warning is a non-fatal schema diagnostic. Warnings are also errors so they
// can be collected, joined and matched with errors.As.
type Warning interface {
	error
	// Element is the name of the element the attribute was written to.
	Element() string
	// Attribute is the normalized attribute key.
	Attribute() string
}

// InvalidAttributeWarning reports an attribute the element's schemas do not
// know.
type InvalidAttributeWarning struct {
	ElementName   string
	AttributeName string
}

func (w *InvalidAttributeWarning) Error() string {
	return fmt.Sprintf("attribute `%s` not allowed on element `%s`", w.AttributeName, w.ElementName)
}

func (w *InvalidAttributeWarning) Element() string   { return w.ElementName }
func (w *InvalidAttributeWarning) Attribute() string { return w.AttributeName }

// InvalidAttributeValueWarning reports a value rejected by the attribute's
// rule. The value is stored regardless.
type InvalidAttributeValueWarning struct {
	ElementName   string
	AttributeName string
	Value         string
}

func (w *InvalidAttributeValueWarning) Error() string {
	return fmt.Sprintf("bad value `%s` for attribute `%s` on element `%s`", w.Value, w.AttributeName, w.ElementName)
}

func (w *InvalidAttributeValueWarning) Element() string   { return w.ElementName }
func (w *InvalidAttributeValueWarning) Attribute() string { return w.AttributeName }

// Reporter receives warnings as they are produced.
type Reporter interface {
	Report(w Warning)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(w Warning)

// Report implements Reporter.
func (f ReporterFunc) Report(w Warning) { f(w) }

// LogReporter logs warnings at WARN level.
type LogReporter struct {
	// Logger is the destination. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Report implements Reporter.
func (r LogReporter) Report(w Warning) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []slog.Attr{
		slog.String("element", w.Element()),
		slog.String("attribute", w.Attribute()),
	}
	if v, ok := w.(*InvalidAttributeValueWarning); ok {
		attrs = append(attrs, slog.String("value", v.Value))
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, w.Error(), attrs...)
}

type reporterHolder struct{ Reporter }

var defaultReporter atomic.Pointer[reporterHolder]

// SetDefaultReporter replaces the reporter used by nodes created without
// WithReporter. Passing nil restores logging through slog.Default().
func SetDefaultReporter(r Reporter) {
	if r == nil {
		defaultReporter.Store(nil)
		return
	}
	defaultReporter.Store(&reporterHolder{r})
}

// DefaultReporter returns the reporter used by nodes created without
// WithReporter.
func DefaultReporter() Reporter {
	if h := defaultReporter.Load(); h != nil {
		return h.Reporter
	}
	return LogReporter{}
}
