package diag

import (
	"errors"
	"sync"

	"github.com/domify-dev/domify/pkg/dom"
)

// Collector records warnings in arrival order. It is safe for concurrent
// use.
type Collector struct {
	mu       sync.Mutex
	warnings []dom.Warning
}

// Report implements dom.Reporter.
func (c *Collector) Report(w dom.Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of the recorded warnings.
func (c *Collector) Warnings() []dom.Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]dom.Warning(nil), c.warnings...)
}

// Len returns the number of recorded warnings.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}

// Reset drops all recorded warnings.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = nil
}

// Err joins the recorded warnings into one error, or returns nil if there
// are none.
func (c *Collector) Err() error {
	ws := c.Warnings()
	if len(ws) == 0 {
		return nil
	}
	errs := make([]error, len(ws))
	for i, w := range ws {
		errs[i] = w
	}
	return errors.Join(errs...)
}

type multi []dom.Reporter

func (m multi) Report(w dom.Warning) {
	for _, r := range m {
		r.Report(w)
	}
}

// Multi returns a reporter that forwards each warning to every non-nil
// reporter in order.
func Multi(reporters ...dom.Reporter) dom.Reporter {
	m := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

// Discard drops every warning.
var Discard dom.Reporter = dom.ReporterFunc(func(dom.Warning) {})
