// Package diag provides dom.Reporter implementations for collecting,
// fanning out and counting attribute warnings.
//
// A typical setup logs every warning and counts it:
//
//	metrics := diag.NewMetrics(diag.WithRegistry(reg))
//	b := dom.NewBuilder(dom.UseReporter(diag.Multi(dom.LogReporter{}, metrics)))
package diag
