package diag

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/domify-dev/domify/pkg/dom"
)

// Warning reasons used as the "reason" label.
const (
	ReasonUnknownAttribute = "unknown_attribute"
	ReasonInvalidValue     = "invalid_value"
	ReasonOther            = "other"
)

// MetricsConfig configures the Prometheus reporter.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "domify").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus reporter.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "domify",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a dom.Reporter that counts warnings by element, attribute and
// reason. It also exposes a render duration histogram for callers that time
// rendering.
type Metrics struct {
	warnings       *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// NewMetrics registers the collectors and returns the reporter. It panics if
// the collectors are already registered with the registry, like promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attribute_warnings_total",
			Help:        "Total number of attribute warnings reported while building trees",
			ConstLabels: config.ConstLabels,
		}, []string{"element", "attribute", "reason"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Tree rendering duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// Report implements dom.Reporter.
func (m *Metrics) Report(w dom.Warning) {
	m.warnings.WithLabelValues(w.Element(), w.Attribute(), Reason(w)).Inc()
}

// ObserveRender records one rendering that took d.
func (m *Metrics) ObserveRender(d time.Duration) {
	m.renderDuration.Observe(d.Seconds())
}

// Reason classifies a warning for the "reason" label.
func Reason(w dom.Warning) string {
	var unknown *dom.InvalidAttributeWarning
	var invalid *dom.InvalidAttributeValueWarning
	switch {
	case errors.As(w, &unknown):
		return ReasonUnknownAttribute
	case errors.As(w, &invalid):
		return ReasonInvalidValue
	default:
		return ReasonOther
	}
}
