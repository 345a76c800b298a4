package diag

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domify-dev/domify/pkg/dom"
	"github.com/domify-dev/domify/pkg/html"
)

type otherWarning struct{}

func (otherWarning) Error() string     { return "other" }
func (otherWarning) Element() string   { return "div" }
func (otherWarning) Attribute() string { return "x" }

func TestCollector(t *testing.T) {
	c := &Collector{}
	assert.NoError(t, c.Err())

	html.Div(dom.WithReporter(c), dom.A("foo", 1), html.Dir("up"))
	require.Equal(t, 2, c.Len())

	ws := c.Warnings()
	assert.Equal(t, "foo", ws[0].Attribute())
	assert.Equal(t, "dir", ws[1].Attribute())

	err := c.Err()
	require.Error(t, err)
	var bad *dom.InvalidAttributeValueWarning
	assert.True(t, errors.As(err, &bad))
	assert.Contains(t, err.Error(), "attribute `foo` not allowed on element `div`")

	ws[0] = nil
	assert.NotNil(t, c.Warnings()[0], "Warnings returns a copy")

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCollectorConcurrent(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := dom.NewBuilder(dom.UseReporter(c))
			for j := 0; j < 25; j++ {
				b.MustEl("span", dom.A("bogus", j))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 200, c.Len())
}

func TestMulti(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	r := Multi(a, nil, b, Discard)
	html.P(dom.WithReporter(r), dom.A("nope", "x"))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithConstLabels(prometheus.Labels{"app": "test"}))

	html.Input(dom.WithReporter(m), html.Type("telepathy"), dom.A("foo", "1"))
	html.Input(dom.WithReporter(m), html.Type("nope"))
	m.Report(otherWarning{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.warnings.WithLabelValues("input", "type", ReasonInvalidValue)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.warnings.WithLabelValues("input", "foo", ReasonUnknownAttribute)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.warnings.WithLabelValues("div", "x", ReasonOther)))

	m.ObserveRender(5 * time.Millisecond)
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	names, err := reg.Gather()
	require.NoError(t, err)
	var got []string
	for _, mf := range names {
		got = append(got, mf.GetName())
	}
	assert.ElementsMatch(t, []string{"domify_attribute_warnings_total", "domify_render_duration_seconds"}, got)
}

func TestMetricsOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(
		WithRegistry(reg),
		WithNamespace("site"),
		WithSubsystem("preview"),
		WithBuckets([]float64{0.1, 1}),
	)
	n, err := testutil.GatherAndCount(reg, "site_preview_render_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A second reporter on the same registry collides.
	assert.Panics(t, func() { NewMetrics(WithRegistry(reg), WithNamespace("site"), WithSubsystem("preview")) })
}
