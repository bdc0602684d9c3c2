package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/SergeyParamoshkin/forum/internal/store"
)

const (
	// Unmatched is the route label for requests that selected no handler.
	Unmatched = "unmatched"
	// OtherMethod labels any method outside the standard HTTP set.
	OtherMethod = "OTHER"
)

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// Metrics records per-request instruments. Bound counters are cached per
// route, method and status so the hot path does not rebuild label sets.
type Metrics struct {
	requests metric.Int64Counter
	latency  metric.Float64ValueRecorder
	bound    *xsync.MapOf[string, metric.BoundInt64Counter]
}

func NewMetrics(meter metric.Meter) *Metrics {
	m := metric.Must(meter)

	return &Metrics{
		requests: m.NewInt64Counter(
			"forum/requests",
			metric.WithDescription("Count of completed requests, by route, HTTP method and response status"),
		),
		latency: m.NewFloat64ValueRecorder(
			"forum/request_duration_ms",
			metric.WithDescription("Time spent dispatching a request, in milliseconds"),
		),
		bound: xsync.NewMapOf[string, metric.BoundInt64Counter](),
	}
}

// ObserveRequest counts one completed request and records its latency.
func (m *Metrics) ObserveRequest(ctx context.Context, routeKey, method string, status int, elapsed time.Duration) {
	if !knownMethods[method] {
		method = OtherMethod
	}
	labels := []attribute.KeyValue{
		attribute.String("route", routeKey),
		attribute.String("method", method),
		attribute.Int("status", status),
	}

	key := routeKey + " " + method + " " + strconv.Itoa(status)
	counter, _ := m.bound.LoadOrCompute(key, func() metric.BoundInt64Counter {
		return m.requests.Bind(labels...)
	})
	counter.Add(ctx, 1)

	m.latency.Record(ctx, float64(elapsed)/float64(time.Millisecond), labels[:2]...)
}

// Close unbinds every cached counter.
func (m *Metrics) Close() {
	m.bound.Range(func(key string, counter metric.BoundInt64Counter) bool {
		counter.Unbind()
		m.bound.Delete(key)

		return true
	})
}

// StatsSource reports live record counts.
type StatsSource interface {
	Stats() store.Stats
}

// ObserveStore registers an observer reporting live records by kind.
func ObserveStore(meter metric.Meter, src StatsSource) {
	metric.Must(meter).NewInt64ValueObserver(
		"forum/records",
		func(_ context.Context, result metric.Int64ObserverResult) {
			s := src.Stats()
			result.Observe(int64(s.Users), attribute.String("kind", "user"))
			result.Observe(int64(s.Articles), attribute.String("kind", "article"))
			result.Observe(int64(s.Comments), attribute.String("kind", "comment"))
		},
		metric.WithDescription("Live records in the store, by kind"),
	)
}
