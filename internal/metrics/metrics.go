// metrics содержит prometheus-метрики портала: исходы чтения списков,
// решения гейта, неизвестные имена иконок и активные потоки слайдера.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// Исходы чтения списка.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Metrics — набор метрик одного процесса.
type Metrics struct {
	ListFetches   *prometheus.CounterVec
	ListDuration  *prometheus.HistogramVec
	GateDecisions *prometheus.CounterVec
	UnknownIcons  prometheus.Counter
	SliderStreams prometheus.Gauge
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
}

// New регистрирует метрики в reg. В main передаётся prometheus.DefaultRegisterer,
// в тестах — свежий prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ListFetches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_fetches_total",
			Help:      "Remote list reads by table and outcome.",
		}, []string{"table", "outcome"}),
		ListDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "list_fetch_duration_seconds",
			Help:      "Remote list read latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table"}),
		GateDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_decisions_total",
			Help:      "Protected route decisions by state.",
		}, []string{"state"}),
		UnknownIcons: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_icons_total",
			Help:      "Sidebar icon names that fell back to the default icon.",
		}),
		SliderStreams: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "slider_streams",
			Help:      "Open slider SSE streams.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveFetch фиксирует одно чтение списка.
func (m *Metrics) ObserveFetch(table, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ListFetches.WithLabelValues(table, outcome).Inc()
	m.ListDuration.WithLabelValues(table).Observe(d.Seconds())
}

// ObserveGate фиксирует решение гейта.
func (m *Metrics) ObserveGate(state string) {
	if m == nil {
		return
	}
	m.GateDecisions.WithLabelValues(state).Inc()
}

// ObserveUnknownIcon фиксирует имя иконки, не найденное в перечислении.
func (m *Metrics) ObserveUnknownIcon() {
	if m == nil {
		return
	}
	m.UnknownIcons.Inc()
}

// StreamOpened/StreamClosed ведут счётчик открытых SSE-потоков слайдера.
func (m *Metrics) StreamOpened() {
	if m != nil {
		m.SliderStreams.Inc()
	}
}

func (m *Metrics) StreamClosed() {
	if m != nil {
		m.SliderStreams.Dec()
	}
}

// ObserveHTTP фиксирует один HTTP-запрос.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(d.Seconds())
}
