package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the prometheus collectors the service maintains: HTTP
// traffic, ingest volume, normalization repairs and the current alert bucket
// sizes.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	rowsIngested  *prometheus.CounterVec
	dateRepairs   *prometheus.CounterVec
	bucketSize    *prometheus.GaugeVec
}

// NewMetrics initializes a private registry with all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests by path, method and status.",
		}, []string{"path", "method", "status"}),
		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_errors_total",
			Help: "HTTP errors by path, method and domain error code.",
		}, []string{"path", "method", "code"}),
		rowsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_rows_ingested_total",
			Help: "Raw rows accepted per upload kind.",
		}, []string{"kind"}),
		dateRepairs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_date_repairs_total",
			Help: "Date normalization fallbacks applied, by reason.",
		}, []string{"reason"}),
		bucketSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashboard_alert_bucket_size",
			Help: "Size of each derived alert bucket at the last load.",
		}, []string{"bucket"}),
	}
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest counts a completed HTTP request.
func (m *Metrics) RecordRequest(path, method string, status int) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
}

// RecordError counts a request that resolved to a domain error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(path, method, code).Inc()
}

// RecordIngest counts accepted raw rows for an upload kind.
func (m *Metrics) RecordIngest(kind string, rows int) {
	if m == nil {
		return
	}
	m.rowsIngested.WithLabelValues(kind).Add(float64(rows))
}

// RecordDateRepair counts normalization fallbacks by reason.
func (m *Metrics) RecordDateRepair(reason string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.dateRepairs.WithLabelValues(reason).Add(float64(count))
}

// SetBucketSize publishes the size of a derived alert bucket.
func (m *Metrics) SetBucketSize(bucket string, size int) {
	if m == nil {
		return
	}
	m.bucketSize.WithLabelValues(bucket).Set(float64(size))
}
