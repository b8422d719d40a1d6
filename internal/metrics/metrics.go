// Package metrics exposes Prometheus metrics for the item store and API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/reciklaza/internal/model"
	"github.com/erazemk/reciklaza/internal/notify"
)

const namespace = "reciklaza"

// Metrics holds the collectors on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	notices         *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers all collectors. counts is called once per scrape for the
// per-status item gauge.
func New(counts func() map[model.Status]int) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		notices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notices_total",
				Help:      "Total number of notices emitted by the item store",
			},
			[]string{"severity"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	reg.MustRegister(
		m.notices,
		m.requests,
		m.requestDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	if counts != nil {
		reg.MustRegister(&itemsCollector{
			desc: prometheus.NewDesc(
				prometheus.BuildFQName(namespace, "", "items"),
				"Number of items per status",
				[]string{"status"}, nil,
			),
			counts: counts,
		})
	}

	return m
}

// Notify counts a store notice. Metrics is a notify.Notifier.
func (m *Metrics) Notify(n notify.Notice) {
	m.notices.WithLabelValues(string(n.Severity)).Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// itemsCollector reports the item count of every status from a single
// counts call.
type itemsCollector struct {
	desc   *prometheus.Desc
	counts func() map[model.Status]int
}

func (c *itemsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *itemsCollector) Collect(ch chan<- prometheus.Metric) {
	counts := c.counts()
	for _, status := range model.Statuses {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(counts[status]), string(status))
	}
}
