package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vast-core/internal/core/domain"
)

// Metrics contains Prometheus metrics for VAST parsing.
type Metrics struct {
	parses        *prometheus.CounterVec
	parseDuration prometheus.Histogram
	ads           *prometheus.CounterVec
}

// New registers the parsing collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		parses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vast_parse_total",
				Help: "Total number of VAST documents parsed, by result and error code",
			},
			[]string{"result", "code"},
		),
		parseDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vast_parse_duration_seconds",
				Help:    "Time spent parsing a VAST document",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		ads: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vast_ads_total",
				Help: "Total number of ads seen in successfully parsed documents, by kind",
			},
			[]string{"kind"},
		),
	}
}

// ObserveSuccess records a successful parse of doc.
func (m *Metrics) ObserveSuccess(doc *domain.VAST, took time.Duration) {
	m.parses.WithLabelValues("ok", "").Inc()
	m.parseDuration.Observe(took.Seconds())
	for _, ad := range doc.Ads {
		m.ads.WithLabelValues(string(ad.Kind())).Inc()
	}
}

// ObserveFailure records a failed parse with the given error code.
func (m *Metrics) ObserveFailure(code string, took time.Duration) {
	m.parses.WithLabelValues("error", code).Inc()
	m.parseDuration.Observe(took.Seconds())
}
