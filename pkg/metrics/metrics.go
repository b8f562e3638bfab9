package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	EvaluationsTotal   *prometheus.CounterVec
	EvaluationDuration prometheus.Histogram
	DictionaryDuration prometheus.Histogram
	AuditFailures      prometheus.Counter
	PublishFailures    prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		EvaluationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Total number of password evaluations by outcome and reason",
		}, []string{"outcome", "reason"}),
		EvaluationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating a password end to end",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		DictionaryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dictionary_check_duration_seconds",
			Help:      "Time spent in the dictionary checker",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		AuditFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "audit_failures_total",
			Help:      "Total number of attempts that could not be audited",
		}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "publish_failures_total",
			Help:      "Total number of rejection events that could not be published",
		}),
	}
}

// ObserveEvaluation records one evaluation outcome. Nil-safe so callers can
// run without metrics wired.
func (m *Metrics) ObserveEvaluation(outcome, reason string, seconds float64) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(outcome, reason).Inc()
	m.EvaluationDuration.Observe(seconds)
}

// ObserveDictionary records one dictionary checker call.
func (m *Metrics) ObserveDictionary(seconds float64) {
	if m == nil {
		return
	}
	m.DictionaryDuration.Observe(seconds)
}

// IncAuditFailure counts a failed audit write.
func (m *Metrics) IncAuditFailure() {
	if m == nil {
		return
	}
	m.AuditFailures.Inc()
}

// IncPublishFailure counts a failed rejection event publish.
func (m *Metrics) IncPublishFailure() {
	if m == nil {
		return
	}
	m.PublishFailures.Inc()
}
