package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the classification module.
type Metrics struct {
	// Classification outcomes by archival value and era
	ClassificationOutcome *prometheus.CounterVec

	// Compliance issues surfaced, by framework and severity
	ComplianceIssues *prometheus.CounterVec

	// Hotspot upgrades applied during resolution
	HotspotUpgrades prometheus.Counter

	// Assessment cache effectiveness
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Full classification latency including persistence
	ClassifyLatency prometheus.Histogram
}

// New creates a Metrics instance with all classification metrics registered.
func New() *Metrics {
	return &Metrics{
		ClassificationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "archivum_classification_outcomes_total",
			Help: "Total classification outcomes by archival value and schedule era",
		}, []string{"value", "era"}),

		ComplianceIssues: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "archivum_compliance_issues_total",
			Help: "Total compliance issues surfaced by framework and severity",
		}, []string{"framework", "severity"}),

		HotspotUpgrades: promauto.NewCounter(prometheus.CounterOpts{
			Name: "archivum_hotspot_upgrades_total",
			Help: "Total retention resolutions upgraded to permanent by a hotspot",
		}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "archivum_assessment_cache_hits_total",
			Help: "Total assessment cache hits",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "archivum_assessment_cache_misses_total",
			Help: "Total assessment cache misses",
		}),

		ClassifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "archivum_classify_duration_seconds",
			Help:    "Duration of full record classification including persistence",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementOutcome records a classification outcome.
func (m *Metrics) IncrementOutcome(value, era string) {
	if m != nil {
		m.ClassificationOutcome.WithLabelValues(value, era).Inc()
	}
}

// IncrementIssue records a surfaced compliance issue.
func (m *Metrics) IncrementIssue(framework, severity string) {
	if m != nil {
		m.ComplianceIssues.WithLabelValues(framework, severity).Inc()
	}
}

// IncrementHotspotUpgrade records a hotspot-forced permanent retention.
func (m *Metrics) IncrementHotspotUpgrade() {
	if m != nil {
		m.HotspotUpgrades.Inc()
	}
}

// RecordCacheHit records an assessment cache hit.
func (m *Metrics) RecordCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// RecordCacheMiss records an assessment cache miss.
func (m *Metrics) RecordCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

// ObserveClassifyLatency records the total classification duration.
func (m *Metrics) ObserveClassifyLatency(d time.Duration) {
	if m != nil {
		m.ClassifyLatency.Observe(d.Seconds())
	}
}
