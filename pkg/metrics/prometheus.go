// Package metrics provides Prometheus metrics for the group allocation service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Allocation
	allocations      prometheus.Counter
	allocationErrors *prometheus.CounterVec
	groupSize        prometheus.Histogram
	unsortedRuns     prometheus.Counter
	shuffleRedraws   prometheus.Counter
	shuffleForced    prometheus.Counter

	// Validation
	validations *prometheus.CounterVec

	// Roster store
	drawsSaved     prometheus.Counter
	drawsDuplicate prometheus.Counter
	rosters        prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec
}

//nolint:gochecknoglobals // served on /metrics
var (
	customRegistry = prometheus.NewRegistry()
	globalManager  = NewManager(WithPrometheusRegistry(customRegistry))
)

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "groupe",
		subsystem:        "allocator",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.constLabels)

	m.allocations = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "allocations_total",
		Help:        "Total number of successful allocations",
		ConstLabels: labels,
	})

	m.allocationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "allocation_errors_total",
		Help:        "Allocations rejected by a precondition, by kind",
		ConstLabels: labels,
	}, []string{"kind"})

	m.groupSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "group_size",
		Help:        "Number of people per allocated group",
		Buckets:     []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		ConstLabels: labels,
	})

	m.unsortedRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "unsorted_allocations_total",
		Help:        "Allocations run without any mixing criterion",
		ConstLabels: labels,
	})

	m.shuffleRedraws = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "shuffle_redraws_total",
		Help:        "Swap candidates rejected for recreating a past pair",
		ConstLabels: labels,
	})

	m.shuffleForced = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "shuffle_forced_swaps_total",
		Help:        "Swaps made after every candidate conflicted",
		ConstLabels: labels,
	})

	m.validations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "validations_total",
		Help:        "Mix validations by verdict",
		ConstLabels: labels,
	}, []string{"verdict"})

	m.drawsSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "draws_saved_total",
		Help:        "Draws persisted to roster history",
		ConstLabels: labels,
	})

	m.drawsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "draws_duplicate_total",
		Help:        "Draw saves rejected for a repeated idempotency key",
		ConstLabels: labels,
	})

	m.rosters = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rosters",
		Help:        "Rosters currently held by the store",
		ConstLabels: labels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_errors_total",
		Help:        "HTTP responses with status >= 400 by endpoint and error type",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "error_type"})
}

// RecordAllocation records one successful allocation.
func (m *Manager) RecordAllocation(groupSizes []int, sorted bool, redraws, forced int) {
	if !m.enabled {
		return
	}
	m.allocations.Inc()
	for _, s := range groupSizes {
		m.groupSize.Observe(float64(s))
	}
	if !sorted {
		m.unsortedRuns.Inc()
	}
	m.shuffleRedraws.Add(float64(redraws))
	m.shuffleForced.Add(float64(forced))
}

// RecordAllocationError records a rejected allocation of the given kind.
func (m *Manager) RecordAllocationError(kind string) {
	if m.enabled {
		m.allocationErrors.WithLabelValues(kind).Inc()
	}
}

// RecordValidation records a mix validation verdict.
func (m *Manager) RecordValidation(balanced bool) {
	if m.enabled {
		m.validations.WithLabelValues(strconv.FormatBool(balanced)).Inc()
	}
}

// RecordDrawSaved records a persisted draw.
func (m *Manager) RecordDrawSaved() {
	if m.enabled {
		m.drawsSaved.Inc()
	}
}

// RecordDrawDuplicate records a draw save rejected as a replay.
func (m *Manager) RecordDrawDuplicate() {
	if m.enabled {
		m.drawsDuplicate.Inc()
	}
}

// UpdateRosterCount sets the number of stored rosters.
func (m *Manager) UpdateRosterCount(n int) {
	if m.enabled {
		m.rosters.Set(float64(n))
	}
}

// RecordHTTPRequest records one request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records a failed request by error type.
func (m *Manager) RecordHTTPError(endpoint, method, errorType string) {
	if m.enabled {
		m.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// Default returns the process-wide manager registered on GetRegistry.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the registry served on /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
