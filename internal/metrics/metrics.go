package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Clubhouse
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Business Metrics
	MembershipTransitionsTotal prometheus.CounterVec
	JoinDenialsTotal           prometheus.CounterVec
	MembersActive              prometheus.Gauge
	ApplicantsPending          prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhouse_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clubhouse_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "clubhouse_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Business Metrics
		MembershipTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhouse_membership_transitions_total",
				Help: "Membership lifecycle operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		JoinDenialsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clubhouse_join_denials_total",
				Help: "Denied join requests by reason",
			},
			[]string{"reason"},
		),
		MembersActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "clubhouse_members_active",
				Help: "Current number of members holding MEMBER or MANAGER roles",
			},
		),
		ApplicantsPending: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "clubhouse_applicants_pending",
				Help: "Current number of members awaiting approval",
			},
		),
	}
}
