package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MarketMetrics records engine and broadcast activity.
// A nil *MarketMetrics is valid and records nothing.
type MarketMetrics struct {
	bids       *prometheus.CounterVec
	closes     *prometheus.CounterVec
	published  *prometheus.CounterVec
	received   *prometheus.CounterVec
	broadcastF prometheus.Counter
}

// NewMarketMetrics registers the marketplace metrics on the provided registerer.
func NewMarketMetrics(reg prometheus.Registerer) *MarketMetrics {
	if reg == nil {
		return nil
	}
	bids := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_bids_total",
		Help: "Bid attempts by outcome.",
	}, []string{"outcome"})
	closes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_listings_closed_total",
		Help: "Listings leaving ACTIVE, by reason.",
	}, []string{"reason"})
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_events_published_total",
		Help: "Locally originated events by type.",
	}, []string{"type"})
	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_events_received_total",
		Help: "Events received from other sessions by type.",
	}, []string{"type"})
	broadcastFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "market_broadcast_failures_total",
		Help: "Events that could not be forwarded to the shared channel.",
	})
	reg.MustRegister(bids, closes, published, received, broadcastFailures)
	return &MarketMetrics{
		bids:       bids,
		closes:     closes,
		published:  published,
		received:   received,
		broadcastF: broadcastFailures,
	}
}

// IncBid counts a bid attempt. outcome is "accepted", "capped" or the rejection reason.
func (m *MarketMetrics) IncBid(outcome string) {
	if m == nil {
		return
	}
	m.bids.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncClosed counts a listing leaving ACTIVE
func (m *MarketMetrics) IncClosed(reason string) {
	if m == nil {
		return
	}
	m.closes.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (m *MarketMetrics) IncPublished(eventType string) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(normalizeLabel(eventType)).Inc()
}

func (m *MarketMetrics) IncReceived(eventType string) {
	if m == nil {
		return
	}
	m.received.WithLabelValues(normalizeLabel(eventType)).Inc()
}

func (m *MarketMetrics) IncBroadcastFailure() {
	if m == nil {
		return
	}
	m.broadcastF.Inc()
}

// JobMetrics records metadata for scheduled jobs.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewJobMetrics registers the scheduler metrics on the provided registerer.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "market_job_duration_seconds",
		Help:    "Duration of scheduled jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_job_success",
		Help: "Successful scheduled job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_job_failure",
		Help: "Failed scheduled job executions.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure)
	return &JobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named job.
func (j *JobMetrics) ObserveDuration(job string, duration time.Duration) {
	if j == nil || j.duration == nil {
		return
	}
	j.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (j *JobMetrics) IncSuccess(job string) {
	if j == nil || j.success == nil {
		return
	}
	j.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (j *JobMetrics) IncFailure(job string) {
	if j == nil || j.failure == nil {
		return
	}
	j.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "unknown"
	}
	return value
}
