package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Redirects         *prometheus.CounterVec
	SelectionDuration prometheus.Histogram
	SelectionRetries  prometheus.Counter
	ClicksQueued      prometheus.Counter
	ClicksDropped     prometheus.Counter
	ClicksWritten     *prometheus.CounterVec
	ClickWriteErrors  *prometheus.CounterVec
	ClickQueueDepth   prometheus.Gauge
}

// NewMetrics registers the collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so registrations never collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Redirects: f.NewCounterVec(prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Redirect requests partitioned by outcome",
		}, []string{"outcome"}),
		SelectionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rotation_select_duration_seconds",
			Help:    "Latency of the atomic select-and-touch of the next number",
			Buckets: prometheus.DefBuckets,
		}),
		SelectionRetries: f.NewCounter(prometheus.CounterOpts{
			Name: "rotation_select_retries_total",
			Help: "Selections retried after a lock conflict",
		}),
		ClicksQueued: f.NewCounter(prometheus.CounterOpts{
			Name: "clicks_queued_total",
			Help: "Click events accepted by the recorder queue",
		}),
		ClicksDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "clicks_dropped_total",
			Help: "Click events dropped because the recorder queue was full or closed",
		}),
		ClicksWritten: f.NewCounterVec(prometheus.CounterOpts{
			Name: "clicks_written_total",
			Help: "Click events persisted, per sink",
		}, []string{"sink"}),
		ClickWriteErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "click_write_errors_total",
			Help: "Failed click batch writes, per sink",
		}, []string{"sink"}),
		ClickQueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "click_queue_depth",
			Help: "Click events waiting in the recorder queue",
		}),
	}
}
