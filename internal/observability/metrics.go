package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActionLogWrites counts action-log upserts and toggles.
	ActionLogWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gochurch_action_log_writes_total",
		Help: "Total number of action log writes by operation and kind",
	}, []string{"op", "action_type", "target_type"})

	// PostCounterUpdates counts side-effect updates to post counters.
	PostCounterUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gochurch_post_counter_updates_total",
		Help: "Total number of post counter updates by counter and direction",
	}, []string{"counter", "direction"})

	// TasksTotal counts finished background tasks by name and status.
	TasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gochurch_tasks_total",
		Help: "Total number of background tasks by name and terminal status",
	}, []string{"name", "status"})

	// TaskDuration records background task run time.
	TaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gochurch_task_duration_seconds",
		Help:    "Background task duration in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
	}, []string{"name"})

	// DatabaseQueryLatency records repository query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gochurch_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordCounterUpdate increments the post counter metric.
func RecordCounterUpdate(counter string, delta int) {
	direction := "up"
	if delta < 0 {
		direction = "down"
	}
	PostCounterUpdates.WithLabelValues(counter, direction).Inc()
}
