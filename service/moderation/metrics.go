package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for the moderation workflow
type Metrics struct {
	actions          *prometheus.CounterVec
	refreshDuration  *prometheus.HistogramVec
	droppedRefreshes prometheus.Counter
}

// NewMetrics creates unregistered collectors
func NewMetrics() *Metrics {
	return &Metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crowdfund",
			Subsystem: "moderation",
			Name:      "actions_total",
			Help:      "Number of mutating contract calls by action and outcome",
		}, []string{"action", "outcome"}),

		refreshDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crowdfund",
			Subsystem: "moderation",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of full campaign refreshes",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),

		droppedRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crowdfund",
			Subsystem: "moderation",
			Name:      "dropped_refreshes_total",
			Help:      "Number of refresh requests dropped because one was in flight",
		}),
	}
}

// Register ...
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.actions, m.refreshDuration, m.droppedRefreshes} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
