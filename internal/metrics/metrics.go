// Package metrics provides Prometheus metrics and a health snapshot for the aggregator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ainews"

var (
	// ItemsCollected counts items returned by each source.
	ItemsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_collected_total",
			Help:      "Items returned by source adapters",
		},
		[]string{"source"},
	)

	// SourceErrors counts failed source fetches.
	SourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Failed source fetches",
		},
		[]string{"source"},
	)

	// ItemsDropped counts items removed by the pipeline, by stage.
	ItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_dropped_total",
			Help:      "Items removed during processing",
		},
		[]string{"stage"},
	)

	// DigestItems is the size of the last produced digest.
	DigestItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "digest_items",
			Help:      "Items in the last digest",
		},
	)

	// Deliveries counts outgoing notifications by kind and status.
	Deliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Notification deliveries",
		},
		[]string{"kind", "status"},
	)

	// RunDuration measures whole aggregation runs.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Duration of aggregation runs in seconds",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
)
