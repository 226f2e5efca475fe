package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the outcome dimension of the operations counter.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// metrics holds the Prometheus instruments of the API layer. Each
// server owns a private registry so independent instances never collide
// on registration.
type metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	treeNodes  prometheus.Gauge
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	return &metrics{
		registry: registry,
		operations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "treedb_operations_total",
			Help: "Store operations served over HTTP, by operation and outcome.",
		}, []string{"op", "outcome"}),
		treeNodes: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "treedb_tree_nodes",
			Help: "Number of nodes currently held in the tree.",
		}),
	}
}
