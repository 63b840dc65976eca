package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Global collector instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	// Registry for this collector instance
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	FlowsAdded    prometheus.Counter
	FlowsDeleted  prometheus.Counter
	FlowsRejected prometheus.Counter
	Transforms    prometheus.Counter

	// Collection gauges
	NodeCount prometheus.Gauge
	LinkCount prometheus.Gauge
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Use singleton pattern to avoid duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	flowsAdded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flows_added_total",
			Help:      "Total number of flows added to the collection",
		},
	)

	flowsDeleted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flows_deleted_total",
			Help:      "Total number of flows removed from the collection",
		},
	)

	flowsRejected := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flows_rejected_total",
			Help:      "Total number of flow inputs rejected by validation",
		},
	)

	transforms := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sankey_transforms_total",
			Help:      "Total number of Sankey transformations performed",
		},
	)

	nodeCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sankey_nodes",
			Help:      "Current number of distinct nodes in the collection",
		},
	)

	linkCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sankey_links",
			Help:      "Current number of links in the collection",
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		flowsAdded,
		flowsDeleted,
		flowsRejected,
		transforms,
		nodeCount,
		linkCount,
	)

	globalCollector = &Collector{
		registry:      registry,
		HTTPRequests:  httpRequests,
		HTTPDuration:  httpDuration,
		FlowsAdded:    flowsAdded,
		FlowsDeleted:  flowsDeleted,
		FlowsRejected: flowsRejected,
		Transforms:    transforms,
		NodeCount:     nodeCount,
		LinkCount:     linkCount,
	}

	return globalCollector
}

// Handler returns an HTTP handler exposing the collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// SetCollectionSize updates the node and link gauges
func (c *Collector) SetCollectionSize(nodes, links int) {
	c.NodeCount.Set(float64(nodes))
	c.LinkCount.Set(float64(links))
}
