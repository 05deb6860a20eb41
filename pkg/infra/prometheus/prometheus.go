package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Generation on small models is slow, so buckets run to a minute.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000, 60000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_requests_total",
			Help: "Total number of requests processed",
		},
		[]string{"server", "method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustguard_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"server", "route"},
	)

	LabelsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_labels_total",
			Help: "Moderation labels returned by family",
		},
		[]string{"label", "family"},
	)

	GenerationFailures = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_generation_failures_total",
			Help: "Model generation calls that returned an error",
		},
		[]string{"provider"},
	)

	BoardModeration = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustguard_board_moderation_total",
			Help: "Board moderation outcomes (flagged, okay, error, disabled)",
		},
		[]string{"outcome"},
	)

	WebsocketClients = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "trustguard_websocket_clients",
			Help: "Connected moderation feed clients",
		},
	)
)

type MetricsConfig struct {
	EnableLatency bool
	EnableLabels  bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
		EnableLabels:  true,
	}
}

var (
	Config   = DefaultMetricsConfig()
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
