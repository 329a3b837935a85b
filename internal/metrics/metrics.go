package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup sources
const (
	SourceStore   = "store"
	SourceCatalog = "catalog"
)

// Lookup results
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path/method/code.",
		},
		[]string{"path", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "code"},
	)

	pokemonLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokemon_lookups_total",
			Help: "Single pokemon lookups by source and result.",
		},
		[]string{"source", "result"},
	)

	catalogDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokeapi_request_duration_seconds",
			Help:    "Duration of PokeAPI lookups by result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
)

// GinMiddleware records request count and latency per route template
func GinMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "/metrics" {
		return
	}
	// unmatched routes share one label so arbitrary URLs cannot grow the series count
	if path == "" {
		path = "unmatched"
	}

	code := strconv.Itoa(c.Writer.Status())
	method := c.Request.Method

	httpRequests.WithLabelValues(path, method, code).Inc()
	httpDuration.WithLabelValues(path, method, code).Observe(time.Since(start).Seconds())
}

// Handler exposes the default registry in the Prometheus text format
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// ObserveLookup counts one pokemon lookup against source with the given result
func ObserveLookup(source, result string) {
	pokemonLookups.WithLabelValues(source, result).Inc()
}

// ObserveCatalogRequest records the duration of one PokeAPI call
func ObserveCatalogRequest(result string, start time.Time) {
	catalogDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		pokemonLookups,
		catalogDuration,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
