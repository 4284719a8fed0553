// Package prometheus implements the metrics collector interfaces on top of
// prometheus/client_golang.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BlobCollector records object storage gateway metrics.
type BlobCollector struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	transfer   *prometheus.CounterVec
}

// NewBlobCollector creates and registers a blob gateway collector.
func NewBlobCollector(reg prometheus.Registerer) *BlobCollector {
	c := &BlobCollector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqvault",
			Subsystem: "blob",
			Name:      "operations_total",
			Help:      "Object storage operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "seqvault",
			Subsystem: "blob",
			Name:      "operation_duration_seconds",
			Help:      "Object storage operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		transfer: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqvault",
			Subsystem: "blob",
			Name:      "transfer_bytes_total",
			Help:      "Bytes transferred to and from the object storage backend.",
		}, []string{"direction"}),
	}
	reg.MustRegister(c.operations, c.duration, c.transfer)
	return c
}

// ObserveOperation implements metrics.BlobMetrics.
func (c *BlobCollector) ObserveOperation(op string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.operations.WithLabelValues(op, outcome).Inc()
	c.duration.WithLabelValues(op).Observe(duration.Seconds())
}

// ObserveTransfer implements metrics.BlobMetrics.
func (c *BlobCollector) ObserveTransfer(direction string, bytes int) {
	c.transfer.WithLabelValues(direction).Add(float64(bytes))
}

// CacheCollector records client cache metrics per tier.
type CacheCollector struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
}

// NewCacheCollector creates and registers a client cache collector.
func NewCacheCollector(reg prometheus.Registerer) *CacheCollector {
	c := &CacheCollector{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqvault",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache hits by tier.",
		}, []string{"tier"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqvault",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache misses by tier.",
		}, []string{"tier"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqvault",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Cache evictions by tier.",
		}, []string{"tier"}),
	}
	reg.MustRegister(c.hits, c.misses, c.evictions)
	return c
}

// Hit implements metrics.CacheMetrics.
func (c *CacheCollector) Hit(tier string) { c.hits.WithLabelValues(tier).Inc() }

// Miss implements metrics.CacheMetrics.
func (c *CacheCollector) Miss(tier string) { c.misses.WithLabelValues(tier).Inc() }

// Eviction implements metrics.CacheMetrics.
func (c *CacheCollector) Eviction(tier string) { c.evictions.WithLabelValues(tier).Inc() }
