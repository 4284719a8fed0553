// Package metrics defines the collector interfaces observed by the storage
// and caching layers. Implementations live in subpackages; a nil collector
// disables observation.
package metrics

import "time"

// BlobMetrics observes object storage gateway operations.
type BlobMetrics interface {
	// ObserveOperation records one gateway call with its duration and
	// outcome. op is the operation name (Put, Get, Head, ...).
	ObserveOperation(op string, duration time.Duration, err error)

	// ObserveTransfer records bytes moved to or from the backend.
	// direction is "upload" or "download".
	ObserveTransfer(direction string, bytes int)
}

// CacheMetrics observes client cache behaviour per tier ("memory", "disk").
type CacheMetrics interface {
	Hit(tier string)
	Miss(tier string)
	Eviction(tier string)
}
