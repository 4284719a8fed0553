// Package clientcache is the client-side two-tier read cache: a strict-LRU
// memory tier in front of a TTL-expired, schema-versioned disk tier. It
// owns no source-of-truth data — every cached value must be re-derivable
// from the backends, so corruption anywhere is a miss, never an error.
package clientcache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/seqvault/seqvault/internal/logger"
	"github.com/seqvault/seqvault/pkg/metrics"
)

// FetchFunc loads a value from the source of truth on a full cache miss.
type FetchFunc func(ctx context.Context, req Request) ([]byte, error)

// Config configures a Cache.
type Config struct {
	// MemoryEntries is the memory tier's capacity in entries.
	// Default: 256.
	MemoryEntries int

	// Dir is the disk tier's root directory.
	// Default: $XDG_CACHE_HOME/seqvault (or ~/.cache/seqvault).
	Dir string

	// TTL bounds the age of disk records. Zero disables the disk tier
	// only; the memory tier has an independent lifetime.
	TTL time.Duration

	// SweepInterval enables a background sweep of expired disk records
	// when positive. Expired records are always also evicted lazily on
	// lookup, so the sweep is optional housekeeping.
	SweepInterval time.Duration

	// Metrics observes hits, misses, and evictions per tier. Nil disables.
	Metrics metrics.CacheMetrics
}

// ApplyDefaults fills in missing configuration with default values.
func (c *Config) ApplyDefaults() {
	if c.MemoryEntries == 0 {
		c.MemoryEntries = 256
	}
	if c.Dir == "" {
		cacheDir := os.Getenv("XDG_CACHE_HOME")
		if cacheDir == "" {
			homeDir, _ := os.UserHomeDir()
			cacheDir = filepath.Join(homeDir, ".cache")
		}
		c.Dir = filepath.Join(cacheDir, "seqvault")
	}
}

// Cache is the two-tier client cache. Safe for concurrent use; Clear may
// run while lookups are in flight.
type Cache struct {
	mu      sync.Mutex
	memory  *lru.Cache[string, []byte]
	disk    *diskTier
	fetch   FetchFunc
	metrics metrics.CacheMetrics
}

// New creates a cache that fills from fetch on a full miss.
func New(config Config, fetch FetchFunc) (*Cache, error) {
	config.ApplyDefaults()
	if fetch == nil {
		return nil, fmt.Errorf("fetch function is required")
	}

	c := &Cache{
		fetch:   fetch,
		metrics: config.Metrics,
	}

	memory, err := lru.NewWithEvict[string, []byte](config.MemoryEntries,
		func(string, []byte) {
			if c.metrics != nil {
				c.metrics.Eviction("memory")
			}
		})
	if err != nil {
		return nil, fmt.Errorf("failed to create memory tier: %w", err)
	}
	c.memory = memory

	// TTL zero disables the disk tier; the memory tier stays on.
	if config.TTL > 0 {
		disk, err := newDiskTier(config.Dir, config.TTL, config.Metrics)
		if err != nil {
			return nil, err
		}
		c.disk = disk
		if config.SweepInterval > 0 {
			disk.startSweeper(config.SweepInterval)
		}
	}

	return c, nil
}

// Lookup returns the cached value for req, filling both tiers from the
// fetch function on a full miss. A failed fetch populates nothing; the
// next lookup retries from scratch.
func (c *Cache) Lookup(ctx context.Context, req Request) ([]byte, error) {
	key := req.Fingerprint()

	if value, ok := c.memory.Get(key); ok {
		c.observeHit("memory")
		return value, nil
	}
	c.observeMiss("memory")

	if c.disk != nil {
		if value, ok := c.disk.get(key); ok {
			c.observeHit("disk")
			// Promote so the next lookup is served from memory.
			c.memory.Add(key, value)
			return value, nil
		}
		c.observeMiss("disk")
	}

	value, err := c.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	c.memory.Add(key, value)
	if c.disk != nil {
		if err := c.disk.put(key, value); err != nil {
			// The disk tier is best-effort: the value was served and the
			// memory tier holds it.
			logger.Warn("failed to write disk cache record",
				logger.Operation(req.Operation),
				logger.Err(err))
		}
	}
	return value, nil
}

// Clear empties both tiers.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.memory.Purge()
	if c.disk != nil {
		return c.disk.clear()
	}
	return nil
}

// Len returns the number of entries in the memory tier.
func (c *Cache) Len() int {
	return c.memory.Len()
}

// Close stops the background sweeper, if any.
func (c *Cache) Close() {
	if c.disk != nil {
		c.disk.stopSweeper()
	}
}

func (c *Cache) observeHit(tier string) {
	if c.metrics != nil {
		c.metrics.Hit(tier)
	}
}

func (c *Cache) observeMiss(tier string) {
	if c.metrics != nil {
		c.metrics.Miss(tier)
	}
}
