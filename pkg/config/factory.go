package config

import (
	"context"
	"fmt"
	"sync"

	promclient "github.com/prometheus/client_golang/prometheus"

	"github.com/seqvault/seqvault/pkg/apiclient"
	"github.com/seqvault/seqvault/pkg/blob/s3"
	"github.com/seqvault/seqvault/pkg/clientcache"
	"github.com/seqvault/seqvault/pkg/metrics"
	seqprom "github.com/seqvault/seqvault/pkg/metrics/prometheus"
	"github.com/seqvault/seqvault/pkg/registry/store"
)

// Collectors register against the default prometheus registry, which
// tolerates only one registration per metric, so each is created at most
// once per process.
var (
	blobCollectorOnce  sync.Once
	blobCollector      *seqprom.BlobCollector
	cacheCollectorOnce sync.Once
	cacheCollector     *seqprom.CacheCollector
)

// blobMetrics returns the process-wide blob collector, or nil when metrics
// are disabled.
func blobMetrics(cfg *Config) metrics.BlobMetrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	blobCollectorOnce.Do(func() {
		blobCollector = seqprom.NewBlobCollector(promclient.DefaultRegisterer)
	})
	return blobCollector
}

// cacheMetrics returns the process-wide cache collector, or nil when
// metrics are disabled.
func cacheMetrics(cfg *Config) metrics.CacheMetrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	cacheCollectorOnce.Do(func() {
		cacheCollector = seqprom.NewCacheCollector(promclient.DefaultRegisterer)
	})
	return cacheCollector
}

// NewRegistryStore creates the registry database store from configuration.
func NewRegistryStore(cfg *Config) (*store.GORMStore, error) {
	return store.New(&cfg.Database)
}

// NewBlobStore creates the S3 blob store from configuration and verifies
// bucket access. A nil m falls back to the prometheus collector when
// metrics are enabled.
func NewBlobStore(ctx context.Context, cfg *Config, m metrics.BlobMetrics) (*s3.Store, error) {
	if m == nil {
		m = blobMetrics(cfg)
	}
	return s3.New(ctx, s3.Config{
		Endpoint:        cfg.Blob.Endpoint,
		Region:          cfg.Blob.Region,
		Bucket:          cfg.Blob.Bucket,
		AccessKeyID:     cfg.Blob.AccessKeyID,
		SecretAccessKey: cfg.Blob.SecretAccessKey,
		ForcePathStyle:  cfg.Blob.ForcePathStyle,
		KeyPrefix:       cfg.Blob.KeyPrefix,
		Metrics:         m,
	})
}

// NewAPIClient creates the REST API client from configuration.
func NewAPIClient(cfg *Config) (*apiclient.Client, error) {
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api base_url is required (set api.base_url or SEQVAULT_API_BASE_URL)")
	}
	client := apiclient.New(cfg.API.BaseURL)
	if cfg.API.Token != "" {
		client.SetToken(cfg.API.Token)
	}
	return client, nil
}

// NewClientCache creates the two-tier client cache from configuration,
// backed by the remote API as its fetch source. A nil m falls back to the
// prometheus collector when metrics are enabled.
func NewClientCache(cfg *Config, m metrics.CacheMetrics) (*clientcache.Cache, error) {
	client, err := NewAPIClient(cfg)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = cacheMetrics(cfg)
	}
	return clientcache.New(clientcache.Config{
		MemoryEntries: cfg.Cache.MemoryEntries,
		Dir:           cfg.Cache.Dir,
		TTL:           cfg.Cache.TTL,
		SweepInterval: cfg.Cache.SweepInterval,
		Metrics:       m,
	}, client.CacheFetch)
}
