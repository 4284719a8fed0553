package config

import (
	"testing"
)

func TestMetricsCollectorsFollowEnabledFlag(t *testing.T) {
	disabled := GetDefaultConfig()
	if m := blobMetrics(disabled); m != nil {
		t.Errorf("expected nil blob metrics when disabled, got %T", m)
	}
	if m := cacheMetrics(disabled); m != nil {
		t.Errorf("expected nil cache metrics when disabled, got %T", m)
	}

	enabled := GetDefaultConfig()
	enabled.Metrics.Enabled = true

	blob := blobMetrics(enabled)
	if blob == nil {
		t.Fatal("expected a blob collector when metrics are enabled")
	}
	if again := blobMetrics(enabled); again != blob {
		t.Error("expected the process-wide blob collector to be reused")
	}

	cache := cacheMetrics(enabled)
	if cache == nil {
		t.Fatal("expected a cache collector when metrics are enabled")
	}
	if again := cacheMetrics(enabled); again != cache {
		t.Error("expected the process-wide cache collector to be reused")
	}
}
