package config

import (
	"testing"
	"time"

	"github.com/seqvault/seqvault/pkg/registry/store"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected level INFO, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected format text, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected output stdout, got %q", cfg.Logging.Output)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Database.Type != store.DatabaseTypeSQLite {
		t.Errorf("Expected database type sqlite, got %q", cfg.Database.Type)
	}
	if cfg.Database.SQLite.Path == "" {
		t.Error("Expected sqlite path default to be applied")
	}
	if cfg.Blob.Region != "us-east-1" {
		t.Errorf("Expected region us-east-1, got %q", cfg.Blob.Region)
	}
	if cfg.Blob.PresignTTL != 15*time.Minute {
		t.Errorf("Expected presign ttl 15m, got %v", cfg.Blob.PresignTTL)
	}
	if cfg.Cache.MemoryEntries != 256 {
		t.Errorf("Expected memory entries 256, got %d", cfg.Cache.MemoryEntries)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Expected cache ttl 1h, got %v", cfg.Cache.TTL)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Logging:         LoggingConfig{Level: "debug", Format: "json", Output: "stderr"},
		ShutdownTimeout: 5 * time.Second,
		Blob:            BlobConfig{Region: "eu-west-1", PresignTTL: time.Hour},
		Cache:           CacheConfig{MemoryEntries: 16, TTL: time.Minute},
	}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected normalized DEBUG, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json preserved, got %q", cfg.Logging.Format)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected 5s preserved, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Blob.Region != "eu-west-1" {
		t.Errorf("Expected eu-west-1 preserved, got %q", cfg.Blob.Region)
	}
	if cfg.Blob.PresignTTL != time.Hour {
		t.Errorf("Expected 1h preserved, got %v", cfg.Blob.PresignTTL)
	}
	if cfg.Cache.MemoryEntries != 16 {
		t.Errorf("Expected 16 preserved, got %d", cfg.Cache.MemoryEntries)
	}
	if cfg.Cache.TTL != time.Minute {
		t.Errorf("Expected 1m preserved, got %v", cfg.Cache.TTL)
	}
}

func TestApplyDefaults_MetricsPortOnlyWhenEnabled(t *testing.T) {
	disabled := &Config{}
	ApplyDefaults(disabled)
	if disabled.Metrics.Port != 0 {
		t.Errorf("Expected no metrics port while disabled, got %d", disabled.Metrics.Port)
	}

	enabled := &Config{Metrics: MetricsConfig{Enabled: true}}
	ApplyDefaults(enabled)
	if enabled.Metrics.Port != 9090 {
		t.Errorf("Expected metrics port 9090 when enabled, got %d", enabled.Metrics.Port)
	}
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	cfg := GetDefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Errorf("Expected default config to validate, got: %v", err)
	}
}
