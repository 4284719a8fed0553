package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	err := Validate(cfg)
	if err != nil {
		t.Errorf("Expected valid config to pass validation, got error: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "INVALID"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log level")
	}
	if !strings.Contains(err.Error(), "oneof") {
		t.Errorf("Expected 'oneof' validation error, got: %v", err)
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log format")
	}
}

func TestValidate_MissingBucket(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Blob.Bucket = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for missing bucket")
	}
	if !strings.Contains(err.Error(), "Bucket") {
		t.Errorf("Expected bucket field in error, got: %v", err)
	}
}

func TestValidate_ZeroShutdownTimeout(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.ShutdownTimeout = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for zero shutdown timeout")
	}
}

func TestValidate_InvalidMetricsPort(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = 70000

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for out-of-range metrics port")
	}
}

func TestValidate_PostgresMissingHost(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Database.Type = "postgres"
	cfg.Database.Postgres.Database = "seqvault"
	cfg.Database.Postgres.User = "registry"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for postgres without host")
	}
	if !strings.Contains(err.Error(), "host") {
		t.Errorf("Expected host error, got: %v", err)
	}
}
