package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/seqvault/seqvault/pkg/registry/store"
)

// Config represents the SeqVault configuration.
//
// This structure captures the static configuration of the storage and
// caching layer:
//   - Logging configuration
//   - Registry database connection (SQLite or PostgreSQL)
//   - Blob storage backend (S3 or any S3-compatible service)
//   - Client cache (memory capacity, disk directory, TTL)
//   - Metrics server settings
//   - Remote API endpoint for the CLI's cached read path
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (SEQVAULT_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0" yaml:"shutdown_timeout"`

	// Database configures the registry database (SQLite or PostgreSQL).
	// This is the persistent store for organizations, entries, and versions.
	Database store.Config `mapstructure:"database" yaml:"database"`

	// Blob configures the object storage backend holding version payloads.
	Blob BlobConfig `mapstructure:"blob" yaml:"blob"`

	// Cache configures the client-side two-tier read cache.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	// Metrics contains Prometheus metrics server configuration
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`

	// API configures the remote SeqVault endpoint used by the CLI.
	API APIConfig `mapstructure:"api" yaml:"api"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// BlobConfig configures the S3-compatible object storage backend.
type BlobConfig struct {
	// Endpoint overrides the AWS endpoint for S3-compatible services
	// (MinIO, Ceph RGW, localstack). Empty uses AWS.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`

	// Region is the bucket region
	// Default: us-east-1
	Region string `mapstructure:"region" validate:"required" yaml:"region"`

	// Bucket is the bucket holding all version payloads (required)
	Bucket string `mapstructure:"bucket" validate:"required" yaml:"bucket"`

	// AccessKeyID and SecretAccessKey are static credentials. When both
	// are empty the AWS default credential chain is used.
	// Override: SEQVAULT_BLOB_ACCESS_KEY_ID, SEQVAULT_BLOB_SECRET_ACCESS_KEY
	AccessKeyID     string `mapstructure:"access_key_id" yaml:"access_key_id,omitempty"`
	SecretAccessKey string `mapstructure:"secret_access_key" yaml:"secret_access_key,omitempty"`

	// ForcePathStyle selects path-style addressing instead of
	// virtual-hosted-style. Required by most S3-compatible services.
	ForcePathStyle bool `mapstructure:"force_path_style" yaml:"force_path_style"`

	// KeyPrefix is an optional prefix applied to every object key.
	KeyPrefix string `mapstructure:"key_prefix" yaml:"key_prefix,omitempty"`

	// PresignTTL is the default validity window for presigned download URLs.
	// Default: 15m
	PresignTTL time.Duration `mapstructure:"presign_ttl" validate:"omitempty,gt=0" yaml:"presign_ttl"`
}

// CacheConfig configures the client-side two-tier read cache.
type CacheConfig struct {
	// Dir is the disk tier's root directory.
	// Default: $XDG_CACHE_HOME/seqvault
	Dir string `mapstructure:"dir" yaml:"dir,omitempty"`

	// MemoryEntries is the memory tier's capacity in entries.
	// Default: 256
	MemoryEntries int `mapstructure:"memory_entries" validate:"omitempty,min=1" yaml:"memory_entries"`

	// TTL bounds the age of disk records. Zero disables the disk tier.
	// Default: 1h
	TTL time.Duration `mapstructure:"ttl" yaml:"ttl"`

	// SweepInterval enables a background sweep of expired disk records
	// when positive. Default: 0 (lazy eviction only)
	SweepInterval time.Duration `mapstructure:"sweep_interval" yaml:"sweep_interval,omitempty"`
}

// MetricsConfig configures the Prometheus metrics HTTP server.
// When Enabled is false, no metrics are collected (zero overhead).
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP server are enabled
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Port is the HTTP port for the metrics endpoint
	// Default: 9090
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`
}

// APIConfig configures the remote SeqVault endpoint used by the CLI.
type APIConfig struct {
	// BaseURL is the SeqVault API base URL, e.g. https://seqvault.example.com
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty"`

	// Token is the bearer token for authenticated requests.
	// Override: SEQVAULT_API_TOKEN
	Token string `mapstructure:"token" yaml:"token,omitempty"`
}

// Load loads configuration from file, environment, and defaults.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (SEQVAULT_*)
//  2. Configuration file
//  3. Default values
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	configFileFound, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	// If no config file was found, use defaults
	if !configFileFound {
		cfg := GetDefaultConfig()
		return cfg, nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration with helpful error messages.
// It checks if the config file exists and provides user-friendly
// instructions if not.
func MustLoad(configPath string) (*Config, error) {
	if configPath == "" {
		if !DefaultConfigExists() {
			return nil, fmt.Errorf("no configuration file found at default location: %s\n\n"+
				"Please initialize a configuration file first:\n"+
				"  seqvault init\n\n"+
				"Or specify a custom config file:\n"+
				"  seqvault <command> --config /path/to/config.yaml",
				GetDefaultConfigPath())
		}
		configPath = GetDefaultConfigPath()
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s\n\n"+
				"Please create the configuration file:\n"+
				"  seqvault init --config %s",
				configPath, configPath)
		}
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to the specified file path.
// The configuration is saved in YAML format using proper yaml tags.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Restricted permissions: the file may hold credentials.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setupViper configures viper with environment variables and config file settings.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the SEQVAULT_ prefix and underscores.
	// Example: SEQVAULT_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("SEQVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default location: $XDG_CONFIG_HOME/seqvault/config.yaml
		configDir := getConfigDir()
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
// Returns (fileFound, error) where fileFound indicates if a config file was found.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	return true, nil
}

// configDecodeHooks returns a combined decode hook for all custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		durationDecodeHook(),
	)
}

// durationDecodeHook returns a mapstructure decode hook that converts strings
// to time.Duration. This enables config files to use human-readable durations
// like "30s", "5m", "1h".
func durationDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return time.ParseDuration(v)
		case int:
			// Assume nanoseconds for raw integers
			return time.Duration(v), nil
		case int64:
			return time.Duration(v), nil
		case float64:
			// YAML often deserializes numbers as float64
			return time.Duration(v), nil
		default:
			return data, nil
		}
	}
}

// getConfigDir returns the configuration directory path.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, or falls back to current
// directory (.) if home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "seqvault")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "seqvault")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks if a config file exists at the default location.
func DefaultConfigExists() bool {
	path := GetDefaultConfigPath()
	_, err := os.Stat(path)
	return err == nil
}

// GetConfigDir returns the configuration directory path (exposed for init command).
func GetConfigDir() string {
	return getConfigDir()
}
