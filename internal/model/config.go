package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// DefaultBaseURL is the production scoring backend used when no
// configuration overrides it.
const DefaultBaseURL = "https://api.sellerpulse.app"

// Config holds all runtime configuration. Values are resolved by viper
// from flags, SELLERPULSE_* environment variables, and
// ~/.sellerpulse/config.yaml, in that order.
type Config struct {
	API          APIConfig          `yaml:"api" mapstructure:"api"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	Session      SessionConfig      `yaml:"session" mapstructure:"session"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// APIConfig configures the gateway client
type APIConfig struct {
	BaseURL      string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
}

// CacheConfig configures the in-memory response cache for idempotent GETs
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// RateLimitingConfig bounds outgoing request rates per host
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// SessionConfig locates the persisted session blob
type SessionConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig configures the debug log file
type LoggingConfig struct {
	Debug bool   `yaml:"debug" mapstructure:"debug"`
	Dir   string `yaml:"dir" mapstructure:"dir"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Format  string `yaml:"format" mapstructure:"format"` // text, json, md
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".sellerpulse")

	return &Config{
		API: APIConfig{
			BaseURL:      DefaultBaseURL,
			Timeout:      10 * time.Second,
			UserAgent:    "SellerPulse-CLI/0.3 (+https://github.com/sellerpulse/pulse)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Second,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 5,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Session: SessionConfig{
			Path: filepath.Join(dir, "session.json"),
		},
		Logging: LoggingConfig{
			Dir: filepath.Join(dir, "logs"),
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}
