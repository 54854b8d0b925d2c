// Package config loads the settings of the najia binaries: defaults, then an
// optional YAML or JSON file, then NAJIA_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "najia.yaml"

// Store kinds.
const (
	StoreNone   = "none"
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the full settings tree.
type Config struct {
	LogLevel string      `yaml:"log_level" json:"log_level" env:"NAJIA_LOG_LEVEL"`
	Seed     *int64      `yaml:"seed,omitempty" json:"seed,omitempty" env:"NAJIA_SEED"`
	Store    StoreConfig `yaml:"store" json:"store"`
	HTTP     HTTPConfig  `yaml:"http" json:"http"`
	MCP      MCPConfig   `yaml:"mcp" json:"mcp"`
}

// StoreConfig selects and configures the reading journal.
type StoreConfig struct {
	Kind    string        `yaml:"kind" json:"kind" env:"NAJIA_STORE"`
	Redis   RedisConfig   `yaml:"redis" json:"redis"`
	SQLite  SQLiteConfig  `yaml:"sqlite" json:"sqlite"`
	Privacy PrivacyConfig `yaml:"privacy" json:"privacy"`
}

// PrivacyConfig controls what of a query reaches the journal. Keys are
// base64-encoded 32-byte AES keys.
type PrivacyConfig struct {
	EncryptionKey  string   `yaml:"encryption_key" json:"encryption_key" env:"NAJIA_STORE_KEY"`
	FallbackKeys   []string `yaml:"fallback_keys" json:"fallback_keys" env:"NAJIA_STORE_FALLBACK_KEYS" envSeparator:","`
	Redact         bool     `yaml:"redact" json:"redact" env:"NAJIA_STORE_REDACT"`
	RedactPatterns []string `yaml:"redact_patterns" json:"redact_patterns" env:"NAJIA_STORE_REDACT_PATTERNS" envSeparator:";"`
}

type RedisConfig struct {
	Addr   string        `yaml:"addr" json:"addr" env:"NAJIA_REDIS_ADDR"`
	TTL    time.Duration `yaml:"ttl" json:"ttl" env:"NAJIA_REDIS_TTL"`
	Prefix string        `yaml:"prefix" json:"prefix" env:"NAJIA_REDIS_PREFIX"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" json:"path" env:"NAJIA_SQLITE_PATH"`
}

// HTTPConfig configures the API server. An empty MetricsAddr serves
// /metrics on the API listener itself.
type HTTPConfig struct {
	Addr        string `yaml:"addr" json:"addr" env:"NAJIA_HTTP_ADDR"`
	Metrics     bool   `yaml:"metrics" json:"metrics" env:"NAJIA_METRICS"`
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr" env:"NAJIA_METRICS_ADDR"`
}

// MCPConfig configures the MCP server. Port 0 means stdio.
type MCPConfig struct {
	Port int `yaml:"port" json:"port" env:"NAJIA_MCP_PORT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Store: StoreConfig{
			Kind: StoreMemory,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "najia:reading:",
			},
			SQLite: SQLiteConfig{
				Path: filepath.Join(".najia", "readings.db"),
			},
		},
		HTTP: HTTPConfig{
			Addr:    ":8080",
			Metrics: true,
		},
	}
}

// Load builds the configuration from defaults, the file at path and the
// environment. A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := mergeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings no component can act on.
func (c Config) Validate() error {
	switch c.Store.Kind {
	case StoreNone, StoreMemory:
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store %q needs redis.addr", c.Store.Kind)
		}
		if c.Store.Redis.TTL < 0 {
			return fmt.Errorf("redis.ttl must not be negative")
		}
	case StoreSQLite:
		if c.Store.SQLite.Path == "" {
			return fmt.Errorf("store %q needs sqlite.path", c.Store.Kind)
		}
	default:
		return fmt.Errorf("unknown store kind %q", c.Store.Kind)
	}
	if c.MCP.Port < 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("mcp.port %d out of range", c.MCP.Port)
	}
	return nil
}
