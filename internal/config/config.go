// Package config loads the seqstats-server configuration from a YAML file
// with SEQSTATS_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "SEQSTATS_"

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Store    StoreConfig    `yaml:"store"`
}

type ServerConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	CORSOrigins       []string      `yaml:"cors_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AnalysisConfig struct {
	DefaultWindow int `yaml:"default_window"`
	SkewWindow    int `yaml:"skew_window"`
	CacheSize     int `yaml:"cache_size"`
	MaxSkewPoints int `yaml:"max_skew_points"`
}

// StoreConfig configures the report archive; an empty Path disables it.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      16 << 20,
			CORSOrigins:       []string{"*"},
		},
		Log:      LogConfig{Level: "info", Format: "json"},
		Analysis: AnalysisConfig{DefaultWindow: 0, SkewWindow: 201, CacheSize: 256, MaxSkewPoints: 2000},
	}
}

// Load reads path (optional: "" means defaults only), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields from SEQSTATS_* variables found through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(k string) (string, bool) {
		v, ok := lookup(EnvPrefix + k)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}
	setInt := func(k string, dst *int) error {
		if v, ok := get(k); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: invalid int %q", EnvPrefix, k, v)
			}
			*dst = n
		}
		return nil
	}

	if v, ok := get("HOST"); ok {
		c.Server.Host = v
	}
	if v, ok := get("CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = splitList(v)
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := get("STORE_PATH"); ok {
		c.Store.Path = v
	}
	if v, ok := get("MAX_BODY_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_BODY_BYTES: invalid int %q", EnvPrefix, v)
		}
		c.Server.MaxBodyBytes = n
	}
	if v, ok := get("READ_HEADER_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREAD_HEADER_TIMEOUT: invalid duration %q (e.g., 250ms, 2s)", EnvPrefix, v)
		}
		c.Server.ReadHeaderTimeout = d
	}
	for k, dst := range map[string]*int{
		"PORT":            &c.Server.Port,
		"DEFAULT_WINDOW":  &c.Analysis.DefaultWindow,
		"SKEW_WINDOW":     &c.Analysis.SkewWindow,
		"CACHE_SIZE":      &c.Analysis.CacheSize,
		"MAX_SKEW_POINTS": &c.Analysis.MaxSkewPoints,
	} {
		if err := setInt(k, dst); err != nil {
			return err
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks ranges and required fields.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be greater than 0")
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("read header timeout must be greater than 0")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be json or console, got %q", c.Log.Format)
	}
	if c.Analysis.DefaultWindow < 0 {
		return fmt.Errorf("default window cannot be negative")
	}
	if c.Analysis.SkewWindow < 0 {
		return fmt.Errorf("skew window cannot be negative")
	}
	if c.Analysis.CacheSize < 0 {
		return fmt.Errorf("cache size cannot be negative (0 disables the cache)")
	}
	if c.Analysis.MaxSkewPoints < 0 {
		return fmt.Errorf("max skew points cannot be negative (0 keeps every point)")
	}
	return nil
}

// Addr returns the listen address host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
