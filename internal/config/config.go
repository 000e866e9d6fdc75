package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/gastx/internal/common"
	"github.com/Veraticus/gastx/internal/model"
	"github.com/Veraticus/gastx/internal/pattern"
)

// Defaults applied by SetDefaults.
const (
	DefaultAddress        = ":8000"
	DefaultMaxUploadBytes = 10 << 20
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
)

// DefaultAllowedOrigins are the dev-server origins the web frontend runs on.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Config is the resolved application configuration.
type Config struct {
	Logging  LoggingConfig
	Server   ServerConfig
	Patterns []ExtraPattern
	Workers  int
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Address        string
	AllowedOrigins []string
	MaxUploadBytes int64
}

// ExtraPattern is a pattern registered at startup on top of the built-in set.
type ExtraPattern struct {
	Category string `mapstructure:"category"`
	Tier     string `mapstructure:"tier"`
	Pattern  string `mapstructure:"pattern"`
}

func (p ExtraPattern) category() model.Category {
	return model.Category(strings.TrimSpace(p.Category))
}

// SetDefaults registers default values on v. Values from flags, env and the
// config file override them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("server.max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("classify.workers", runtime.NumCPU())
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
		Server: ServerConfig{
			Address:        v.GetString("server.address"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
			MaxUploadBytes: v.GetInt64("server.max_upload_bytes"),
		},
		Workers: v.GetInt("classify.workers"),
	}

	if err := v.UnmarshalKey("patterns.extra", &cfg.Patterns); err != nil {
		return nil, fmt.Errorf("%w: patterns.extra: %v", common.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address", common.ErrMissingConfig)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: server.max_upload_bytes must be positive", common.ErrInvalidConfig)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: classify.workers must be positive", common.ErrInvalidConfig)
	}
	for i, p := range c.Patterns {
		if !p.category().InCatalogue() {
			return fmt.Errorf("%w: patterns.extra[%d]: %w %q", common.ErrInvalidConfig, i, common.ErrUnknownCategory, p.Category)
		}
		if _, err := model.ParseTier(p.Tier); err != nil {
			return fmt.Errorf("%w: patterns.extra[%d]: %w", common.ErrInvalidConfig, i, err)
		}
		if _, err := common.CompileFold(common.NormalizePattern(p.Pattern)); err != nil {
			return fmt.Errorf("%w: patterns.extra[%d]: %w", common.ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// ApplyPatterns registers the configured extra patterns and returns how many
// were new.
func (c *Config) ApplyPatterns(registry *pattern.Registry) (int, error) {
	added := 0
	for _, p := range c.Patterns {
		category := p.category()
		if !category.InCatalogue() {
			return added, fmt.Errorf("%w: %q cannot carry patterns", common.ErrUnknownCategory, p.Category)
		}
		tier, err := model.ParseTier(p.Tier)
		if err != nil {
			return added, err
		}
		ok, err := registry.AddPattern(category, p.Pattern, tier)
		if err != nil {
			return added, fmt.Errorf("failed to add pattern %q to %s: %w", p.Pattern, category, err)
		}
		if ok {
			added++
		}
	}
	return added, nil
}
