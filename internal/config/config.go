package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"lightlock/pkg/logger"
)

// AppConfig is the process-wide configuration, set by Load.
var AppConfig *Config

func (c *Config) GetBaseUrl() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// Load reads config.yaml (optional), LIGHTLOCK_* environment variables and
// the built-in defaults, validates the result and publishes it as AppConfig.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LIGHTLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("server.port", "APP_PORT")
	v.BindEnv("database.path", "LIGHTLOCK_DB_PATH")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.LogInfo("Config file not found. Using Environment Variables and Defaults.")
		} else {
			logger.LogWarn("Config file found but unreadable: %v", err)
		}
	}

	cfg, err := build(v)
	if err != nil {
		return nil, err
	}

	AppConfig = cfg

	logger.LogInfo("⚙️  %s v%s Initialized | Env: %s | Port: %d",
		cfg.App.Name,
		cfg.App.Version,
		cfg.Server.Env,
		cfg.Server.Port,
	)
	return cfg, nil
}

// Defaults returns a validated Config built only from the built-in defaults.
// It does not touch AppConfig.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)

	cfg, err := build(v)
	if err != nil {
		panic("config: built-in defaults are invalid: " + err.Error())
	}
	return cfg
}

func build(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.BaseURL = cfg.GetBaseUrl()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "")

	// App
	v.SetDefault("app.name", "Light-Lock Gallery")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.start_message", true)

	// Server
	v.SetDefault("server.port", 9981)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Database
	v.SetDefault("database.path", "./data/lightlock.db")

	// Auth
	v.SetDefault("auth.latency", "1s")

	// Session
	v.SetDefault("session.cookie_name", "lightlock_session")
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.sweep_interval", "1m")

	// Gallery & Viewer
	v.SetDefault("gallery.columns", 4)
	v.SetDefault("viewer.controls_idle", "3s")

	// Caching
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_capacity", "16MB")
	v.SetDefault("cache.ttl", "30m")

	// Security & Limits
	v.SetDefault("security.cors_origins", []string{})
	v.SetDefault("security.rate_limit.enabled", true)
	v.SetDefault("security.rate_limit.requests", 20)
	v.SetDefault("security.rate_limit.window", "1s")
	v.SetDefault("security.rate_limit.burst", 50)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	durations := map[string]string{
		"server.shutdown_timeout":    c.Server.ShutdownTimeout,
		"auth.latency":               c.Auth.Latency,
		"session.ttl":                c.Session.TTL,
		"session.sweep_interval":     c.Session.SweepInterval,
		"viewer.controls_idle":       c.Viewer.ControlsIdle,
		"cache.ttl":                  c.Cache.TTL,
		"security.rate_limit.window": c.Security.RateLimit.Window,
	}
	for key, raw := range durations {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s format '%s': %w", key, raw, err)
		}
		if d < 0 {
			return fmt.Errorf("%s cannot be negative: %s", key, raw)
		}
	}

	if mustDuration(c.Session.TTL) == 0 || mustDuration(c.Session.SweepInterval) == 0 {
		return errors.New("session.ttl and session.sweep_interval must be positive")
	}

	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name cannot be empty")
	}

	if c.Gallery.Columns < 1 {
		return fmt.Errorf("gallery.columns must be at least 1, got %d", c.Gallery.Columns)
	}

	if c.IsProduction() && mustDuration(c.Auth.Latency) == 0 {
		logger.LogWarn("auth.latency is 0 in production; login timing is no longer uniform.")
	}
	return nil
}

// mustDuration is only called on values Validate has already parsed.
func mustDuration(raw string) time.Duration {
	d, _ := time.ParseDuration(raw)
	return d
}

func (c *Config) AuthLatency() time.Duration     { return mustDuration(c.Auth.Latency) }
func (c *Config) SessionTTL() time.Duration      { return mustDuration(c.Session.TTL) }
func (c *Config) SweepInterval() time.Duration   { return mustDuration(c.Session.SweepInterval) }
func (c *Config) ControlsIdle() time.Duration    { return mustDuration(c.Viewer.ControlsIdle) }
func (c *Config) CacheTTL() time.Duration        { return mustDuration(c.Cache.TTL) }
func (c *Config) ShutdownTimeout() time.Duration { return mustDuration(c.Server.ShutdownTimeout) }
func (c *Config) RateWindow() time.Duration      { return mustDuration(c.Security.RateLimit.Window) }
