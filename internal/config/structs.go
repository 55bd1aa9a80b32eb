package config

type Config struct {
	// App: Global application metadata
	App AppSection `mapstructure:"app"`

	// Server: Network configuration and execution environment
	Server ServerConfig `mapstructure:"server"`

	// Database: SQLite file holding the image catalog
	Database DatabaseConfig `mapstructure:"database"`

	// Auth: Mock credential check behaviour
	Auth AuthConfig `mapstructure:"auth"`

	// Session: Cookie and lifetime of authenticated sessions
	Session SessionConfig `mapstructure:"session"`

	// Gallery: Grid layout defaults
	Gallery GalleryConfig `mapstructure:"gallery"`

	// Viewer: Lightbox affordances
	Viewer ViewerConfig `mapstructure:"viewer"`

	// Cache: In-memory cache for rendered placeholders
	Cache CacheConfig `mapstructure:"cache"`

	// Security: CORS whitelist and request throttling
	Security SecurityConfig `mapstructure:"security"`

	// BaseURL: The public-facing root URL used for absolute link generation
	BaseURL string `mapstructure:"base_url"`
}

type AppSection struct {
	// Name: Display name used in page titles and the startup banner
	Name string `mapstructure:"name"`

	// Version: Application semantic version (e.g., "0.1.0")
	Version string `mapstructure:"version"`

	// StartMessage: Print the banner and signature on startup
	StartMessage bool `mapstructure:"start_message"`
}

type ServerConfig struct {
	// Port: The TCP port the HTTP server will bind to (default: 9981)
	Port int `mapstructure:"port"`

	// Env: Execution context (development, staging, production)
	Env string `mapstructure:"env"`

	// ShutdownTimeout: Grace period for in-flight requests on SIGTERM (e.g., "10s")
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Path: Physical location of the SQLite database file (e.g., ./data/lightlock.db)
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	// Latency: Simulated round-trip of the credential check (e.g., "1s")
	Latency string `mapstructure:"latency"`
}

type SessionConfig struct {
	// CookieName: Name of the HTTP-only cookie carrying the session token
	CookieName string `mapstructure:"cookie_name"`

	// TTL: Idle lifetime of a session (e.g., "12h")
	TTL string `mapstructure:"ttl"`

	// SweepInterval: How often expired sessions are dropped (e.g., "1m")
	SweepInterval string `mapstructure:"sweep_interval"`
}

type GalleryConfig struct {
	// Columns: Maximum masonry columns on wide viewports
	Columns int `mapstructure:"columns"`
}

type ViewerConfig struct {
	// ControlsIdle: Pointer inactivity before on-screen controls hide (e.g., "3s")
	ControlsIdle string `mapstructure:"controls_idle"`
}

type CacheConfig struct {
	// Enabled: Toggles the in-memory cache layer
	Enabled bool `mapstructure:"enabled"`

	// MaxCapacity: Maximum RAM allocated for the cache (e.g., "16MB")
	MaxCapacity string `mapstructure:"max_capacity"`

	// TTL: Expiration time for cached items (e.g., "30m", "24h")
	TTL string `mapstructure:"ttl"`
}

type SecurityConfig struct {
	// CorsOrigins: List of allowed domains for browser-based cross-origin requests
	CorsOrigins []string `mapstructure:"cors_origins"`

	// RateLimit: Per-IP token bucket applied to every request
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	// Enabled: Global toggle for the rate limiting middleware
	Enabled bool `mapstructure:"enabled"`

	// Requests: Number of allowed requests per time window
	Requests int `mapstructure:"requests"`

	// Window: The timeframe for the request limit (e.g., "1s", "1m")
	Window string `mapstructure:"window"`

	// Burst: Temporary allowed spike capacity above the steady-rate limit
	Burst int `mapstructure:"burst"`
}
