package ratelimit

import (
	"time"

	"github.com/jonathan/jinmai-creation/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches by prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window, 0 for unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.EnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.DefaultLimit = config.EnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = config.EnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = config.EnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Whitelist = config.EnvSet("RATE_LIMIT_WHITELIST")
	cfg.Blacklist = config.EnvSet("RATE_LIMIT_BLACKLIST")

	creationLimit := config.EnvInt("RATE_LIMIT_CREATION_LIMIT", 30)
	creationBurst := config.EnvInt("RATE_LIMIT_CREATION_BURST", 5)
	cfg.EndpointConfigs = creationEndpoints(creationLimit, creationBurst)
	return cfg
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
// Read-only catalog routes fall under the default limit; health and metrics are unlimited.
func DefaultEndpointConfigs() []EndpointConfig {
	return creationEndpoints(30, 5)
}

func creationEndpoints(limit, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/ai/creations", Method: "POST", Limit: limit, Window: time.Minute, Burst: burst},
		{Path: "/api/ai/creations/stream", Method: "POST", Limit: limit, Window: time.Minute, Burst: burst},
	}
}
