package config

import "time"

// Config holds runtime settings for the remindme CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the backend REST API.
//   - HTTPTimeout: per-request timeout for API calls.
//   - SessionDBPath: file path of the local session database.
//   - PageSize: number of reminders fetched per search page.
type Config struct {
	BaseURL       string
	SessionDBPath string
	HTTPTimeout   time.Duration
	PageSize      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3333"
	c.SessionDBPath = "remindme.db"
	c.HTTPTimeout = 10 * time.Second
	c.PageSize = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
