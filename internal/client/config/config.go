package config

import "time"

// Default values applied by LoadDefaults.
const (
	DefaultServerBaseURL        = "https://practica-syf7.onrender.com/api"
	DefaultSessionCheckInterval = 5 * time.Second
	DefaultRequestTimeout       = 15 * time.Second
	DefaultDatabasePath         = "data/logdash.db"
	DefaultLogBackend           = "zap"
	DefaultLogLevel             = "info"
)

// Config holds runtime settings for the logdash CLI.
//
// Fields:
//   - ServerBaseURL: root of the REST API, e.g. "https://host/api".
//   - SessionCheckInterval: how often the session watcher re-checks the token.
//   - RequestTimeout: deadline for a single API call.
//   - DatabasePath: local SQLite file holding the credential token.
//   - LogBackend, LogLevel: see logging.New.
type Config struct {
	ServerBaseURL        string        `env:"LOGDASH_SERVER_URL"`
	SessionCheckInterval time.Duration `env:"LOGDASH_SESSION_CHECK_INTERVAL"`
	RequestTimeout       time.Duration `env:"LOGDASH_REQUEST_TIMEOUT"`
	DatabasePath         string        `env:"LOGDASH_DB_PATH"`
	LogBackend           string        `env:"LOGDASH_LOG_BACKEND"`
	LogLevel             string        `env:"LOGDASH_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = DefaultServerBaseURL
	c.SessionCheckInterval = DefaultSessionCheckInterval
	c.RequestTimeout = DefaultRequestTimeout
	c.DatabasePath = DefaultDatabasePath
	c.LogBackend = DefaultLogBackend
	c.LogLevel = DefaultLogLevel
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
