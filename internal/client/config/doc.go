// Package config loads runtime configuration for the logdash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed LOGDASH_, optionally from a .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-i int      session check interval (seconds)
//	-d string   path of the local SQLite database
//	-l string   log level
//
// # JSON schema
//
// Intervals are timex.Duration values, either strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "https://practica-syf7.onrender.com/api",
//	  "session_check_interval": "5s",
//	  "request_timeout": "15s",
//	  "database_path": "data/logdash.db",
//	  "log_backend": "zap",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	LOGDASH_SERVER_URL, LOGDASH_SESSION_CHECK_INTERVAL, LOGDASH_REQUEST_TIMEOUT,
//	LOGDASH_DB_PATH, LOGDASH_LOG_BACKEND, LOGDASH_LOG_LEVEL
package config
