package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with LOGDASH_* environment variables. A .env
// file in the working directory is loaded first when present; variables
// already set in the process win over it. Unset variables leave the
// current value untouched. It panics on malformed values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
