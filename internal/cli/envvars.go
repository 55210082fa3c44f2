package cli

import (
	"fmt"

	envparse "github.com/caarlos0/env/v11"
)

// envDefaults defines root CLI defaults sourced from COACH_* env vars.
type envDefaults struct {
	// Env is the environment name from COACH_ENV.
	Env string `env:"COACH_ENV"`
	// EnvFile is a .env file path from COACH_ENV_FILE.
	EnvFile string `env:"COACH_ENV_FILE"`
	// Overrides is a YAML overrides path from COACH_OVERRIDES.
	Overrides string `env:"COACH_OVERRIDES"`
	// LogLevel is the logging level from COACH_LOG_LEVEL.
	LogLevel string `env:"COACH_LOG_LEVEL"`
}

// loadEnvDefaults fills root flag defaults from COACH_* env vars via
// caarlos0/env.
func loadEnvDefaults() (envDefaults, error) {
	var defaults envDefaults
	if err := envparse.Parse(&defaults); err != nil {
		return envDefaults{}, fmt.Errorf("parse COACH_* defaults: %w", err)
	}
	return defaults, nil
}
