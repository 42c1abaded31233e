package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the runtime settings. Port and Token skip process discovery
// when both are set.
type Config struct {
	Port           string        `env:"LCU_PORT"`
	Token          string        `env:"LCU_TOKEN"`
	ProcessName    string        `env:"LCU_PROCESS_NAME" envDefault:"LeagueClientUx.exe"`
	RequestTimeout time.Duration `env:"LCU_REQUEST_TIMEOUT" envDefault:"0s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`

	dotenvLoaded bool
}

func Load() (*Config, error) {
	loaded := godotenv.Load() == nil

	cfg, err := parse(env.Options{})
	if err != nil {
		return nil, err
	}
	cfg.dotenvLoaded = loaded
	return cfg, nil
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.ProcessName == "" {
		return nil, fmt.Errorf("LCU_PROCESS_NAME must not be empty")
	}
	if cfg.RequestTimeout < 0 {
		return nil, fmt.Errorf("LCU_REQUEST_TIMEOUT must not be negative, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}

// HasCredentials reports whether both LCU_PORT and LCU_TOKEN were supplied.
func (c *Config) HasCredentials() bool {
	return c.Port != "" && c.Token != ""
}

func Log(cfg *Config, logger zerolog.Logger) {
	if !cfg.dotenvLoaded {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	logger.Info().
		Str("process_name", cfg.ProcessName).
		Bool("credentials_from_env", cfg.HasCredentials()).
		Dur("request_timeout", cfg.RequestTimeout).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")
}
