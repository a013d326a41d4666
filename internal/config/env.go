package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the environment variables that take precedence over the
// config file. Unset variables leave the file value alone.
type envOverrides struct {
	Theme    string `env:"VOTEDASH_THEME"`
	Title    string `env:"VOTEDASH_TITLE"`
	Debug    *bool  `env:"VOTEDASH_DEBUG"`
	LogLevel string `env:"VOTEDASH_LOG_LEVEL"`
	LogFile  string `env:"VOTEDASH_LOG_FILE"`
}

func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("invalid VOTEDASH_* environment: %w", err)
	}

	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.Debug != nil {
		c.Logging.DebugMode = *o.Debug
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFile != "" {
		c.Logging.File = o.LogFile
	}
	return nil
}
