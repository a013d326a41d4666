package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"` // false = no logs written
	Level     string `yaml:"level"`      // debug, info, warn, error
	File      string `yaml:"file"`
}
