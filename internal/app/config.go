package app

import "errors"

// Config holds everything an App instance needs to run. Zero-valued fields
// are filled from the record file's options block first and the built-in
// defaults second, so CLI flags always win.
type Config struct {
	RecordsPath string
	RootID      string
	Format      string
	MaxDepth    int

	StrictCycles bool
	Lenient      bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates the caller-supplied configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RecordsPath == "" {
		return nil, errors.New("RecordsPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// defaultConfig is the lowest-precedence layer of the configuration merge.
func defaultConfig() *Config {
	return &Config{
		RootID:    "0",
		Format:    "text",
		LogFormat: "text",
		LogLevel:  "info",
	}
}
