package app

import (
	"io"
	"log/slog"

	"github.com/vk/treegridgo/internal/hclrecords"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Rendered output goes to outW; logs go to the logger's own
// writer, so piping the result stays clean.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	loader *hclrecords.Loader
}

// NewApp constructs a fully initialized App with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		loader: hclrecords.NewLoader(),
	}
}
