package app

import (
	"io"
	"log/slog"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/render"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger      *slog.Logger
	config      *Config
	conventions config.Conventions
	style       render.Style

	artifacts []string
}

// NewApp is the constructor for the main application. Logs go to logW
// through an isolated logger.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger:      logger,
		config:      cfg,
		conventions: config.DefaultConventions(),
		style:       render.DefaultStyle(),
	}
}

// Artifacts returns the paths written by the last Run, in write order.
func (a *App) Artifacts() []string {
	out := make([]string, len(a.artifacts))
	copy(out, a.artifacts)
	return out
}
