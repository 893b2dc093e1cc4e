package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/loader"
)

// Views that a run can produce.
const (
	ViewApplication  = "app"
	ViewStates       = "states"
	ViewStateMachine = "statemachine"
	ViewObjects      = "objects"
)

// AllViews lists every view in the order they are generated.
func AllViews() []string {
	return []string{ViewApplication, ViewStates, ViewStateMachine, ViewObjects}
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath    string
	OutputPrefix string // prepended verbatim to every artifact file name
	Format       string // loader format, "auto" detects from the extension

	Views                []string
	MaxDepth             int
	ShowErrorTransitions bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = loader.FormatAuto
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if _, err := loader.Detect(cfg.InputPath, cfg.Format); err != nil {
		return nil, err
	}

	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("MaxDepth must not be negative, got %d", cfg.MaxDepth)
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = config.DefaultMaxDepth
	}

	if len(cfg.Views) == 0 {
		cfg.Views = AllViews()
	}
	var views []string
	for _, v := range cfg.Views {
		v = strings.ToLower(strings.TrimSpace(v))
		if !slices.Contains(AllViews(), v) {
			return nil, fmt.Errorf("unknown view %q, expected one of: %s", v, strings.Join(AllViews(), ", "))
		}
		if !slices.Contains(views, v) {
			views = append(views, v)
		}
	}
	cfg.Views = views

	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	return &cfg, nil
}

// wants reports whether the view was selected.
func (c *Config) wants(view string) bool {
	return slices.Contains(c.Views, view)
}
