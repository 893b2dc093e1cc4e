package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/loader"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Config{InputPath: "app.cfg"})
	require.NoError(t, err)

	assert.Equal(t, loader.FormatAuto, cfg.Format)
	assert.Equal(t, AllViews(), cfg.Views)
	assert.Equal(t, config.DefaultMaxDepth, cfg.MaxDepth)
}

func TestNewConfig_NormalisesViews(t *testing.T) {
	cfg, err := NewConfig(Config{InputPath: "app.cfg", Views: []string{" States", "app", "states"}})
	require.NoError(t, err)
	assert.Equal(t, []string{ViewStates, ViewApplication}, cfg.Views)
	assert.True(t, cfg.wants(ViewStates))
	assert.False(t, cfg.wants(ViewObjects))
}

func TestNewConfig_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing input", cfg: Config{}, wantErr: "InputPath is a required"},
		{name: "unknown view", cfg: Config{InputPath: "a.cfg", Views: []string{"graph"}}, wantErr: `unknown view "graph"`},
		{name: "negative depth", cfg: Config{InputPath: "a.cfg", MaxDepth: -1}, wantErr: "MaxDepth must not be negative"},
		{name: "unknown format", cfg: Config{InputPath: "a.cfg", Format: "xml"}, wantErr: "unknown configuration format"},
		{name: "undetectable format", cfg: Config{InputPath: "app.ini"}, wantErr: "unknown configuration format"},
		{name: "bad log level", cfg: Config{InputPath: "a.cfg", LogLevel: "loud"}, wantErr: "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewLogger_FormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}
