package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/cfgdot/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"-i", "/test/app.cfg",
				"-o", "/out/run_",
				"--format=marte",
				"--views=app,states",
				"--max-depth=8",
				"--log-level=debug",
				"--log-format=json",
				"--show-error-transitions",
			},
			expectedConfig: &app.Config{
				InputPath:            "/test/app.cfg",
				OutputPrefix:         "/out/run_",
				Format:               "marte",
				Views:                []string{app.ViewApplication, app.ViewStates},
				MaxDepth:             8,
				ShowErrorTransitions: true,
				LogFormat:            "json",
				LogLevel:             "debug",
			},
		},
		{
			name: "Positional argument and defaults",
			args: []string{"/positional/app.yaml"},
			expectedConfig: &app.Config{
				InputPath: "/positional/app.yaml",
				Format:    "auto",
				Views:     app.AllViews(),
				MaxDepth:  64,
				LogFormat: "text",
				LogLevel:  "info",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Usage:")
				assert.Contains(t, output, "-show-error-transitions")
			},
		},
		{
			name:       "No input prints usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Usage:")
			},
		},
		{name: "Unknown flag", args: []string{"--nope"}, expectErr: "flag provided but not defined: -nope"},
		{name: "Invalid log format", args: []string{"--log-format=xml", "a.cfg"}, expectErr: "invalid log-format"},
		{name: "Invalid log level", args: []string{"--log-level=trace", "a.cfg"}, expectErr: "invalid log-level"},
		{name: "Unknown view", args: []string{"--views=app,graph", "a.cfg"}, expectErr: `unknown view "graph"`},
		{name: "Unknown extension", args: []string{"a.ini"}, expectErr: "unknown configuration format"},
		{name: "Missing env file", args: []string{"--env-file=/does/not/exist.env", "a.cfg"}, expectErr: "failed to read env file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig == nil {
				assert.Nil(t, cfg)
				return
			}
			if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "cfgdot.env")
	content := "CFGDOT_LOG_LEVEL=warn\nCFGDOT_MAX_DEPTH=12\nCFGDOT_OUTPUT_PREFIX=from_file_\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv(EnvOutputPrefix, "from_env_")

	cfg, _, err := Parse([]string{"--env-file", envFile, "app.cfg"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.Equal(t, "from_env_", cfg.OutputPrefix, "the process environment wins over the file")

	cfg, _, err = Parse([]string{"--env-file", envFile, "--log-level=error", "--max-depth=3", "-o", "flag_", "app.cfg"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "flags win over the environment")
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, "flag_", cfg.OutputPrefix)
}

func TestParse_InvalidEnvironmentDepth(t *testing.T) {
	t.Setenv(EnvMaxDepth, "deep")
	_, _, err := Parse([]string{"app.cfg"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, EnvMaxDepth)
}
