package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vk/cfgdot/internal/app"
	"github.com/vk/cfgdot/internal/config"
	"github.com/vk/cfgdot/internal/loader"
)

// Environment variables that provide flag defaults.
const (
	EnvLogLevel     = "CFGDOT_LOG_LEVEL"
	EnvLogFormat    = "CFGDOT_LOG_FORMAT"
	EnvMaxDepth     = "CFGDOT_MAX_DEPTH"
	EnvOutputPrefix = "CFGDOT_OUTPUT_PREFIX"
)

// DefaultEnvFile is read when --env-file is not given. Its absence is not
// an error.
const DefaultEnvFile = ".env"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cfgdot", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cfgdot - Render a real-time application configuration as Graphviz DOT views.

Usage:
  cfgdot [options] -i INPUT -o OUTPUT_PREFIX
  cfgdot [options] INPUT

Arguments:
  INPUT
    Configuration document (.cfg, .hcl, .yaml, .yml, .json or .toml).

Views (written as <OUTPUT_PREFIX><name>.gv):
  app           RTApp: every state, thread and function plus all data sources
  states        State<name>: one per state, with signal edges
  statemachine  StateMachine: only when the document defines one
  objects       Objects_<i>: one object tree per top-level node

Environment:
  CFGDOT_LOG_LEVEL, CFGDOT_LOG_FORMAT, CFGDOT_MAX_DEPTH and
  CFGDOT_OUTPUT_PREFIX provide defaults, optionally read from an env file.

Options:
`)
		flagSet.PrintDefaults()
	}

	envFileFlag := flagSet.String("env-file", "", "File with KEY=VALUE defaults. Defaults to .env when it exists.")
	inputFlag := flagSet.String("i", "", "Path to the configuration document.")
	outputFlag := flagSet.String("o", "", "Prefix prepended to every artifact file name.")
	formatFlag := flagSet.String("format", loader.FormatAuto, "Input format: "+strings.Join(loader.Formats(), ", ")+".")
	viewsFlag := flagSet.String("views", strings.Join(app.AllViews(), ","), "Comma-separated list of views to write.")
	maxDepthFlag := flagSet.Int("max-depth", 0, fmt.Sprintf("Maximum nesting depth of groups and object trees. 0 selects %s or %d.", EnvMaxDepth, config.DefaultMaxDepth))
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	showErrorsFlag := flagSet.Bool("show-error-transitions", false, "Draw dashed edges to each event's error state.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	path := *inputFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	env, err := readEnv(*envFileFlag)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	logFormat := strings.ToLower(firstNonEmpty(*logFormatFlag, env[EnvLogFormat], "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(firstNonEmpty(*logLevelFlag, env[EnvLogLevel], "info"))
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	maxDepth := *maxDepthFlag
	if maxDepth == 0 && env[EnvMaxDepth] != "" {
		maxDepth, err = strconv.Atoi(env[EnvMaxDepth])
		if err != nil {
			return nil, false, usageError("invalid %s: %v", EnvMaxDepth, err)
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		InputPath:            path,
		OutputPrefix:         firstNonEmpty(*outputFlag, env[EnvOutputPrefix]),
		Format:               *formatFlag,
		Views:                splitList(*viewsFlag),
		MaxDepth:             maxDepth,
		ShowErrorTransitions: *showErrorsFlag,
		LogFormat:            logFormat,
		LogLevel:             logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// readEnv merges the env file with the process environment, the process
// environment winning. Only the default file may be missing.
func readEnv(file string) (map[string]string, error) {
	explicit := file != ""
	if !explicit {
		file = DefaultEnvFile
	}

	values, err := godotenv.Read(file)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file '%s': %w", file, err)
		}
		values = map[string]string{}
	}

	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvMaxDepth, EnvOutputPrefix} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	return values, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
