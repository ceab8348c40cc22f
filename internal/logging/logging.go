// Package logging builds the zap logger shared by the command line tools.
package logging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel = "HAPGEN_LOG_LEVEL"
	// DefaultEnvFile is read when present.
	DefaultEnvFile = ".env"
)

// Options control logger construction.
type Options struct {
	// Level overrides the environment when non-empty.
	Level string
	// EnvFile is loaded before the environment is consulted. Empty means
	// DefaultEnvFile. A missing file is not an error.
	EnvFile string
	// OutputPaths defaults to stderr.
	OutputPaths []string
}

// New returns a console logger configured from opts and the environment.
func New(opts Options) (*zap.Logger, error) {
	if err := LoadEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}

	if opts.Level != "" {
		lvl, ok := ParseLevel(opts.Level)
		if !ok {
			return nil, fmt.Errorf("unknown log level %q", opts.Level)
		}

		level = lvl
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// LoadEnv loads variables from path without overriding ones already set.
func LoadEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level. "off" and its aliases map
// to a level above fatal so nothing is written.
func ParseLevel(raw string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zapcore.InfoLevel, false
	case "trace", "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zapcore.InvalidLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}
