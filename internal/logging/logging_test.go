package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zapcore.Level
		wantOK bool
	}{
		{"", zapcore.InfoLevel, false},
		{"trace", zapcore.DebugLevel, true},
		{" DEBUG ", zapcore.DebugLevel, true},
		{"info", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"off", zapcore.InvalidLevel, true},
		{"loud", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNew_LevelPrecedence(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")

	missingEnv := filepath.Join(t.TempDir(), "none.env")

	logger, err := New(Options{EnvFile: missingEnv})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	logger, err = New(Options{Level: "debug", EnvFile: missingEnv})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New(Options{Level: "off", EnvFile: missingEnv})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.FatalLevel))

	_, err = New(Options{Level: "loud", EnvFile: missingEnv})
	require.Error(t, err)
}

func TestNew_WritesToOutputPath(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	out := filepath.Join(t.TempDir(), "log.txt")

	logger, err := New(Options{EnvFile: filepath.Join(t.TempDir(), "none.env"), OutputPaths: []string{out}})
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestLoadEnv(t *testing.T) {
	const key = "HAPGEN_TEST_DOTENV_VALUE"

	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-file", os.Getenv(key))

	require.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	const key = "HAPGEN_TEST_DOTENV_KEEP"

	t.Setenv(key, "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-env", os.Getenv(key))
}
