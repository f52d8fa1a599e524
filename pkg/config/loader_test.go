package config_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vnaddress/pkg/config"
	"github.com/dmitrymomot/vnaddress/pkg/logger"
)

var configKeys = []string{
	"VNADDRESS_ENV",
	"VNADDRESS_DATASET",
	"VNADDRESS_LANG",
	"VNADDRESS_LOG_LEVEL",
	"VNADDRESS_LOG_FORMAT",
}

// unsetConfigEnv removes the config variables for the duration of the test.
// t.Setenv registers the restore, Unsetenv makes the keys absent so that
// godotenv is allowed to populate them.
func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetConfigEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.Dataset)
	assert.Equal(t, "en", cfg.Lang)
	assert.Empty(t, cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("VNADDRESS_ENV", "prod")
	t.Setenv("VNADDRESS_DATASET", "/srv/data/provinces.json")
	t.Setenv("VNADDRESS_LOG_LEVEL", "debug")
	t.Setenv("VNADDRESS_LOG_FORMAT", "JSON")
	t.Setenv("VNADDRESS_LANG", "vi-VN")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/srv/data/provinces.json", cfg.Dataset)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "JSON", cfg.LogFormat)
	assert.Equal(t, "vi-VN", cfg.Lang)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"environment", "VNADDRESS_ENV", "galaxy", config.ErrInvalidEnvironment},
		{"log level", "VNADDRESS_LOG_LEVEL", "loud", config.ErrInvalidLogLevel},
		{"log format", "VNADDRESS_LOG_FORMAT", "xml", config.ErrInvalidLogFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Panics(t, func() { config.MustLoad() })
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		unsetConfigEnv(t)

		require.NoError(t, config.LoadEnv("testdata/.env.test"))
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "testdata/provinces.yaml", cfg.Dataset)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "vi", cfg.Lang)
	})

	t.Run("process environment wins", func(t *testing.T) {
		unsetConfigEnv(t)
		t.Setenv("VNADDRESS_LOG_LEVEL", "error")

		require.NoError(t, config.LoadEnv("testdata/.env.test"))
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("invalid values surface on load", func(t *testing.T) {
		unsetConfigEnv(t)

		require.NoError(t, config.LoadEnv("testdata/.env.invalid"))
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrInvalidEnvironment)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/.env.missing")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/.env.missing") })
	})
}

func TestConfig_LoggerOptions(t *testing.T) {
	t.Run("environment defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cfg := config.Config{Env: "development"}
		log := logger.New(append(cfg.LoggerOptions("vnaddress"), logger.WithOutput(buf))...)
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=vnaddress")
	})

	t.Run("explicit overrides", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cfg := config.Config{Env: "development", LogLevel: "warn", LogFormat: "json"}
		log := logger.New(append(cfg.LoggerOptions("vnaddress"), logger.WithOutput(buf))...)
		log.Info("hidden")
		assert.Zero(t, buf.Len())
		log.Warn("shown")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("upper case environment", func(t *testing.T) {
		buf := &bytes.Buffer{}
		cfg := config.Config{Env: "PRODUCTION"}
		require.NoError(t, cfg.Validate())
		log := logger.New(append(cfg.LoggerOptions(""), logger.WithOutput(buf))...)
		log.Info("msg")
		assert.Contains(t, buf.String(), `"env":"production"`)
	})
}
