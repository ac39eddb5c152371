package config_test

import (
	"testing"

	"github.com/SscSPs/wallet_denominations/internal/platform/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("FIAT_SYMBOLS_FILE", "")

	cfg, err := config.LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.FiatSymbolsFile)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("FIAT_SYMBOLS_FILE", "/etc/wallet/fiat.yaml")

	cfg, err := config.LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "/etc/wallet/fiat.yaml", cfg.FiatSymbolsFile)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := config.LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_OverridesWin(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	v := viper.New()
	v.Set("LOG_LEVEL", "warn")

	cfg, err := config.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}
