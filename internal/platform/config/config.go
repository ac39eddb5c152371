package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LogLevel        string
	LogFormat       string
	IsProduction    bool
	FiatSymbolsFile string // empty means the built-in table
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Values already set on v (for example bound command line flags) take precedence.
func LoadConfig(v *viper.Viper) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	if v == nil {
		v = viper.New()
	}

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("FIAT_SYMBOLS_FILE", "")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.LogLevel = v.GetString("LOG_LEVEL")
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	cfg.LogFormat = v.GetString("LOG_FORMAT")
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to json.\n", cfg.LogFormat)
		cfg.LogFormat = "json"
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.FiatSymbolsFile = v.GetString("FIAT_SYMBOLS_FILE")

	return cfg, nil
}
