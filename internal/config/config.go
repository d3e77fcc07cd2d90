package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var cfg = newViper()

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "wordle.log")
	v.SetDefault("MAX_GUESSES", 6)
	v.SetDefault("WORDS_FILE", "")
	v.SetDefault("SCORING", "simple")
	v.SetDefault("SUSPEND_ENABLED", false)
	v.SetDefault("BADGER_PATH", ".wordle")
	v.SetDefault("SNAPSHOT_TTL", "168h")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)
	return v
}

// LoadEnv reads the given .env files (".env" when none are given) into the
// process environment. Missing files are reported but values already in the
// environment are never overwritten.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// Get ...
func Get(key string) string {
	return cfg.GetString(key)
}

// GetOrDefault ...
func GetOrDefault(key, def string) string {
	env := cfg.GetString(key)
	if env != "" {
		return env
	}
	return def
}

func GetInt(key string) int {
	return cfg.GetInt(key)
}

func GetBool(key string) bool {
	return cfg.GetBool(key)
}

func GetFloat64(key string) float64 {
	return cfg.GetFloat64(key)
}

// Set overrides a value, it takes precedence over the environment
func Set(key string, value any) {
	cfg.Set(key, value)
}
