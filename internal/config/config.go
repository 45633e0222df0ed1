package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds process-wide settings, read once at startup and treated as
// read-only afterwards.
type Config struct {
	JWTSecret   string
	DatabaseURL string
	RedisAddr   string
}

var (
	ErrMissingSecret      = errors.New("environment variable JWT_SECRET not found")
	ErrMissingDatabaseURL = errors.New("environment variable DATABASE_URL not found")
)

// Load populates Config from environment variables.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("REDIS_ADDR", "localhost:6379")

	cfg := Config{
		JWTSecret:   v.GetString("JWT_SECRET"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}
