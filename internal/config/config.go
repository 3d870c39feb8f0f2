// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup.
type Config struct {
	TelegramBotToken string
	WeatherAPIKey    string
	WeatherBaseURL   string
	FoodBaseURL      string
	LookupTimeout    time.Duration
}

// Load reads configuration from the environment, after loading a local .env
// file when one exists.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		WeatherAPIKey:    os.Getenv("OPENWEATHER_API_KEY"),
		WeatherBaseURL:   os.Getenv("OPENWEATHER_BASE_URL"),
		FoodBaseURL:      os.Getenv("OPENFOODFACTS_BASE_URL"),
		LookupTimeout:    10 * time.Second,
	}

	if v := os.Getenv("LOOKUP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT %q: %w", v, err)
		}
		cfg.LookupTimeout = d
	}

	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	return cfg, nil
}
