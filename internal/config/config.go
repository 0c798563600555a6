package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken  string
	Weather   LookupConfig
	Nutrition LookupConfig
	// LookupTimeout bounds each weather/nutrition HTTP call. On timeout
	// the caller degrades to its fallback constant.
	LookupTimeout time.Duration
}

// LookupConfig holds settings for one external lookup API
type LookupConfig struct {
	BaseURL string
	APIKey  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("LOOKUP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Weather: LookupConfig{
			BaseURL: getEnv("WEATHER_API_URL", "http://api.weatherapi.com/v1"),
			APIKey:  os.Getenv("WEATHER_API_KEY"),
		},
		Nutrition: LookupConfig{
			BaseURL: getEnv("CALORIES_API_URL", "https://api.calorieninjas.com"),
			APIKey:  os.Getenv("CALORIES_API_KEY"),
		},
		LookupTimeout: timeout,
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Weather.APIKey == "" {
		return nil, fmt.Errorf("WEATHER_API_KEY is required")
	}
	if cfg.Nutrition.APIKey == "" {
		return nil, fmt.Errorf("CALORIES_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
