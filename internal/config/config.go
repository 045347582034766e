package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the newsroom assistant.
type Config struct {
	ListenAddr          string
	GeminiAPIKey        string
	GeminiBaseURL       string
	GeminiModel         string
	GeminiRPM           int
	AnalysisTemperature float64
	ScriptTemperature   float64
	SessionTTL          time.Duration
	LogLevel            string
}

// FromEnv creates a configuration instance sourced from environment variables.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:          getEnv("MASTIKON_LISTEN_ADDR", ":8080"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiBaseURL:       getEnv("MASTIKON_GEMINI_BASE_URL", ""),
		GeminiModel:         getEnv("MASTIKON_GEMINI_MODEL", "gemini-3-flash-preview"),
		AnalysisTemperature: 0.5,
		ScriptTemperature:   0.4,
		SessionTTL:          2 * time.Hour,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if temp := os.Getenv("MASTIKON_ANALYSIS_TEMPERATURE"); temp != "" {
		if _, err := fmt.Sscanf(temp, "%f", &cfg.AnalysisTemperature); err != nil {
			return Config{}, fmt.Errorf("parse MASTIKON_ANALYSIS_TEMPERATURE: %w", err)
		}
	}

	if temp := os.Getenv("MASTIKON_SCRIPT_TEMPERATURE"); temp != "" {
		if _, err := fmt.Sscanf(temp, "%f", &cfg.ScriptTemperature); err != nil {
			return Config{}, fmt.Errorf("parse MASTIKON_SCRIPT_TEMPERATURE: %w", err)
		}
	}

	if rpm := os.Getenv("MASTIKON_GEMINI_RPM"); rpm != "" {
		if _, err := fmt.Sscanf(rpm, "%d", &cfg.GeminiRPM); err != nil {
			return Config{}, fmt.Errorf("parse MASTIKON_GEMINI_RPM: %w", err)
		}
	}

	if ttl := os.Getenv("MASTIKON_SESSION_TTL_MIN"); ttl != "" {
		var minutes int
		if _, err := fmt.Sscanf(ttl, "%d", &minutes); err != nil {
			return Config{}, fmt.Errorf("parse MASTIKON_SESSION_TTL_MIN: %w", err)
		}
		if minutes <= 0 {
			return Config{}, fmt.Errorf("MASTIKON_SESSION_TTL_MIN must be positive, got %d", minutes)
		}
		cfg.SessionTTL = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}

// HasCredential reports whether a model API key is configured.
func (c Config) HasCredential() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
