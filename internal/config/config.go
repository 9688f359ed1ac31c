package config

import (
	"os"
	"strconv"

	"github.com/OPGLOL/opgl-wrapped/internal/stats"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	DefaultStatsURL    = "http://localhost:8000/api"
	DefaultAnalysisURL = "http://localhost:8001"
)

// Config holds everything the CLI reads from the environment
type Config struct {
	StatsURL      string
	AnalysisURL   string
	DataDragonURL string

	LogLevel  string
	LogFormat string

	// Requests per minute, 0 disables pacing
	RateLimitRPM int

	// Set when a .env file was found and loaded
	DotEnvLoaded bool
}

// Load reads a .env file if present, then the environment, with defaults
func Load() *Config {
	dotEnvLoaded := godotenv.Load() == nil

	return &Config{
		StatsURL:      getEnv("WRAPPED_API_URL", DefaultStatsURL),
		AnalysisURL:   getEnv("WRAPPED_ANALYSIS_URL", DefaultAnalysisURL),
		DataDragonURL: getEnv("DDRAGON_URL", stats.DefaultDataDragonURL),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		RateLimitRPM:  getEnvInt("WRAPPED_RATE_LIMIT_RPM", 0),
		DotEnvLoaded:  dotEnvLoaded,
	}
}

// ClientConfig returns the base URLs for the stats client
func (config *Config) ClientConfig() stats.Config {
	return stats.Config{
		StatsURL:      config.StatsURL,
		AnalysisURL:   config.AnalysisURL,
		DataDragonURL: config.DataDragonURL,
	}
}

// LogSummary writes the loaded configuration at debug level
func (config *Config) LogSummary(logger zerolog.Logger) {
	if !config.DotEnvLoaded {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	logger.Debug().
		Str("stats_url", config.StatsURL).
		Str("analysis_url", config.AnalysisURL).
		Str("ddragon_url", config.DataDragonURL).
		Str("log_level", config.LogLevel).
		Int("rate_limit_rpm", config.RateLimitRPM).
		Msg("Configuration loaded")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
