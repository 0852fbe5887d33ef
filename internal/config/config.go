package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
	Schedule    ScheduleConfig
	Report      ReportConfig
	RateLimit   RateLimitConfig
}

// DatabaseConfig holds SQLite configuration
type DatabaseConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

// ScheduleConfig holds the appointment book configuration
type ScheduleConfig struct {
	BookPath string
}

// ReportConfig holds reporting configuration
type ReportConfig struct {
	DefaultCommissionPercent float64
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PATH", "./data/barbershop.db")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 1)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 1)
	viper.SetDefault("SCHEDULE_BOOK_PATH", "./data/book.json")
	viper.SetDefault("DEFAULT_COMMISSION_PERCENT", 30.0)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Database: DatabaseConfig{
			Path:         viper.GetString("DB_PATH"),
			MaxOpenConns: viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: viper.GetInt("DB_MAX_IDLE_CONNS"),
		},
		Schedule: ScheduleConfig{
			BookPath: viper.GetString("SCHEDULE_BOOK_PATH"),
		},
		Report: ReportConfig{
			DefaultCommissionPercent: viper.GetFloat64("DEFAULT_COMMISSION_PERCENT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
