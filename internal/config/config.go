package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ritviksingh/thm-card-go/internal/constants"
)

type Config struct {
	Profile ProfileConfig
	Card    CardConfig
	Spark   SparkConfig
	Logging LoggingConfig
}

type ProfileConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type CardConfig struct {
	Output   string
	Template string
	Points   int
	Width    int
	Height   int
}

type SparkConfig struct {
	Width  int
	Height int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Profile: ProfileConfig{
			BaseURL:   getEnv("THMCARD_BASE_URL", constants.FetchConfig.BaseURL),
			UserAgent: getEnv("THMCARD_USER_AGENT", constants.FetchConfig.UserAgent),
			Timeout:   time.Duration(getEnvInt("THMCARD_TIMEOUT_SECONDS", int(constants.FetchConfig.Timeout/time.Second))) * time.Second,
		},
		Card: CardConfig{
			Output:   getEnv("THMCARD_OUTPUT", constants.CardDefaults.Output),
			Template: getEnv("THMCARD_TEMPLATE", constants.CardDefaults.Template),
			Points:   getEnvInt("THMCARD_POINTS", constants.CardDefaults.Points),
			Width:    getEnvInt("THMCARD_WIDTH", constants.CardDefaults.Width),
			Height:   getEnvInt("THMCARD_HEIGHT", constants.CardDefaults.Height),
		},
		Spark: SparkConfig{
			Width:  getEnvInt("THMCARD_SPARK_WIDTH", constants.SparklineCanvas.Width),
			Height: getEnvInt("THMCARD_SPARK_HEIGHT", constants.SparklineCanvas.Height),
		},
		Logging: LoggingConfig{
			Level: getEnv("THMCARD_LOG_LEVEL", "info"),
			File:  getEnv("THMCARD_LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Profile.BaseURL == "" {
		return fmt.Errorf("THMCARD_BASE_URL is required")
	}
	if c.Profile.Timeout <= 0 {
		return fmt.Errorf("THMCARD_TIMEOUT_SECONDS must be positive")
	}
	if c.Card.Points < 2 {
		return fmt.Errorf("THMCARD_POINTS must be at least 2")
	}
	if c.Card.Width <= 0 || c.Card.Height <= 0 {
		return fmt.Errorf("card dimensions must be positive")
	}
	if c.Spark.Width <= 0 || c.Spark.Height <= 0 {
		return fmt.Errorf("sparkline dimensions must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
