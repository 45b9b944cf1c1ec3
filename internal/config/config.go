// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config представляет конфигурацию приложения
type Config struct {
	// Telegram
	BotToken string

	// Database
	DatabaseURL string

	// Catalog seed (опционально): путь к JSON-файлу с фильмами и кинотеатрами
	CatalogPath string

	// Logging
	LogLevel string

	// Update loop
	UpdateTimeout time.Duration

	// Worker pool
	WorkerPoolSize  int
	WorkerQueueSize int

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Inline query
	InlineResultLimit int

	// Graceful shutdown
	GracefulShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	config := &Config{
		BotToken:                getEnv("BOT_TOKEN", ""),
		DatabaseURL:             getEnv("DB_DSN", ""),
		CatalogPath:             getEnv("CATALOG_PATH", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		UpdateTimeout:           getEnvDuration("UPDATE_TIMEOUT", 60*time.Second),
		WorkerPoolSize:          getEnvInt("WORKER_POOL_SIZE", 5),
		WorkerQueueSize:         getEnvInt("WORKER_QUEUE_SIZE", 100),
		RateLimitEnabled:        getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests:       getEnvInt("RATE_LIMIT_REQUESTS", 20),
		RateLimitWindow:         getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		InlineResultLimit:       getEnvInt("INLINE_RESULT_LIMIT", 50),
		GracefulShutdownTimeout: getEnvDuration("GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if c.WorkerPoolSize <= 0 {
		return fmt.Errorf("WORKER_POOL_SIZE must be positive")
	}

	if c.WorkerQueueSize <= 0 {
		return fmt.Errorf("WORKER_QUEUE_SIZE must be positive")
	}

	if c.RateLimitEnabled && c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive when rate limiting is enabled")
	}

	// Telegram отдает не больше 50 результатов на inline-запрос
	if c.InlineResultLimit <= 0 || c.InlineResultLimit > 50 {
		return fmt.Errorf("INLINE_RESULT_LIMIT must be between 1 and 50")
	}

	return nil
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
