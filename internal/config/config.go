package config

import (
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port    string `json:"port"`
	GinMode string `json:"gin_mode"`

	// Лимиты
	MaxDatasetCells int           `json:"max_dataset_cells"`
	RateLimitRPS    float64       `json:"rate_limit_rps"`
	RateLimitBurst  int           `json:"rate_limit_burst"`
	StoreTTL        time.Duration `json:"store_ttl"`

	// Анализ: семя для отбора примеров значений.
	// 0 означает посев от времени (невоспроизводимый продакшн-режим).
	SampleSeed int64 `json:"sample_seed"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:            getEnv("SERVER_PORT", "9999"),
		GinMode:         getEnv("GIN_MODE", "release"),
		MaxDatasetCells: getEnvInt("MAX_DATASET_CELLS", 5_000_000),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		StoreTTL:        getEnvDuration("DATASET_TTL", 2*time.Hour),
		SampleSeed:      getEnvInt64("SAMPLE_SEED", 0),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
