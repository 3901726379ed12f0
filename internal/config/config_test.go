package config

import (
	"testing"
	"time"
)

// TestLoadConfig_Defaults проверяет значения по умолчанию
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() вернул ошибку: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, ожидалось \"9999\"", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, ожидалось \"release\"", cfg.GinMode)
	}
	if cfg.MaxDatasetCells != 5_000_000 {
		t.Errorf("MaxDatasetCells = %d", cfg.MaxDatasetCells)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Errorf("лимитер = %v rps, burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.StoreTTL != 2*time.Hour {
		t.Errorf("StoreTTL = %v", cfg.StoreTTL)
	}
	if cfg.SampleSeed != 0 {
		t.Errorf("SampleSeed = %d, ожидалось 0", cfg.SampleSeed)
	}
}

// TestLoadConfig_FromEnv проверяет чтение переменных окружения
func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("GIN_MODE", "test")
	t.Setenv("MAX_DATASET_CELLS", "1000")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("DATASET_TTL", "30m")
	t.Setenv("SAMPLE_SEED", "42")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() вернул ошибку: %v", err)
	}

	if cfg.Port != "8080" || cfg.GinMode != "test" {
		t.Errorf("сервер = %q, %q", cfg.Port, cfg.GinMode)
	}
	if cfg.MaxDatasetCells != 1000 {
		t.Errorf("MaxDatasetCells = %d", cfg.MaxDatasetCells)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("RateLimitRPS = %v", cfg.RateLimitRPS)
	}
	if cfg.StoreTTL != 30*time.Minute {
		t.Errorf("StoreTTL = %v", cfg.StoreTTL)
	}
	if cfg.SampleSeed != 42 {
		t.Errorf("SampleSeed = %d", cfg.SampleSeed)
	}
}

// TestLoadConfig_MalformedEnvFallsBack проверяет откат к дефолту при
// нечитаемом значении переменной
func TestLoadConfig_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("MAX_DATASET_CELLS", "not a number")
	t.Setenv("DATASET_TTL", "soon")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() вернул ошибку: %v", err)
	}
	if cfg.MaxDatasetCells != 5_000_000 {
		t.Errorf("MaxDatasetCells = %d, ожидался дефолт", cfg.MaxDatasetCells)
	}
	if cfg.StoreTTL != 2*time.Hour {
		t.Errorf("StoreTTL = %v, ожидался дефолт", cfg.StoreTTL)
	}
}

// TestLoadConfig_InvalidPort проверяет отказ валидации
func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() не вернул ошибку для нечислового порта")
	}
}

// TestValidate проверяет отдельные правила валидации
func TestValidate(t *testing.T) {
	valid := &Config{
		Port:            "9999",
		GinMode:         "release",
		MaxDatasetCells: 100,
		RateLimitRPS:    1,
		RateLimitBurst:  1,
		StoreTTL:        time.Hour,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() валидной конфигурации вернул ошибку: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad_gin_mode", func(c *Config) { c.GinMode = "production" }},
		{"negative_cells", func(c *Config) { c.MaxDatasetCells = -1 }},
		{"zero_rps", func(c *Config) { c.RateLimitRPS = 0 }},
		{"zero_burst", func(c *Config) { c.RateLimitBurst = 0 }},
		{"zero_ttl", func(c *Config) { c.StoreTTL = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *valid
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() не вернул ошибку для %s", tc.name)
			}
		})
	}
}
