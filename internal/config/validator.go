package config

import (
	"fmt"
	"strconv"
)

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("некорректный порт %q: %w", c.Port, err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("некорректный режим gin: %q", c.GinMode)
	}

	if c.MaxDatasetCells < 0 {
		return fmt.Errorf("лимит ячеек не может быть отрицательным: %d", c.MaxDatasetCells)
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("частота запросов должна быть положительной: %v", c.RateLimitRPS)
	}

	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("burst должен быть положительным: %d", c.RateLimitBurst)
	}

	if c.StoreTTL <= 0 {
		return fmt.Errorf("время жизни датасета должно быть положительным: %v", c.StoreTTL)
	}

	return nil
}
