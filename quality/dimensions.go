package quality

import "privacyassist/dataset"

// Имена измерений качества. Ключи таблицы весов и карты dimensions в результате.
const (
	DimensionCompleteness = "completeness"
	DimensionAccuracy     = "accuracy"
	DimensionValidity     = "validity"
	DimensionUniqueness   = "uniqueness"
	DimensionIntegrity    = "integrity"
	DimensionConsistency  = "consistency"
)

// DimensionResult результат расчета одного измерения качества.
// Каждая реализация возвращает собственную структуру с дополнительными
// полями, но общий скор доступен через Score().
type DimensionResult interface {
	// Score общий скор измерения в диапазоне [0,1]
	Score() float64
}

// DimensionCalculator калькулятор одного измерения качества данных.
// Реализации независимы друг от друга и вызываются оркестратором.
type DimensionCalculator interface {
	// Name имя измерения, ключ в таблице весов
	Name() string
	// Calculate вычисляет по-колоночные метрики и общий скор измерения.
	// Датасет только читается. Вырожденные входы (пустой датасет,
	// полностью пропущенная колонка) дают корректные значения по умолчанию,
	// а не ошибку.
	Calculate(ds *dataset.Dataset) DimensionResult
}

// meanScore среднее значение скоров; для пустого списка 1.0 —
// нет данных, значит нет обнаруженных дефектов
func meanScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
