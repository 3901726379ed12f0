package privacy

import (
	"math"
	"testing"

	"privacyassist/dataset"
)

const eps = 1e-9

// TestPrivacyFactor проверяет фактор приватности на граничных распределениях
func TestPrivacyFactor(t *testing.T) {
	// Все значения уникальны: каждая строка идентифицируется однозначно
	unique := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"a", "b", "c"}}
	if got := PrivacyFactor(unique); got != 0.0 {
		t.Errorf("PrivacyFactor(уникальные) = %v, ожидалось 0.0", got)
	}

	// Одно значение с частотой 4: фактор 1 - 1/4
	constant := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"x", "x", "x", "x"}}
	if got := PrivacyFactor(constant); math.Abs(got-0.75) > eps {
		t.Errorf("PrivacyFactor(константа) = %v, ожидалось 0.75", got)
	}

	// Пустая колонка: нет данных — нет риска
	empty := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{nil, nil}}
	if got := PrivacyFactor(empty); got != 1.0 {
		t.Errorf("PrivacyFactor(пустая) = %v, ожидалось 1.0", got)
	}

	// Среднее по уникальным значениям без взвешивания частотой:
	// {a:3, b:1} -> ((1-1/3) + (1-1/1)) / 2 = 1/3
	skewed := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"a", "a", "a", "b"}}
	if got := PrivacyFactor(skewed); math.Abs(got-1.0/3.0) > eps {
		t.Errorf("PrivacyFactor(перекос) = %v, ожидалось 1/3", got)
	}
}

// TestShannonEntropy проверяет энтропию Шеннона
func TestShannonEntropy(t *testing.T) {
	// Равномерное распределение на 4 значениях: log2(4) = 2 бита
	uniform := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"a", "b", "c", "d"}}
	if got := ShannonEntropy(uniform); math.Abs(got-2.0) > eps {
		t.Errorf("ShannonEntropy(равномерное) = %v, ожидалось 2.0", got)
	}

	// Константная колонка: неопределенности нет
	constant := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"x", "x"}}
	if got := ShannonEntropy(constant); got != 0.0 {
		t.Errorf("ShannonEntropy(константа) = %v, ожидалось 0.0", got)
	}

	// Пустая колонка
	empty := &dataset.Column{Name: "c", Type: dataset.TypeString}
	if got := ShannonEntropy(empty); got != 0.0 {
		t.Errorf("ShannonEntropy(пустая) = %v, ожидалось 0.0", got)
	}

	// Перекошенное распределение дает меньше энтропии, чем равномерное
	skewed := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"a", "a", "a", "b"}}
	if ShannonEntropy(skewed) >= ShannonEntropy(uniform) {
		t.Error("энтропия перекошенного распределения должна быть ниже равномерного")
	}
}

// TestHartleyMeasure проверяет меру Хартли
func TestHartleyMeasure(t *testing.T) {
	ten := make([]any, 10)
	for i := range ten {
		ten[i] = string(rune('a' + i))
	}
	col := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: ten}
	if got := HartleyMeasure(col); math.Abs(got-1.0) > eps {
		t.Errorf("HartleyMeasure(10 уникальных) = %v, ожидалось 1.0", got)
	}

	single := &dataset.Column{Name: "c", Type: dataset.TypeString, Values: []any{"x", "x"}}
	if got := HartleyMeasure(single); got != 0.0 {
		t.Errorf("HartleyMeasure(одно значение) = %v, ожидалось 0.0", got)
	}

	empty := &dataset.Column{Name: "c", Type: dataset.TypeString}
	if got := HartleyMeasure(empty); got != 0.0 {
		t.Errorf("HartleyMeasure(пустая) = %v, ожидалось 0.0", got)
	}
}

// TestCumulativePrivacyFactor проверяет совокупный фактор датасета
func TestCumulativePrivacyFactor(t *testing.T) {
	if got := cumulativePrivacyFactor(nil); got != 1.0 {
		t.Errorf("cumulativePrivacyFactor(nil) = %v, ожидалось 1.0", got)
	}

	if got := cumulativePrivacyFactor([]float64{0.5, 0.5}); math.Abs(got-0.25) > eps {
		t.Errorf("cumulativePrivacyFactor([0.5 0.5]) = %v, ожидалось 0.25", got)
	}

	// Нулевой фактор любой колонки обнуляет совокупный
	if got := cumulativePrivacyFactor([]float64{0.9, 0.0, 0.9}); got != 0.0 {
		t.Errorf("cumulativePrivacyFactor с нулем = %v, ожидалось 0.0", got)
	}

	// Широкий датасет не схлопывается в NaN и остается конечным
	wide := make([]float64, 10000)
	for i := range wide {
		wide[i] = 0.99
	}
	got := cumulativePrivacyFactor(wide)
	if math.IsNaN(got) || math.IsInf(got, 0) || got < 0 {
		t.Errorf("cumulativePrivacyFactor(широкий) = %v", got)
	}
}
