package quality

import (
	"errors"
	"testing"
)

// TestOutlierDetector_CleanData проверяет, что на малых чистых данных
// выбросы не флагуются: floor(0.1*n) = 0 при n < 10
func TestOutlierDetector_CleanData(t *testing.T) {
	detector := NewOutlierDetector(outlierSeed)
	count, err := detector.CountOutliers([]float64{25, 30, 25})
	if err != nil {
		t.Fatalf("CountOutliers() вернул ошибку: %v", err)
	}
	if count != 0 {
		t.Errorf("CountOutliers() = %d, ожидалось 0", count)
	}
}

// TestOutlierDetector_Degenerate проверяет отказ на вырожденных входах
func TestOutlierDetector_Degenerate(t *testing.T) {
	detector := NewOutlierDetector(outlierSeed)

	if _, err := detector.CountOutliers(nil); !errors.Is(err, errDegenerateColumn) {
		t.Errorf("пустой вход: err = %v", err)
	}

	if _, err := detector.CountOutliers([]float64{5, 5, 5, 5}); !errors.Is(err, errDegenerateColumn) {
		t.Errorf("константный вход: err = %v", err)
	}
}

// TestOutlierDetector_FlagsExtreme проверяет, что экстремальное значение
// попадает в флагуемые
func TestOutlierDetector_FlagsExtreme(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 10 + float64(i%5)
	}
	values[99] = 1e6

	detector := NewOutlierDetector(outlierSeed)
	count, err := detector.CountOutliers(values)
	if err != nil {
		t.Fatalf("CountOutliers() вернул ошибку: %v", err)
	}

	// Флагуется ровно доля contamination
	if count == 0 {
		t.Error("экстремальное значение не поймано")
	}
	if count > 10 {
		t.Errorf("CountOutliers() = %d, флагуемых не может быть больше 10", count)
	}
}

// TestOutlierDetector_Deterministic проверяет воспроизводимость при
// фиксированном семени
func TestOutlierDetector_Deterministic(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = float64(i * i % 37)
	}

	first, err1 := NewOutlierDetector(outlierSeed).CountOutliers(values)
	second, err2 := NewOutlierDetector(outlierSeed).CountOutliers(values)
	if err1 != nil || err2 != nil {
		t.Fatalf("ошибки: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("результат не воспроизводится: %d != %d", first, second)
	}
}

// TestAvgPathLength проверяет поправочную функцию c(n)
func TestAvgPathLength(t *testing.T) {
	if got := avgPathLength(0); got != 0 {
		t.Errorf("avgPathLength(0) = %v", got)
	}
	if got := avgPathLength(1); got != 0 {
		t.Errorf("avgPathLength(1) = %v", got)
	}
	// c(n) растет с n
	if avgPathLength(256) <= avgPathLength(16) {
		t.Error("avgPathLength должна расти с размером выборки")
	}
}
