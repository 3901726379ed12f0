package quality

import (
	"sort"

	"privacyassist/dataset"
)

// AccuracyColumn по-колоночные метрики точности
type AccuracyColumn struct {
	OutlierCount      int     `json:"outlier_count"`
	OutlierPercentage float64 `json:"outlier_percentage"`
	AccuracyScore     float64 `json:"accuracy_score"`
}

// AccuracyResult результат измерения точности
type AccuracyResult struct {
	OverallScore  float64                   `json:"overall_score"`
	ColumnDetails map[string]AccuracyColumn `json:"column_details"`
}

// Score реализует DimensionResult
func (r *AccuracyResult) Score() float64 { return r.OverallScore }

// Accuracy измерение точности. Настоящая точность требует эталонных данных,
// поэтому в качестве прокси используется детекция выбросов по числовым
// колонкам: доля выбросов понижает скор. Нечисловые колонки получают 1.0.
type Accuracy struct{}

// Name реализует DimensionCalculator
func (Accuracy) Name() string { return DimensionAccuracy }

// Calculate оценивает точность каждой колонки через изолирующий лес.
// Пропуски заполняются медианой. Отказ детектора на вырожденной колонке
// не распространяется наружу: такая колонка получает скор 1.0.
func (Accuracy) Calculate(ds *dataset.Dataset) DimensionResult {
	result := &AccuracyResult{
		ColumnDetails: make(map[string]AccuracyColumn, len(ds.Columns)),
	}

	var scores []float64
	for i := range ds.Columns {
		col := &ds.Columns[i]
		detail := AccuracyColumn{AccuracyScore: 1.0}

		if col.IsNumeric() {
			detector := NewOutlierDetector(outlierSeed)
			outliers, err := detector.CountOutliers(imputeMedian(col))
			if err == nil && ds.Rows() > 0 {
				detail.OutlierCount = outliers
				detail.OutlierPercentage = float64(outliers) / float64(ds.Rows())
				detail.AccuracyScore = 1.0 - detail.OutlierPercentage
			}
		}

		result.ColumnDetails[col.Name] = detail
		scores = append(scores, detail.AccuracyScore)
	}

	result.OverallScore = meanScore(scores)
	return result
}

// imputeMedian возвращает значения числовой колонки с пропусками,
// замещенными медианой непропущенных значений
func imputeMedian(col *dataset.Column) []float64 {
	nonNull := col.Float64s()
	if len(nonNull) == 0 {
		return nil
	}

	sorted := append([]float64(nil), nonNull...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	values := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		switch n := v.(type) {
		case int64:
			values = append(values, float64(n))
		case float64:
			values = append(values, n)
		case nil:
			values = append(values, median)
		}
	}
	return values
}
