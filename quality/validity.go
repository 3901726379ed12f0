package quality

import (
	"math"

	"privacyassist/dataset"
)

// ValidityColumn по-колоночные метрики валидности
type ValidityColumn struct {
	InvalidCount  int     `json:"invalid_count"`
	ValidityScore float64 `json:"validity_score"`
}

// ValidityResult результат измерения валидности
type ValidityResult struct {
	OverallScore  float64                   `json:"overall_score"`
	ColumnDetails map[string]ValidityColumn `json:"column_details"`
}

// Score реализует DimensionResult
func (r *ValidityResult) Score() float64 { return r.OverallScore }

// Validity измерение валидности: соответствуют ли данные ожидаемым
// форматам и диапазонам своего типа
type Validity struct{}

// Name реализует DimensionCalculator
func (Validity) Name() string { return DimensionValidity }

// Calculate проверяет валидность по типу колонки: числовые — конечность
// значений, datetime — всегда валидны (уже распарсены), строковые — доля
// непустых строк. Остальные типы валидны по умолчанию.
func (Validity) Calculate(ds *dataset.Dataset) DimensionResult {
	result := &ValidityResult{
		ColumnDetails: make(map[string]ValidityColumn, len(ds.Columns)),
	}

	var scores []float64
	for i := range ds.Columns {
		col := &ds.Columns[i]
		detail := ValidityColumn{ValidityScore: 1.0}

		switch {
		case col.IsNumeric():
			nonNull := col.Float64s()
			for _, v := range nonNull {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					detail.InvalidCount++
				}
			}
			if len(nonNull) > 0 {
				detail.ValidityScore = 1.0 - float64(detail.InvalidCount)/float64(len(nonNull))
			}

		case col.Type == dataset.TypeString:
			// Пропуски считаются пустыми строками, как и явные ""
			for _, v := range col.Values {
				if s, ok := v.(string); !ok || s == "" {
					detail.InvalidCount++
				}
			}
			if len(col.Values) > 0 {
				detail.ValidityScore = 1.0 - float64(detail.InvalidCount)/float64(len(col.Values))
			}
		}

		result.ColumnDetails[col.Name] = detail
		scores = append(scores, detail.ValidityScore)
	}

	result.OverallScore = meanScore(scores)
	return result
}
