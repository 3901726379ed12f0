package quality

import "privacyassist/dataset"

// CompletenessColumn по-колоночные метрики полноты
type CompletenessColumn struct {
	MissingCount      int     `json:"missing_count"`
	MissingPercentage float64 `json:"missing_percentage"`
	CompletenessScore float64 `json:"completeness_score"`
}

// CompletenessResult результат измерения полноты
type CompletenessResult struct {
	OverallScore    float64                       `json:"overall_score"`
	TotalCells      int                           `json:"total_cells"`
	NonMissingCells int                           `json:"non_missing_cells"`
	MissingCells    int                           `json:"missing_cells"`
	ColumnDetails   map[string]CompletenessColumn `json:"column_details"`
}

// Score реализует DimensionResult
func (r *CompletenessResult) Score() float64 { return r.OverallScore }

// Completeness измерение полноты: есть ли в данных пропуски и пробелы
type Completeness struct{}

// Name реализует DimensionCalculator
func (Completeness) Name() string { return DimensionCompleteness }

// Calculate считает долю заполненных значений по колонкам и по таблице целиком
func (Completeness) Calculate(ds *dataset.Dataset) DimensionResult {
	result := &CompletenessResult{
		ColumnDetails: make(map[string]CompletenessColumn, len(ds.Columns)),
	}

	for i := range ds.Columns {
		col := &ds.Columns[i]
		missing := col.MissingCount()
		missingPct := 0.0
		if ds.Rows() > 0 {
			missingPct = float64(missing) / float64(ds.Rows())
		}
		result.ColumnDetails[col.Name] = CompletenessColumn{
			MissingCount:      missing,
			MissingPercentage: missingPct,
			CompletenessScore: 1.0 - missingPct,
		}
	}

	result.TotalCells = ds.TotalCells()
	result.MissingCells = ds.MissingCells()
	result.NonMissingCells = result.TotalCells - result.MissingCells

	// Общий скор — доля заполненных ячеек всей таблицы; на прямоугольной
	// таблице совпадает со средним по-колоночных скоров
	if result.TotalCells > 0 {
		result.OverallScore = float64(result.NonMissingCells) / float64(result.TotalCells)
	} else {
		result.OverallScore = 1.0
	}

	return result
}
