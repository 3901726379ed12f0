package quality

import "privacyassist/dataset"

// UniquenessColumn по-колоночные метрики уникальности
type UniquenessColumn struct {
	DuplicateCount   int     `json:"duplicate_count"`
	UniquePercentage float64 `json:"unique_percentage"`
	UniquenessScore  float64 `json:"uniqueness_score"`
}

// UniquenessResult результат измерения уникальности
type UniquenessResult struct {
	OverallScore       float64                     `json:"overall_score"`
	DuplicateRows      int                         `json:"duplicate_rows"`
	RowUniquenessScore float64                     `json:"row_uniqueness_score"`
	ColumnDetails      map[string]UniquenessColumn `json:"column_details"`
}

// Score реализует DimensionResult
func (r *UniquenessResult) Score() float64 { return r.OverallScore }

// Uniqueness измерение уникальности: свободны ли данные от непреднамеренных
// дубликатов на уровне значений колонок и целых строк
type Uniqueness struct{}

// Name реализует DimensionCalculator
func (Uniqueness) Name() string { return DimensionUniqueness }

// Calculate считает дубликаты значений в каждой колонке и строки-дубликаты.
// Общий скор — среднее по-колоночных скоров вместе со строчным.
func (Uniqueness) Calculate(ds *dataset.Dataset) DimensionResult {
	result := &UniquenessResult{
		RowUniquenessScore: 1.0,
		ColumnDetails:      make(map[string]UniquenessColumn, len(ds.Columns)),
	}

	var scores []float64
	for i := range ds.Columns {
		col := &ds.Columns[i]
		freq := col.Frequencies()
		nonNull := col.NonNullCount()

		// Повторные вхождения значений: для значения с частотой f>1
		// дубликатами считаются f-1 вхождений
		duplicates := 0
		for _, f := range freq {
			if f > 1 {
				duplicates += f - 1
			}
		}

		detail := UniquenessColumn{
			DuplicateCount:   duplicates,
			UniquePercentage: 1.0,
			UniquenessScore:  1.0,
		}
		if nonNull > 0 {
			detail.UniquePercentage = float64(len(freq)) / float64(nonNull)
			detail.UniquenessScore = 1.0 - float64(duplicates)/float64(nonNull)
		}

		result.ColumnDetails[col.Name] = detail
		scores = append(scores, detail.UniquenessScore)
	}

	result.DuplicateRows = ds.DuplicateRowCount()
	if ds.Rows() > 0 {
		result.RowUniquenessScore = 1.0 - float64(result.DuplicateRows)/float64(ds.Rows())
	}

	if len(scores) == 0 {
		result.OverallScore = 1.0
	} else {
		result.OverallScore = meanScore(append(scores, result.RowUniquenessScore))
	}

	return result
}
