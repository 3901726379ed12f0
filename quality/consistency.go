package quality

import (
	"math"
	"unicode"

	"privacyassist/dataset"
)

// ConsistencyColumn по-колоночные метрики согласованности
type ConsistencyColumn struct {
	CaseConsistencyScore   float64 `json:"case_consistency_score"`
	FormatConsistencyScore float64 `json:"format_consistency_score"`
	LowercaseCount         int     `json:"lowercase_count"`
	UppercaseCount         int     `json:"uppercase_count"`
	MixedCaseCount         int     `json:"mixed_case_count"`
	IntegerCount           int     `json:"integer_count"`
	FloatCount             int     `json:"float_count"`
}

// ConsistencyResult результат измерения согласованности
type ConsistencyResult struct {
	OverallScore  float64                      `json:"overall_score"`
	ColumnDetails map[string]ConsistencyColumn `json:"column_details"`
}

// Score реализует DimensionResult
func (r *ConsistencyResult) Score() float64 { return r.OverallScore }

// Consistency измерение согласованности: однородны ли представления значений.
// Для строк сравниваются регистры написания, для чисел — целые против дробных.
// Вознаграждается преобладающий вариант, каким бы он ни был.
type Consistency struct{}

// Name реализует DimensionCalculator
func (Consistency) Name() string { return DimensionConsistency }

// Calculate считает для каждой колонки скор регистра и скор формата,
// каждая колонка вносит в общий скор обе величины
func (Consistency) Calculate(ds *dataset.Dataset) DimensionResult {
	result := &ConsistencyResult{
		ColumnDetails: make(map[string]ConsistencyColumn, len(ds.Columns)),
	}

	var scores []float64
	for i := range ds.Columns {
		col := &ds.Columns[i]
		detail := ConsistencyColumn{
			CaseConsistencyScore:   1.0,
			FormatConsistencyScore: 1.0,
		}

		switch {
		case col.Type == dataset.TypeString:
			nonNull := 0
			for _, v := range col.Values {
				s, ok := v.(string)
				if !ok {
					continue
				}
				nonNull++
				switch {
				case isLowerString(s):
					detail.LowercaseCount++
				case isUpperString(s):
					detail.UppercaseCount++
				default:
					detail.MixedCaseCount++
				}
			}
			if nonNull > 0 {
				dominant := maxInt(detail.LowercaseCount, detail.UppercaseCount, detail.MixedCaseCount)
				detail.CaseConsistencyScore = float64(dominant) / float64(nonNull)
			}

		case col.IsNumeric():
			nonNull := col.Float64s()
			for _, v := range nonNull {
				if v == math.Trunc(v) {
					detail.IntegerCount++
				} else {
					detail.FloatCount++
				}
			}
			if len(nonNull) > 0 {
				dominant := maxInt(detail.IntegerCount, detail.FloatCount)
				detail.FormatConsistencyScore = float64(dominant) / float64(len(nonNull))
			}
		}

		result.ColumnDetails[col.Name] = detail
		scores = append(scores, detail.CaseConsistencyScore, detail.FormatConsistencyScore)
	}

	result.OverallScore = meanScore(scores)
	return result
}

// isLowerString истинно, если все буквенные символы в нижнем регистре
// и есть хотя бы один буквенный символ
func isLowerString(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasCased = true
		}
	}
	return hasCased
}

// isUpperString истинно, если все буквенные символы в верхнем регистре
// и есть хотя бы один буквенный символ
func isUpperString(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func maxInt(values ...int) int {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
