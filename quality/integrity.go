package quality

import (
	"strings"

	"privacyassist/dataset"
)

// idNameTerms подстроки имени колонки, указывающие на идентификатор
var idNameTerms = []string{"id", "key", "code", "num", "uuid"}

// idUniqueRatioThreshold доля уникальных значений, с которой колонка
// считается потенциальным идентификатором независимо от имени
const idUniqueRatioThreshold = 0.9

// Веса агрегации: потенциальные ID-колонки важнее для связности данных
const (
	idColumnsWeight    = 0.7
	otherColumnsWeight = 0.3
)

// IntegrityColumn по-колоночные метрики целостности
type IntegrityColumn struct {
	IsPotentialID  bool    `json:"is_potential_id"`
	UniqueRatio    float64 `json:"unique_ratio"`
	NullCount      int     `json:"null_count"`
	IntegrityScore float64 `json:"integrity_score"`
}

// IntegrityResult результат измерения целостности
type IntegrityResult struct {
	OverallScore       float64                    `json:"overall_score"`
	PotentialIDColumns []string                   `json:"potential_id_columns"`
	ColumnDetails      map[string]IntegrityColumn `json:"column_details"`
}

// Score реализует DimensionResult
func (r *IntegrityResult) Score() float64 { return r.OverallScore }

// Integrity измерение целостности. Полная проверка ссылочной целостности
// требует знания связей между таблицами, поэтому эвристика выделяет
// потенциальные колонки-идентификаторы и оценивает их заполненность.
type Integrity struct{}

// Name реализует DimensionCalculator
func (Integrity) Name() string { return DimensionIntegrity }

// Calculate помечает ID-подобные колонки (по имени или по доле уникальных
// значений) и считает скор как заполненность. Общий скор — 70/30 между
// ID-колонками и остальными, если ID-колонки найдены.
func (Integrity) Calculate(ds *dataset.Dataset) DimensionResult {
	result := &IntegrityResult{
		PotentialIDColumns: []string{},
		ColumnDetails:      make(map[string]IntegrityColumn, len(ds.Columns)),
	}

	var idScores, otherScores []float64
	for i := range ds.Columns {
		col := &ds.Columns[i]

		uniqueRatio := 0.0
		if nonNull := col.NonNullCount(); nonNull > 0 {
			uniqueRatio = float64(col.DistinctCount()) / float64(nonNull)
		}

		nullCount := col.MissingCount()
		score := 1.0
		if ds.Rows() > 0 {
			score = 1.0 - float64(nullCount)/float64(ds.Rows())
		}

		isPotentialID := isIDName(col.Name)
		detail := IntegrityColumn{
			IsPotentialID:  isPotentialID,
			UniqueRatio:    uniqueRatio,
			NullCount:      nullCount,
			IntegrityScore: score,
		}
		result.ColumnDetails[col.Name] = detail

		if isPotentialID || uniqueRatio > idUniqueRatioThreshold {
			result.PotentialIDColumns = append(result.PotentialIDColumns, col.Name)
			idScores = append(idScores, score)
		} else {
			otherScores = append(otherScores, score)
		}
	}

	switch {
	case len(idScores) > 0 && len(otherScores) > 0:
		result.OverallScore = idColumnsWeight*meanScore(idScores) + otherColumnsWeight*meanScore(otherScores)
	case len(idScores) > 0:
		result.OverallScore = meanScore(idScores)
	default:
		result.OverallScore = meanScore(otherScores)
	}

	return result
}

// isIDName проверяет имя колонки на признаки идентификатора
func isIDName(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range idNameTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
