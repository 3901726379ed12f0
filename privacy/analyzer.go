package privacy

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"privacyassist/dataset"
)

// Пороги категоризации риска, общие для всех потребителей результата
const (
	highRiskThreshold   = 0.7
	mediumRiskThreshold = 0.3
)

// Веса составляющих риска: уникальность доминирует, так как основной
// фактор риска — возможность повторной идентификации, а не само
// присутствие чувствительных паттернов
const (
	uniquenessWeight    = 0.7
	sensitiveDataWeight = 0.3
)

// maxSamples максимум примеров значений, отбираемых с колонки для отображения
const maxSamples = 5

// ColumnScore метрики приватности одной колонки
type ColumnScore struct {
	PrivacyRiskScore   float64  `json:"privacy_risk_score"`
	UniquenessScore    float64  `json:"uniqueness_score"`
	SensitiveDataScore float64  `json:"sensitive_data_score"`
	SensitivityType    string   `json:"sensitivity_type"`
	Samples            []string `json:"samples"`
	PrivacyFactor      float64  `json:"privacy_factor"`
	ShannonEntropy     float64  `json:"shannon_entropy"`
	HartleyMeasure     float64  `json:"hartley_measure"`
}

// Result результат анализа приватности датасета
type Result struct {
	OverallPrivacyScore  float64                `json:"overall_privacy_score"`
	OverallPrivacyFactor float64                `json:"overall_privacy_factor"`
	AvgShannonEntropy    float64                `json:"avg_shannon_entropy"`
	AvgHartleyMeasure    float64                `json:"avg_hartley_measure"`
	RiskLevel            string                 `json:"risk_level"`
	Recommendations      []string               `json:"recommendations"`
	HighRiskColumns      []string               `json:"high_risk_columns"`
	MediumRiskColumns    []string               `json:"medium_risk_columns"`
	LowRiskColumns       []string               `json:"low_risk_columns"`
	TotalColumns         int                    `json:"total_columns"`
	ColumnScores         map[string]ColumnScore `json:"column_scores"`
}

// Analyzer движок оценки приватности. Таблица паттернов и источник
// случайности передаются при конструировании: никаких процессных синглтонов.
// Один анализатор обслуживает параллельные запросы, поэтому общий
// генератор случайных чисел защищен мьютексом.
type Analyzer struct {
	patterns *PatternTable

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAnalyzer создает анализатор с заданной таблицей паттернов и генератором
// случайных чисел для отбора примеров значений
func NewAnalyzer(patterns *PatternTable, rng *rand.Rand) *Analyzer {
	return &Analyzer{patterns: patterns, rng: rng}
}

// NewDefaultAnalyzer создает анализатор со стандартными паттернами и
// невоспроизводимым (посеянным от времени) источником случайности
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultPatterns(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Analyze выполняет анализ приватности датасета: по-колоночные риски,
// агрегаты уровня датасета и числовые ряды для построения графиков.
// Датасет не мутируется; пустой датасет дает нулевой общий риск.
func (a *Analyzer) Analyze(ds *dataset.Dataset) (*Result, *ChartData) {
	result := &Result{
		HighRiskColumns:   []string{},
		MediumRiskColumns: []string{},
		LowRiskColumns:    []string{},
		ColumnScores:      make(map[string]ColumnScore, len(ds.Columns)),
	}

	var (
		riskSum    float64
		entropySum float64
		hartleySum float64
		factors    []float64
	)

	for i := range ds.Columns {
		col := &ds.Columns[i]
		score := a.scoreColumn(col, ds.Rows())
		result.ColumnScores[col.Name] = score

		riskSum += score.PrivacyRiskScore
		entropySum += score.ShannonEntropy
		hartleySum += score.HartleyMeasure
		factors = append(factors, score.PrivacyFactor)

		switch {
		case score.PrivacyRiskScore > highRiskThreshold:
			result.HighRiskColumns = append(result.HighRiskColumns, col.Name)
		case score.PrivacyRiskScore > mediumRiskThreshold:
			result.MediumRiskColumns = append(result.MediumRiskColumns, col.Name)
		default:
			result.LowRiskColumns = append(result.LowRiskColumns, col.Name)
		}
	}

	result.TotalColumns = len(result.ColumnScores)
	result.OverallPrivacyFactor = cumulativePrivacyFactor(factors)

	if result.TotalColumns > 0 {
		n := float64(result.TotalColumns)
		result.OverallPrivacyScore = riskSum / n
		result.AvgShannonEntropy = entropySum / n
		result.AvgHartleyMeasure = hartleySum / n
	}

	result.RiskLevel = riskLevel(result.OverallPrivacyScore)
	result.Recommendations = riskRecommendations(result.RiskLevel)

	return result, buildChartData(ds, result)
}

// scoreColumn вычисляет метрики приватности одной колонки
func (a *Analyzer) scoreColumn(col *dataset.Column, rows int) ColumnScore {
	// Колонка с преобладанием пропусков не несет оцениваемого риска
	if col.MissingRatio() > maxMissingRatio {
		return ColumnScore{
			SensitivityType: "None",
			Samples:         []string{},
			PrivacyFactor:   1.0,
		}
	}

	uniqueness := 0.0
	if rows > 0 {
		uniqueness = math.Min(1.0, float64(col.DistinctCount())/float64(rows))
	}

	scan := a.patterns.Scan(col)
	sensitiveScore := 0.0
	if rows > 0 {
		sensitiveScore = math.Min(1.0, float64(scan.TotalMatches)/float64(rows))
	}

	return ColumnScore{
		PrivacyRiskScore:   uniquenessWeight*uniqueness + sensitiveDataWeight*sensitiveScore,
		UniquenessScore:    uniqueness,
		SensitiveDataScore: sensitiveScore,
		SensitivityType:    scan.SensitivityType,
		Samples:            a.sampleValues(col),
		PrivacyFactor:      PrivacyFactor(col),
		ShannonEntropy:     ShannonEntropy(col),
		HartleyMeasure:     HartleyMeasure(col),
	}
}

// sampleValues отбирает до пяти случайных непропущенных значений колонки
func (a *Analyzer) sampleValues(col *dataset.Column) []string {
	nonNull := col.NonNull()
	if len(nonNull) == 0 {
		return []string{}
	}

	a.mu.Lock()
	indices := a.rng.Perm(len(nonNull))
	a.mu.Unlock()
	count := maxSamples
	if len(nonNull) < count {
		count = len(nonNull)
	}

	samples := make([]string, 0, count)
	for _, idx := range indices[:count] {
		samples = append(samples, dataset.ValueKey(nonNull[idx]))
	}
	return samples
}

// riskLevel категоризует общий риск датасета
func riskLevel(overall float64) string {
	switch {
	case overall > highRiskThreshold:
		return "High Risk"
	case overall > mediumRiskThreshold:
		return "Medium Risk"
	default:
		return "Low Risk"
	}
}

// riskRecommendations возвращает рекомендации по снижению риска для уровня
func riskRecommendations(level string) []string {
	switch level {
	case "High Risk":
		return []string{
			"Apply data masking or tokenization to personally identifiable information",
			"Consider aggregating or generalizing sensitive fields",
			"Remove unique identifiers or replace with category values",
			"Implement k-anonymity to prevent re-identification",
			"Obtain explicit consent before sharing this dataset",
		}
	case "Medium Risk":
		return []string{
			"Review and transform high-risk fields to reduce identifiability",
			"Consider data generalization techniques (e.g., age ranges instead of exact ages)",
			"Document privacy measures taken for data sharing compliance",
			"Implement access controls when sharing this dataset",
		}
	default:
		return []string{
			"Document the privacy-preserving measures already in place",
			"Maintain current anonymization levels in future updates",
			"Consider periodic re-assessment if data structure changes",
		}
	}
}
