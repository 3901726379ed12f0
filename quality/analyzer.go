package quality

import "privacyassist/dataset"

// DefaultWeights фиксированные веса измерений, в сумме дают 1.0.
// Общие для всех потребителей: не пересчитываются под датасет.
var DefaultWeights = map[string]float64{
	DimensionCompleteness: 0.25,
	DimensionAccuracy:     0.20,
	DimensionValidity:     0.15,
	DimensionUniqueness:   0.15,
	DimensionIntegrity:    0.10,
	DimensionConsistency:  0.15,
}

// CompletenessLegacy плоский блок полноты, сохраняемый для обратной
// совместимости со старыми потребителями отчета
type CompletenessLegacy struct {
	CompletenessScore float64 `json:"completeness_score"`
	TotalCells        int     `json:"total_cells"`
	NonMissingCells   int     `json:"non_missing_cells"`
	MissingCells      int     `json:"missing_cells"`
}

// Result результат анализа качества датасета
type Result struct {
	OverallQualityScore float64                    `json:"overall_quality_score"`
	Dimensions          map[string]DimensionResult `json:"dimensions"`
	CustomConstraints   *ConstraintsSummary        `json:"custom_constraints"`

	// Плоские поля для обратной совместимости
	MissingScore     float64            `json:"missing_score"`
	OutlierScore     float64            `json:"outlier_score"`
	ConsistencyScore float64            `json:"consistency_score"`
	Completeness     CompletenessLegacy `json:"completeness"`
}

// Analyzer движок оценки качества данных. Оркестрирует шесть калькуляторов
// измерений и evaluator пользовательских ограничений; владеет таблицей весов.
type Analyzer struct {
	calculators []DimensionCalculator
	weights     map[string]float64
	evaluator   *ConstraintEvaluator
}

// NewAnalyzer создает анализатор со стандартным набором измерений и весов
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		calculators: []DimensionCalculator{
			Completeness{},
			Accuracy{},
			Validity{},
			Uniqueness{},
			Integrity{},
			Consistency{},
		},
		weights:   DefaultWeights,
		evaluator: NewConstraintEvaluator(),
	}
}

// Analyze выполняет анализ качества по шести измерениям и пользовательским
// ограничениям. Общий скор — взвешенная сумма скоров измерений.
// Датасет не мутируется; constraints может быть nil.
func (a *Analyzer) Analyze(ds *dataset.Dataset, constraints []Constraint) (*Result, *ChartData) {
	result := &Result{
		Dimensions: make(map[string]DimensionResult, len(a.calculators)),
	}

	for _, calc := range a.calculators {
		dimension := calc.Calculate(ds)
		result.Dimensions[calc.Name()] = dimension
		result.OverallQualityScore += a.weights[calc.Name()] * dimension.Score()
	}

	result.CustomConstraints = a.evaluator.Evaluate(ds, constraints)

	// Плоские поля для старых потребителей отчета
	result.MissingScore = result.Dimensions[DimensionCompleteness].Score()
	result.OutlierScore = result.Dimensions[DimensionAccuracy].Score()
	result.ConsistencyScore = result.Dimensions[DimensionConsistency].Score()
	if completeness, ok := result.Dimensions[DimensionCompleteness].(*CompletenessResult); ok {
		result.Completeness = CompletenessLegacy{
			CompletenessScore: completeness.OverallScore,
			TotalCells:        completeness.TotalCells,
			NonMissingCells:   completeness.NonMissingCells,
			MissingCells:      completeness.MissingCells,
		}
	}

	return result, buildChartData(result)
}
