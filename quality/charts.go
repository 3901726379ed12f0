package quality

// ChartData числовые ряды для построения графиков внешним слоем отображения
type ChartData struct {
	Dimensions      []string  `json:"dimensions"`
	DimensionScores []float64 `json:"dimension_scores"`
	Weights         []float64 `json:"weights"`
	ConstraintPass  int       `json:"constraint_pass"`
	ConstraintFail  int       `json:"constraint_fail"`
}

// dimensionOrder фиксированный порядок измерений в рядах
var dimensionOrder = []string{
	DimensionCompleteness,
	DimensionAccuracy,
	DimensionValidity,
	DimensionUniqueness,
	DimensionIntegrity,
	DimensionConsistency,
}

// buildChartData собирает ряды скоров измерений в фиксированном порядке
func buildChartData(result *Result) *ChartData {
	chart := &ChartData{
		Dimensions:      make([]string, 0, len(dimensionOrder)),
		DimensionScores: make([]float64, 0, len(dimensionOrder)),
		Weights:         make([]float64, 0, len(dimensionOrder)),
	}

	for _, name := range dimensionOrder {
		dimension, ok := result.Dimensions[name]
		if !ok {
			continue
		}
		chart.Dimensions = append(chart.Dimensions, name)
		chart.DimensionScores = append(chart.DimensionScores, dimension.Score())
		chart.Weights = append(chart.Weights, DefaultWeights[name])
	}

	if result.CustomConstraints != nil {
		chart.ConstraintPass = result.CustomConstraints.PassCount
		chart.ConstraintFail = result.CustomConstraints.FailCount
	}

	return chart
}
