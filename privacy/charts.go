package privacy

import "privacyassist/dataset"

// ChartData числовые ряды для построения графиков внешним слоем отображения.
// Движок отдает только данные; рендеринг — забота потребителя.
type ChartData struct {
	Columns          []string       `json:"columns"`
	RiskScores       []float64      `json:"risk_scores"`
	UniquenessScores []float64      `json:"uniqueness_scores"`
	PrivacyFactors   []float64      `json:"privacy_factors"`
	ShannonEntropies []float64      `json:"shannon_entropies"`
	HartleyMeasures  []float64      `json:"hartley_measures"`
	RiskDistribution map[string]int `json:"risk_distribution"`
}

// buildChartData собирает ряды в порядке колонок датасета
func buildChartData(ds *dataset.Dataset, result *Result) *ChartData {
	chart := &ChartData{
		Columns:          make([]string, 0, len(ds.Columns)),
		RiskScores:       make([]float64, 0, len(ds.Columns)),
		UniquenessScores: make([]float64, 0, len(ds.Columns)),
		PrivacyFactors:   make([]float64, 0, len(ds.Columns)),
		ShannonEntropies: make([]float64, 0, len(ds.Columns)),
		HartleyMeasures:  make([]float64, 0, len(ds.Columns)),
		RiskDistribution: map[string]int{
			"high":   len(result.HighRiskColumns),
			"medium": len(result.MediumRiskColumns),
			"low":    len(result.LowRiskColumns),
		},
	}

	for i := range ds.Columns {
		name := ds.Columns[i].Name
		score := result.ColumnScores[name]
		chart.Columns = append(chart.Columns, name)
		chart.RiskScores = append(chart.RiskScores, score.PrivacyRiskScore)
		chart.UniquenessScores = append(chart.UniquenessScores, score.UniquenessScore)
		chart.PrivacyFactors = append(chart.PrivacyFactors, score.PrivacyFactor)
		chart.ShannonEntropies = append(chart.ShannonEntropies, score.ShannonEntropy)
		chart.HartleyMeasures = append(chart.HartleyMeasures, score.HartleyMeasure)
	}

	return chart
}
