package privacy

import (
	"math"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"privacyassist/dataset"
)

// newTestAnalyzer создает анализатор с воспроизводимым источником случайности
func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultPatterns(), rand.New(rand.NewSource(1)))
}

// TestAnalyzer_Analyze проверяет сквозной сценарий: уникальные email
// против повторяющихся возрастов
func TestAnalyzer_Analyze(t *testing.T) {
	ds, err := dataset.New([]dataset.Column{
		{Name: "email", Type: dataset.TypeString, Values: []any{
			"alice@example.com", "bob@example.com", "carol@example.com", "dave@example.com",
		}},
		{Name: "age", Type: dataset.TypeInteger, Values: []any{
			int64(30), int64(30), int64(30), int64(30),
		}},
	})
	if err != nil {
		t.Fatalf("dataset.New() вернул ошибку: %v", err)
	}

	result, charts := newTestAnalyzer().Analyze(ds)

	email := result.ColumnScores["email"]
	// Все значения уникальны и каждое совпадает с паттерном email:
	// риск = 0.7*1.0 + 0.3*1.0 = 1.0
	if math.Abs(email.PrivacyRiskScore-1.0) > 1e-9 {
		t.Errorf("риск email = %v, ожидалось 1.0", email.PrivacyRiskScore)
	}
	if email.SensitivityType != "email" {
		t.Errorf("SensitivityType email = %q", email.SensitivityType)
	}
	if email.PrivacyFactor != 0.0 {
		t.Errorf("PrivacyFactor email = %v, ожидалось 0.0", email.PrivacyFactor)
	}

	age := result.ColumnScores["age"]
	// Одно уникальное значение на 4 строки: риск = 0.7*0.25 = 0.175
	if math.Abs(age.PrivacyRiskScore-0.175) > 1e-9 {
		t.Errorf("риск age = %v, ожидалось 0.175", age.PrivacyRiskScore)
	}
	if age.ShannonEntropy != 0.0 {
		t.Errorf("ShannonEntropy age = %v, ожидалось 0.0", age.ShannonEntropy)
	}

	if !reflect.DeepEqual(result.HighRiskColumns, []string{"email"}) {
		t.Errorf("HighRiskColumns = %v", result.HighRiskColumns)
	}
	if !reflect.DeepEqual(result.LowRiskColumns, []string{"age"}) {
		t.Errorf("LowRiskColumns = %v", result.LowRiskColumns)
	}
	if result.TotalColumns != 2 {
		t.Errorf("TotalColumns = %d", result.TotalColumns)
	}

	// Общий риск — среднее по колонкам
	want := (1.0 + 0.175) / 2
	if math.Abs(result.OverallPrivacyScore-want) > 1e-9 {
		t.Errorf("OverallPrivacyScore = %v, ожидалось %v", result.OverallPrivacyScore, want)
	}
	if result.RiskLevel != "Medium Risk" {
		t.Errorf("RiskLevel = %q", result.RiskLevel)
	}
	if len(result.Recommendations) == 0 {
		t.Error("Recommendations пуст")
	}

	if charts == nil || len(charts.Columns) != 2 {
		t.Fatalf("ChartData = %+v", charts)
	}
	if charts.RiskDistribution["high"] != 1 || charts.RiskDistribution["low"] != 1 {
		t.Errorf("RiskDistribution = %v", charts.RiskDistribution)
	}
}

// TestAnalyzer_Analyze_Empty проверяет пустой датасет
func TestAnalyzer_Analyze_Empty(t *testing.T) {
	ds, _ := dataset.New(nil)
	result, charts := newTestAnalyzer().Analyze(ds)

	if result.OverallPrivacyScore != 0.0 {
		t.Errorf("OverallPrivacyScore = %v, ожидалось 0.0", result.OverallPrivacyScore)
	}
	if result.OverallPrivacyFactor != 1.0 {
		t.Errorf("OverallPrivacyFactor = %v, ожидалось 1.0", result.OverallPrivacyFactor)
	}
	if result.RiskLevel != "Low Risk" {
		t.Errorf("RiskLevel = %q", result.RiskLevel)
	}
	if len(charts.Columns) != 0 {
		t.Errorf("ChartData.Columns = %v", charts.Columns)
	}
}

// TestAnalyzer_MostlyMissingColumn проверяет короткое замыкание колонки
// с преобладанием пропусков
func TestAnalyzer_MostlyMissingColumn(t *testing.T) {
	ds, _ := dataset.New([]dataset.Column{
		{Name: "sparse", Type: dataset.TypeString, Values: []any{"alice@example.com", nil, nil, nil}},
	})

	result, _ := newTestAnalyzer().Analyze(ds)
	score := result.ColumnScores["sparse"]

	if score.PrivacyRiskScore != 0.0 || score.UniquenessScore != 0.0 || score.SensitiveDataScore != 0.0 {
		t.Errorf("метрики риска = %+v, ожидались нули", score)
	}
	if score.PrivacyFactor != 1.0 {
		t.Errorf("PrivacyFactor = %v, ожидалось 1.0", score.PrivacyFactor)
	}
	if score.ShannonEntropy != 0.0 || score.HartleyMeasure != 0.0 {
		t.Errorf("энтропийные метрики = %+v, ожидались нули", score)
	}
	if score.SensitivityType != "None" {
		t.Errorf("SensitivityType = %q", score.SensitivityType)
	}
	if len(score.Samples) != 0 {
		t.Errorf("Samples = %v, ожидался пустой список", score.Samples)
	}
}

// TestAnalyzer_Samples проверяет отбор примеров значений
func TestAnalyzer_Samples(t *testing.T) {
	values := make([]any, 20)
	for i := range values {
		values[i] = string(rune('a' + i))
	}
	ds, _ := dataset.New([]dataset.Column{
		{Name: "c", Type: dataset.TypeString, Values: values},
	})

	result, _ := newTestAnalyzer().Analyze(ds)
	samples := result.ColumnScores["c"].Samples
	if len(samples) != 5 {
		t.Errorf("len(Samples) = %d, ожидалось 5", len(samples))
	}

	// Колонка короче лимита: отбираются все значения
	short, _ := dataset.New([]dataset.Column{
		{Name: "c", Type: dataset.TypeString, Values: []any{"x", "y"}},
	})
	result, _ = newTestAnalyzer().Analyze(short)
	if got := len(result.ColumnScores["c"].Samples); got != 2 {
		t.Errorf("len(Samples) короткой колонки = %d, ожидалось 2", got)
	}
}

// TestAnalyzer_Deterministic проверяет воспроизводимость при фиксированном семени
func TestAnalyzer_Deterministic(t *testing.T) {
	values := make([]any, 50)
	for i := range values {
		values[i] = string(rune('a'+i%26)) + string(rune('0'+i%10))
	}
	build := func() *dataset.Dataset {
		ds, _ := dataset.New([]dataset.Column{
			{Name: "c", Type: dataset.TypeString, Values: values},
		})
		return ds
	}

	first, _ := NewAnalyzer(DefaultPatterns(), rand.New(rand.NewSource(7))).Analyze(build())
	second, _ := NewAnalyzer(DefaultPatterns(), rand.New(rand.NewSource(7))).Analyze(build())

	if !reflect.DeepEqual(first.ColumnScores["c"].Samples, second.ColumnScores["c"].Samples) {
		t.Errorf("примеры не воспроизводятся: %v != %v",
			first.ColumnScores["c"].Samples, second.ColumnScores["c"].Samples)
	}
}

// TestNewDefaultAnalyzer проверяет анализатор со стандартными паттернами
// и посевом от времени
func TestNewDefaultAnalyzer(t *testing.T) {
	analyzer := NewDefaultAnalyzer()
	if analyzer == nil {
		t.Fatal("NewDefaultAnalyzer() вернул nil")
	}

	ds, _ := dataset.New([]dataset.Column{
		{Name: "email", Type: dataset.TypeString, Values: []any{"a@b.com", "c@d.org"}},
	})
	result, _ := analyzer.Analyze(ds)
	if result.ColumnScores["email"].SensitivityType != "email" {
		t.Errorf("SensitivityType = %q", result.ColumnScores["email"].SensitivityType)
	}
	if got := len(result.ColumnScores["email"].Samples); got != 2 {
		t.Errorf("len(Samples) = %d, ожидалось 2", got)
	}
}

// TestAnalyzer_ConcurrentAnalyze проверяет, что один анализатор безопасно
// обслуживает параллельные запросы: общий генератор случайных чисел
// защищен мьютексом
func TestAnalyzer_ConcurrentAnalyze(t *testing.T) {
	values := make([]any, 30)
	for i := range values {
		values[i] = string(rune('a'+i%26)) + string(rune('0'+i%10))
	}
	ds, _ := dataset.New([]dataset.Column{
		{Name: "c", Type: dataset.TypeString, Values: values},
	})

	analyzer := newTestAnalyzer()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				result, _ := analyzer.Analyze(ds)
				if got := len(result.ColumnScores["c"].Samples); got != 5 {
					t.Errorf("len(Samples) = %d, ожидалось 5", got)
				}
			}
		}()
	}
	wg.Wait()
}

// TestRiskLevel проверяет категоризацию общего риска, включая границы
func TestRiskLevel(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.85, "High Risk"},
		{0.7, "Medium Risk"},
		{0.5, "Medium Risk"},
		{0.3, "Low Risk"},
		{0.1, "Low Risk"},
		{0.0, "Low Risk"},
	}
	for _, tc := range cases {
		if got := riskLevel(tc.score); got != tc.want {
			t.Errorf("riskLevel(%v) = %q, ожидалось %q", tc.score, got, tc.want)
		}
	}
}

// TestColumnScore_Bounds проверяет, что все метрики остаются в допустимых
// диапазонах на разнородном датасете
func TestColumnScore_Bounds(t *testing.T) {
	ds, _ := dataset.New([]dataset.Column{
		{Name: "id", Type: dataset.TypeInteger, Values: []any{int64(1), int64(2), int64(3)}},
		{Name: "email", Type: dataset.TypeString, Values: []any{"a@b.com", "a@b.com", "c@d.org"}},
		{Name: "flag", Type: dataset.TypeBoolean, Values: []any{true, false, true}},
	})

	result, _ := newTestAnalyzer().Analyze(ds)
	for name, score := range result.ColumnScores {
		if score.PrivacyRiskScore < 0 || score.PrivacyRiskScore > 1 {
			t.Errorf("риск %s = %v вне [0,1]", name, score.PrivacyRiskScore)
		}
		if score.UniquenessScore < 0 || score.UniquenessScore > 1 {
			t.Errorf("уникальность %s = %v вне [0,1]", name, score.UniquenessScore)
		}
		if score.PrivacyFactor < 0 || score.PrivacyFactor > 1 {
			t.Errorf("фактор %s = %v вне [0,1]", name, score.PrivacyFactor)
		}
		if math.IsNaN(score.ShannonEntropy) || math.IsNaN(score.HartleyMeasure) {
			t.Errorf("NaN в метриках %s", name)
		}
	}
}
