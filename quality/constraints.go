package quality

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"

	"privacyassist/dataset"
)

// ConstraintType тип пользовательского ограничения
type ConstraintType string

const (
	ConstraintNotNull     ConstraintType = "not_null"
	ConstraintUnique      ConstraintType = "unique"
	ConstraintMinValue    ConstraintType = "min_value"
	ConstraintMaxValue    ConstraintType = "max_value"
	ConstraintRegex       ConstraintType = "regex"
	ConstraintValueInList ConstraintType = "value_in_list"
	ConstraintDateFormat  ConstraintType = "date_format"
)

// defaultDateLayout формат даты по умолчанию для date_format
const defaultDateLayout = "2006-01-02"

// Constraint пользовательское ограничение на колонку. Неизменяемо после
// передачи в анализ.
type Constraint struct {
	Column string         `json:"column"`
	Type   ConstraintType `json:"type"`
	Value  string         `json:"value"`
}

// ConstraintResult результат проверки одного ограничения. pass_rate
// заполняется и при провале, чтобы потребитель мог показать частичный зачет.
type ConstraintResult struct {
	Column   string         `json:"column"`
	Type     ConstraintType `json:"type"`
	Value    string         `json:"value"`
	Passed   bool           `json:"passed"`
	Error    string         `json:"error"`
	PassRate float64        `json:"pass_rate"`
}

// ConstraintsSummary сводка по всем ограничениям
type ConstraintsSummary struct {
	Constraints  []ConstraintResult `json:"constraints"`
	OverallScore float64            `json:"overall_score"`
	PassCount    int                `json:"pass_count"`
	FailCount    int                `json:"fail_count"`
	TotalCount   int                `json:"total_count"`
}

// ConstraintEvaluator проверяет пользовательские ограничения на датасете.
// Не хранит состояния между вызовами: повторная проверка того же списка
// на тех же данных дает идентичную сводку. Никогда не возвращает ошибку —
// некорректные ограничения деградируют до passed=false с описанием.
type ConstraintEvaluator struct{}

// NewConstraintEvaluator создает evaluator ограничений
func NewConstraintEvaluator() *ConstraintEvaluator {
	return &ConstraintEvaluator{}
}

// Evaluate проверяет ограничения по порядку и собирает сводку.
// Пустой список дает overall_score = 1.0 и total_count = 0.
func (e *ConstraintEvaluator) Evaluate(ds *dataset.Dataset, constraints []Constraint) *ConstraintsSummary {
	summary := &ConstraintsSummary{
		Constraints:  make([]ConstraintResult, 0, len(constraints)),
		OverallScore: 1.0,
		TotalCount:   len(constraints),
	}

	for _, c := range constraints {
		result := ConstraintResult{Column: c.Column, Type: c.Type, Value: c.Value}

		col, ok := ds.Column(c.Column)
		if !ok {
			result.Error = "Column not found in dataset"
		} else {
			result.Passed, result.PassRate, result.Error = e.evaluateOne(ds, col, c)
		}

		summary.Constraints = append(summary.Constraints, result)
		if result.Passed {
			summary.PassCount++
		} else {
			summary.FailCount++
		}
	}

	if summary.TotalCount > 0 {
		summary.OverallScore = float64(summary.PassCount) / float64(summary.TotalCount)
	}

	return summary
}

// evaluateOne проверяет одно ограничение на существующей колонке
func (e *ConstraintEvaluator) evaluateOne(ds *dataset.Dataset, col *dataset.Column, c Constraint) (bool, float64, string) {
	switch c.Type {
	case ConstraintNotNull:
		return e.checkNotNull(ds, col)
	case ConstraintUnique:
		return e.checkUnique(col)
	case ConstraintMinValue:
		return e.checkBound(col, c.Value, true)
	case ConstraintMaxValue:
		return e.checkBound(col, c.Value, false)
	case ConstraintRegex:
		return e.checkRegex(col, c.Value)
	case ConstraintValueInList:
		return e.checkValueInList(col, c.Value)
	case ConstraintDateFormat:
		return e.checkDateFormat(col, c.Value)
	default:
		return false, 0.0, "Unknown constraint type"
	}
}

func (e *ConstraintEvaluator) checkNotNull(ds *dataset.Dataset, col *dataset.Column) (bool, float64, string) {
	passRate := 1.0
	if ds.Rows() > 0 {
		passRate = float64(col.NonNullCount()) / float64(ds.Rows())
	}
	if passRate == 1.0 {
		return true, 1.0, ""
	}
	return false, passRate, fmt.Sprintf("%d null values found", col.MissingCount())
}

func (e *ConstraintEvaluator) checkUnique(col *dataset.Column) (bool, float64, string) {
	distinct := col.DistinctCount()
	nonNull := col.NonNullCount()
	if distinct == nonNull {
		return true, 1.0, ""
	}
	return false, 0.0, fmt.Sprintf("%d duplicate values found", nonNull-distinct)
}

func (e *ConstraintEvaluator) checkBound(col *dataset.Column, value string, isMin bool) (bool, float64, string) {
	// Пустая граница трактуется как 0
	bound := 0.0
	if value != "" {
		var err error
		bound, err = cast.ToFloat64E(value)
		if err != nil {
			if isMin {
				return false, 0.0, "Invalid minimum value"
			}
			return false, 0.0, "Invalid maximum value"
		}
	}

	if !col.IsNumeric() {
		return false, 0.0, "Column is not numeric"
	}

	nonNull := col.Float64s()
	if len(nonNull) == 0 {
		return true, 1.0, ""
	}

	valid := 0
	for _, v := range nonNull {
		if (isMin && v >= bound) || (!isMin && v <= bound) {
			valid++
		}
	}

	passRate := float64(valid) / float64(len(nonNull))
	if passRate == 1.0 {
		return true, 1.0, ""
	}
	if isMin {
		return false, passRate, fmt.Sprintf("%d values below minimum", len(nonNull)-valid)
	}
	return false, passRate, fmt.Sprintf("%d values above maximum", len(nonNull)-valid)
}

func (e *ConstraintEvaluator) checkRegex(col *dataset.Column, value string) (bool, float64, string) {
	if value == "" {
		return false, 0.0, "No regex pattern provided"
	}
	if col.Type != dataset.TypeString {
		return false, 0.0, "Column is not string type"
	}

	// Совпадение с начала значения, а не поиск по подстроке
	re, err := regexp.Compile(`^(?:` + value + `)`)
	if err != nil {
		return false, 0.0, "Invalid regex pattern"
	}

	total := 0
	valid := 0
	for _, v := range col.Values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		total++
		if re.MatchString(s) {
			valid++
		}
	}

	if total == 0 {
		return true, 1.0, ""
	}
	passRate := float64(valid) / float64(total)
	if passRate == 1.0 {
		return true, 1.0, ""
	}
	return false, passRate, fmt.Sprintf("%d values don't match pattern", total-valid)
}

func (e *ConstraintEvaluator) checkValueInList(col *dataset.Column, value string) (bool, float64, string) {
	if value == "" {
		return false, 0.0, "No list of values provided"
	}

	parts := strings.Split(value, ",")
	allowed := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch {
		case col.Type == dataset.TypeInteger:
			n, err := cast.ToInt64E(p)
			if err != nil {
				return false, 0.0, "Invalid list format or type mismatch"
			}
			allowed[dataset.ValueKey(n)] = true
		case col.Type == dataset.TypeFloat:
			n, err := cast.ToFloat64E(p)
			if err != nil {
				return false, 0.0, "Invalid list format or type mismatch"
			}
			allowed[dataset.ValueKey(n)] = true
		default:
			allowed[p] = true
		}
	}

	total := 0
	valid := 0
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		total++
		if allowed[dataset.ValueKey(v)] {
			valid++
		}
	}

	if total == 0 {
		return true, 1.0, ""
	}
	passRate := float64(valid) / float64(total)
	if passRate == 1.0 {
		return true, 1.0, ""
	}
	return false, passRate, fmt.Sprintf("%d values not in allowed list", total-valid)
}

func (e *ConstraintEvaluator) checkDateFormat(col *dataset.Column, value string) (bool, float64, string) {
	layout := value
	if layout == "" {
		layout = defaultDateLayout
	}

	// Колонка уже распарсена как дата/время — формат заведомо соблюден
	if col.Type == dataset.TypeDatetime {
		return true, 1.0, ""
	}

	total := 0
	valid := 0
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		total++
		if _, err := time.Parse(layout, dataset.ValueKey(v)); err == nil {
			valid++
		}
	}

	if total == 0 {
		return true, 1.0, ""
	}
	passRate := float64(valid) / float64(total)
	if passRate == 1.0 {
		return true, 1.0, ""
	}
	return false, passRate, fmt.Sprintf("%d values don't match date format", total-valid)
}
