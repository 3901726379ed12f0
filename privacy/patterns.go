package privacy

import (
	"regexp"
	"strings"

	"privacyassist/dataset"
)

// maxMissingRatio порог пропусков, после которого колонка не анализируется
const maxMissingRatio = 0.5

// namedPattern именованное регулярное выражение чувствительных данных
type namedPattern struct {
	name string
	re   *regexp.Regexp
}

// PatternTable неизменяемая таблица паттернов чувствительных данных.
// Создается один раз и передается в анализатор при конструировании.
type PatternTable struct {
	patterns []namedPattern
}

// DefaultPatterns возвращает стандартную таблицу паттернов: email, телефон,
// номер карты, национальный идентификатор, адрес, дата рождения, IPv4.
// Порядок фиксирован и определяет порядок имен в sensitivity_type.
func DefaultPatterns() *PatternTable {
	return &PatternTable{patterns: []namedPattern{
		{"email", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)},
		{"phone", regexp.MustCompile(`\b(\+\d{1,3}[- ]?)?\(?\d{3}\)?[- ]?\d{3}[- ]?\d{4}\b`)},
		{"credit_card", regexp.MustCompile(`\b(?:\d{4}[- ]?){3}\d{4}\b`)},
		{"national_id", regexp.MustCompile(`\b[STFG]\d{7}[A-Z]\b`)},
		{"address", regexp.MustCompile(`\b\d+\s+[A-Za-z]+\s+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd)\b`)},
		{"date_of_birth", regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)},
		{"ip_address", regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
	}}
}

// ScanResult результат сканирования колонки на чувствительные данные
type ScanResult struct {
	// TotalMatches суммарное число строк, совпавших хотя бы с одним паттерном
	// (строка учитывается по одному разу на каждый совпавший паттерн)
	TotalMatches int
	// SensitivityType имена совпавших паттернов через запятую, либо "None"
	SensitivityType string
}

// Scan сканирует колонку по всем паттернам. Нестроковые колонки и колонки
// с долей пропусков выше 50% пропускаются и возвращаются как нулевой результат.
func (t *PatternTable) Scan(col *dataset.Column) ScanResult {
	result := ScanResult{SensitivityType: "None"}

	if col.Type != dataset.TypeString || col.MissingRatio() > maxMissingRatio {
		return result
	}

	var matched []string
	for _, p := range t.patterns {
		count := 0
		for _, v := range col.Values {
			s, ok := v.(string)
			if !ok {
				continue
			}
			// contains-совпадение, не полное совпадение строки
			if p.re.MatchString(s) {
				count++
			}
		}
		if count > 0 {
			result.TotalMatches += count
			matched = append(matched, p.name)
		}
	}

	if len(matched) > 0 {
		result.SensitivityType = strings.Join(matched, ", ")
	}

	return result
}
