package dataset

import (
	"fmt"
	"math"
	"time"
)

// datetimeLayouts форматы, в которых распознаются значения даты/времени
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

// ParseType разбирает объявленный тип колонки из запроса
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeInteger, TypeFloat, TypeString, TypeBoolean, TypeDatetime:
		return Type(s), nil
	default:
		return "", fmt.Errorf("неизвестный тип колонки: %q", s)
	}
}

// InferColumn строит колонку из сырых JSON-значений. Если declaredType пуст,
// тип выводится из значений: сначала пробуем boolean, затем integer, float,
// datetime, и в последнюю очередь string.
func InferColumn(name string, declaredType string, raw []any) (Column, error) {
	col := Column{Name: name}

	if declaredType != "" {
		t, err := ParseType(declaredType)
		if err != nil {
			return col, err
		}
		col.Type = t
	} else {
		col.Type = inferType(raw)
	}

	values := make([]any, len(raw))
	for i, v := range raw {
		if v == nil {
			continue
		}
		converted, err := convertValue(v, col.Type)
		if err != nil {
			return col, fmt.Errorf("колонка %q, строка %d: %w", name, i, err)
		}
		values[i] = converted
	}
	col.Values = values

	return col, nil
}

// inferType выводит тип колонки по непропущенным значениям
func inferType(raw []any) Type {
	allBool := true
	allInt := true
	allNumeric := true
	allDatetime := true
	sawValue := false

	for _, v := range raw {
		if v == nil {
			continue
		}
		sawValue = true

		switch t := v.(type) {
		case bool:
			allNumeric = false
			allInt = false
			allDatetime = false
		case float64:
			allBool = false
			allDatetime = false
			if t != math.Trunc(t) {
				allInt = false
			}
		case string:
			allBool = false
			allNumeric = false
			allInt = false
			if _, ok := parseDatetime(t); !ok {
				allDatetime = false
			}
		default:
			allBool = false
			allNumeric = false
			allInt = false
			allDatetime = false
		}
	}

	switch {
	case !sawValue:
		return TypeString
	case allBool:
		return TypeBoolean
	case allInt:
		return TypeInteger
	case allNumeric:
		return TypeFloat
	case allDatetime:
		return TypeDatetime
	default:
		return TypeString
	}
}

// convertValue приводит JSON-значение к внутреннему представлению типа колонки
func convertValue(v any, t Type) (any, error) {
	switch t {
	case TypeInteger:
		switch n := v.(type) {
		case float64:
			return int64(n), nil
		case int64:
			return n, nil
		}
		return nil, fmt.Errorf("значение %v не является целым числом", v)

	case TypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		}
		return nil, fmt.Errorf("значение %v не является числом", v)

	case TypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("значение %v не является булевым", v)

	case TypeDatetime:
		switch d := v.(type) {
		case time.Time:
			return d, nil
		case string:
			if ts, ok := parseDatetime(d); ok {
				return ts, nil
			}
		}
		return nil, fmt.Errorf("значение %v не распознано как дата/время", v)

	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return ValueKey(v), nil
	}

	return nil, fmt.Errorf("неизвестный тип колонки: %q", t)
}

// parseDatetime пытается разобрать строку по известным форматам
func parseDatetime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ColumnSummary сводка по одной колонке для ответа API
type ColumnSummary struct {
	Name             string  `json:"name"`
	Type             Type    `json:"type"`
	UniqueValues     int     `json:"unique_values"`
	UniquePercentage float64 `json:"unique_percentage"`
	MissingCount     int     `json:"missing_count"`
	MissingRatio     float64 `json:"missing_ratio"`
}

// Summary сводка по датасету: размеры и по-колоночная статистика
type Summary struct {
	Rows    int             `json:"rows"`
	Columns int             `json:"columns"`
	Fields  []ColumnSummary `json:"fields"`
}

// Summarize строит сводку по датасету
func (d *Dataset) Summarize() Summary {
	summary := Summary{
		Rows:    d.rows,
		Columns: len(d.Columns),
		Fields:  make([]ColumnSummary, 0, len(d.Columns)),
	}

	for i := range d.Columns {
		col := &d.Columns[i]
		unique := col.DistinctCount()
		uniquePct := 0.0
		if d.rows > 0 {
			uniquePct = float64(unique) / float64(d.rows)
		}
		summary.Fields = append(summary.Fields, ColumnSummary{
			Name:             col.Name,
			Type:             col.Type,
			UniqueValues:     unique,
			UniquePercentage: uniquePct,
			MissingCount:     col.MissingCount(),
			MissingRatio:     col.MissingRatio(),
		})
	}

	return summary
}
