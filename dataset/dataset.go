package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Type семантический тип колонки
type Type string

const (
	TypeInteger  Type = "integer"
	TypeFloat    Type = "float"
	TypeString   Type = "string"
	TypeBoolean  Type = "boolean"
	TypeDatetime Type = "datetime"
)

// Column колонка датасета. Значения хранятся позиционно,
// nil означает пропущенное значение (missing).
type Column struct {
	Name   string
	Type   Type
	Values []any
}

// Dataset прямоугольная таблица с именованными типизированными колонками.
// После создания не мутируется: движки анализа получают его только на чтение.
type Dataset struct {
	Columns []Column
	rows    int
}

// New создает датасет из колонок и проверяет прямоугольность таблицы.
// Нарушение контракта (рваные строки, дублирующиеся имена) — ошибка вызывающего кода.
func New(columns []Column) (*Dataset, error) {
	ds := &Dataset{Columns: columns}

	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("колонка %d не имеет имени", i)
		}
		if seen[col.Name] {
			return nil, fmt.Errorf("дублирующееся имя колонки: %s", col.Name)
		}
		seen[col.Name] = true

		if i == 0 {
			ds.rows = len(col.Values)
		} else if len(col.Values) != ds.rows {
			return nil, fmt.Errorf("колонка %q содержит %d строк, ожидалось %d", col.Name, len(col.Values), ds.rows)
		}
	}

	return ds, nil
}

// Rows возвращает количество строк
func (d *Dataset) Rows() int {
	return d.rows
}

// Column возвращает колонку по имени
func (d *Dataset) Column(name string) (*Column, bool) {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames возвращает имена колонок в порядке таблицы
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// TotalCells общее количество ячеек таблицы
func (d *Dataset) TotalCells() int {
	return d.rows * len(d.Columns)
}

// MissingCells количество пропущенных ячеек во всей таблице
func (d *Dataset) MissingCells() int {
	total := 0
	for i := range d.Columns {
		total += d.Columns[i].MissingCount()
	}
	return total
}

// DuplicateRowCount количество строк-дубликатов (повторные вхождения
// полностью совпадающих строк, первая строка дубликатом не считается)
func (d *Dataset) DuplicateRowCount() int {
	if d.rows == 0 || len(d.Columns) == 0 {
		return 0
	}

	seen := make(map[string]bool, d.rows)
	duplicates := 0
	var sb strings.Builder

	for r := 0; r < d.rows; r++ {
		sb.Reset()
		for c := range d.Columns {
			if d.Columns[c].Values[r] == nil {
				// маркер пропуска: nil и пустая строка — разные ячейки
				sb.WriteByte(0x00)
			} else {
				sb.WriteString(ValueKey(d.Columns[c].Values[r]))
			}
			sb.WriteByte(0x1f) // разделитель полей строки
		}
		key := sb.String()
		if seen[key] {
			duplicates++
		} else {
			seen[key] = true
		}
	}

	return duplicates
}

// IsNumeric сообщает, является ли колонка числовой
func (c *Column) IsNumeric() bool {
	return c.Type == TypeInteger || c.Type == TypeFloat
}

// MissingCount количество пропущенных значений
func (c *Column) MissingCount() int {
	count := 0
	for _, v := range c.Values {
		if v == nil {
			count++
		}
	}
	return count
}

// MissingRatio доля пропущенных значений; для пустой колонки 0
func (c *Column) MissingRatio() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	return float64(c.MissingCount()) / float64(len(c.Values))
}

// NonNull возвращает непропущенные значения в порядке строк
func (c *Column) NonNull() []any {
	values := make([]any, 0, len(c.Values))
	for _, v := range c.Values {
		if v != nil {
			values = append(values, v)
		}
	}
	return values
}

// NonNullCount количество непропущенных значений
func (c *Column) NonNullCount() int {
	return len(c.Values) - c.MissingCount()
}

// Float64s возвращает непропущенные значения числовой колонки как float64.
// Для нечисловых колонок возвращает nil.
func (c *Column) Float64s() []float64 {
	if !c.IsNumeric() {
		return nil
	}
	values := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		switch n := v.(type) {
		case int64:
			values = append(values, float64(n))
		case float64:
			values = append(values, n)
		}
	}
	return values
}

// Frequencies частоты непропущенных значений. Значения приводятся к строковому
// представлению, поэтому подсчет не зависит от типа колонки.
func (c *Column) Frequencies() map[string]int {
	freq := make(map[string]int)
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		freq[ValueKey(v)]++
	}
	return freq
}

// DistinctCount количество уникальных непропущенных значений
func (c *Column) DistinctCount() int {
	return len(c.Frequencies())
}

// ValueKey приводит значение к каноническому строковому представлению
// для частотного подсчета и сравнения
func ValueKey(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'f', 1, 64)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
