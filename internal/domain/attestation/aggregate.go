package attestation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// Canonical detail-table names with dedicated aggregation rules. Matching is
// case-insensitive on the file stem.
const (
	TableDiscipline  = "detail_discipline_apr_dec2025"
	TableErrors      = "detail_errors_apr_dec2025"
	TableRanks       = "detail_ranks_apr_dec2025"
	TablePerformance = "performance_metrics_apr_dec2025"
)

// Columns the aggregators read. Absence of any of them degrades to the
// "no data" sentinel instead of an error.
const (
	ColDisciplinePoints  = "discipline_points"
	ColMark              = "mark"
	ColPerformancePoints = "performance_points"
	ColArea              = "area"
	ColProduct           = "product"
	ColDescription       = "description"
)

// NoData is the sentinel shown when an aggregate has nothing to compute on.
const NoData = "нет данных"

// notSpecified buckets blank grouping cells in breakdowns.
const notSpecified = "Не указано"

// Bucket is one row of a frequency breakdown.
type Bucket struct {
	Name  string
	Count int
}

// Breakdown is a frequency table grouped by one column, sorted by
// descending count (bucket name ascending on ties, for stable rendering).
type Breakdown struct {
	Title  string
	Column string
	Rows   []Bucket
}

// Aggregate is the summary produced for one filtered detail table: display
// lines, optional breakdown tables and presentation hints.
type Aggregate struct {
	Lines       []string
	Breakdowns  []Breakdown
	WideColumns []string // free-text columns to render full width, untruncated
}

// DisplayLabels maps canonical table names to the tab captions shown in the
// UI. Unknown tables fall back to their file stem.
var DisplayLabels = map[string]string{
	TableDiscipline:  "Дисциплина",
	TableErrors:      "Ошибки",
	TableRanks:       "Разряды",
	TablePerformance: "Производительность",
}

// Summarize applies the aggregation rule registered for the table name to an
// already-filtered table. The second result is false when the name is not a
// known detail table; such tables get no aggregate line, raw rows only.
func Summarize(name string, filtered *table.Table) (Aggregate, bool) {
	switch strings.ToLower(name) {
	case TableDiscipline:
		return summarizeDiscipline(filtered), true
	case TableErrors:
		return summarizeErrors(filtered), true
	case TableRanks:
		return summarizeRanks(filtered), true
	case TablePerformance:
		return summarizePerformance(filtered), true
	default:
		return Aggregate{}, false
	}
}

// summarizeDiscipline sums discipline_points over the filtered rows.
// A missing column or an empty table both count as zero violations.
func summarizeDiscipline(t *table.Table) Aggregate {
	total := decimal.Zero
	if t.ColumnExists(ColDisciplinePoints) {
		for i := 0; i < t.RowCount(); i++ {
			cell, _ := t.Cell(i, ColDisciplinePoints)
			if d, err := decimal.NewFromString(strings.TrimSpace(cell)); err == nil {
				total = total.Add(d)
			}
		}
	}
	return Aggregate{
		Lines: []string{fmt.Sprintf("Итого косяков (сумма discipline_points): %s", total)},
	}
}

// summarizeErrors counts rows (one row = one error) and, when any exist,
// adds frequency breakdowns by area and by product.
func summarizeErrors(t *table.Table) Aggregate {
	agg := Aggregate{
		Lines:       []string{fmt.Sprintf("Итого ошибок (кол-во записей): %d", t.RowCount())},
		WideColumns: []string{ColDescription},
	}
	if t.RowCount() == 0 {
		return agg
	}
	agg.Breakdowns = []Breakdown{
		frequency(t, ColArea, "Распределение по участкам"),
		frequency(t, ColProduct, "Распределение по изделиям"),
	}
	return agg
}

// summarizeRanks averages the mark column to two decimals.
func summarizeRanks(t *table.Table) Aggregate {
	var marks []decimal.Decimal
	if _, ok := t.Column(ColMark); ok {
		for i := 0; i < t.RowCount(); i++ {
			cell, _ := t.Cell(i, ColMark)
			if d, err := decimal.NewFromString(strings.TrimSpace(cell)); err == nil {
				marks = append(marks, d)
			}
		}
	}
	if len(marks) == 0 {
		return Aggregate{Lines: []string{fmt.Sprintf("Средний разряд (среднее mark): %s", NoData)}}
	}
	avg := decimal.Avg(marks[0], marks[1:]...)
	return Aggregate{
		Lines: []string{fmt.Sprintf("Средний разряд (среднее mark): %s", avg.StringFixed(2))},
	}
}

// summarizePerformance reads the precomputed performance_points value from
// the first filtered row. The legacy percent-times-complexity formula is
// deliberately not supported; the exported column is authoritative.
func summarizePerformance(t *table.Table) Aggregate {
	noData := Aggregate{Lines: []string{fmt.Sprintf("Итоговый балл: %s", NoData)}}
	if t.RowCount() == 0 {
		return noData
	}
	cell, ok := t.Cell(0, ColPerformancePoints)
	if !ok {
		return noData
	}
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return noData
	}
	return Aggregate{Lines: []string{fmt.Sprintf("Итоговый балл: %s", d.StringFixed(2))}}
}

// frequency groups rows of t by the named column. Blank and missing cells
// fall into the "Не указано" bucket, so the bucket counts always sum to the
// row count.
func frequency(t *table.Table, column, title string) Breakdown {
	counts := make(map[string]int)
	for i := 0; i < t.RowCount(); i++ {
		v, ok := t.Cell(i, column)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			v = notSpecified
		}
		counts[v]++
	}
	rows := make([]Bucket, 0, len(counts))
	for name, n := range counts {
		rows = append(rows, Bucket{Name: name, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return Breakdown{Title: title, Column: column, Rows: rows}
}
