package attestation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffboard/attestation-dashboard/internal/domain/attestation"
	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dispatch
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_UnknownTableHasNoAggregate(t *testing.T) {
	tbl := table.New("detail_something_else", []string{"id_employee"}, nil)
	_, known := attestation.Summarize(tbl.Name(), tbl)
	assert.False(t, known, "unknown detail tables get raw rows only")
}

func TestSummarize_DispatchIsCaseInsensitive(t *testing.T) {
	tbl := table.New("Detail_Discipline_Apr_Dec2025", []string{"discipline_points"}, nil)
	agg, known := attestation.Summarize(tbl.Name(), tbl)
	require.True(t, known)
	assert.Contains(t, agg.Lines[0], "0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Discipline: sum of discipline_points
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscipline_EmptyTableSumsToZero(t *testing.T) {
	tbl := table.New(attestation.TableDiscipline, []string{"id_employee", "discipline_points"}, nil)
	agg, known := attestation.Summarize(tbl.Name(), tbl)
	require.True(t, known)
	require.Len(t, agg.Lines, 1)
	assert.Equal(t, "Итого косяков (сумма discipline_points): 0", agg.Lines[0])
}

func TestDiscipline_MissingColumnSumsToZero(t *testing.T) {
	tbl := table.New(attestation.TableDiscipline, []string{"id_employee"}, [][]string{{"1"}})
	agg, _ := attestation.Summarize(tbl.Name(), tbl)
	assert.Equal(t, "Итого косяков (сумма discipline_points): 0", agg.Lines[0])
}

func TestDiscipline_SumsPoints(t *testing.T) {
	tbl := table.New(attestation.TableDiscipline,
		[]string{"discipline_points"},
		[][]string{{"2"}, {"1.5"}, {"not-a-number"}, {"3"}},
	)
	agg, _ := attestation.Summarize(tbl.Name(), tbl)
	assert.Equal(t, "Итого косяков (сумма discipline_points): 6.5", agg.Lines[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Errors: row count + area/product breakdowns
// ──────────────────────────────────────────────────────────────────────────────

func TestErrors_CountAndBreakdowns(t *testing.T) {
	tbl := table.New(attestation.TableErrors,
		[]string{"id_employee", "area", "product", "description"},
		[][]string{
			{"2", "Цех 1", "Изделие А", "брак"},
			{"2", "Цех 1", "Изделие Б", "недокомплект"},
			{"2", "", "Изделие А", "просрочка"},
		},
	)

	agg, known := attestation.Summarize(tbl.Name(), tbl)
	require.True(t, known)
	assert.Equal(t, "Итого ошибок (кол-во записей): 3", agg.Lines[0])
	assert.Contains(t, agg.WideColumns, "description", "the free-text column is flagged wide")

	require.Len(t, agg.Breakdowns, 2)

	area := agg.Breakdowns[0]
	assert.Equal(t, "area", area.Column)
	total := 0
	for _, b := range area.Rows {
		total += b.Count
	}
	assert.Equal(t, 3, total, "area breakdown counts must sum to the row count")
	assert.Equal(t, "Цех 1", area.Rows[0].Name, "buckets are sorted by descending count")
	assert.Equal(t, 2, area.Rows[0].Count)
	assert.Equal(t, "Не указано", area.Rows[1].Name, "blank cells fall into the 'not specified' bucket")

	product := agg.Breakdowns[1]
	assert.Equal(t, "product", product.Column)
	assert.Equal(t, []string{"Изделие А", "Изделие Б"}, bucketNames(product.Rows))
}

func TestErrors_EmptyHasNoBreakdowns(t *testing.T) {
	tbl := table.New(attestation.TableErrors, []string{"id_employee", "area"}, nil)
	agg, _ := attestation.Summarize(tbl.Name(), tbl)
	assert.Equal(t, "Итого ошибок (кол-во записей): 0", agg.Lines[0])
	assert.Empty(t, agg.Breakdowns)
}

func TestErrors_TieBreaksByName(t *testing.T) {
	tbl := table.New(attestation.TableErrors,
		[]string{"area"},
		[][]string{{"B"}, {"A"}},
	)
	agg, _ := attestation.Summarize(tbl.Name(), tbl)
	assert.Equal(t, []string{"A", "B"}, bucketNames(agg.Breakdowns[0].Rows),
		"equal counts are ordered by bucket name for stable rendering")
}

func bucketNames(rows []attestation.Bucket) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranks: mean of mark
// ──────────────────────────────────────────────────────────────────────────────

func TestRanks_MeanToTwoDecimals(t *testing.T) {
	tbl := table.New(attestation.TableRanks,
		[]string{"mark"},
		[][]string{{"3"}, {"4"}, {"5"}},
	)
	agg, _ := attestation.Summarize(tbl.Name(), tbl)
	assert.Equal(t, "Средний разряд (среднее mark): 4.00", agg.Lines[0])
}

func TestRanks_NoDataSentinel(t *testing.T) {
	for _, tbl := range []*table.Table{
		table.New(attestation.TableRanks, []string{"mark"}, nil),             // empty
		table.New(attestation.TableRanks, []string{"id"}, [][]string{{"1"}}), // column absent
	} {
		agg, _ := attestation.Summarize(tbl.Name(), tbl)
		assert.True(t, strings.HasSuffix(agg.Lines[0], attestation.NoData), "got %q", agg.Lines[0])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Performance: precomputed points of the first row
// ──────────────────────────────────────────────────────────────────────────────

func TestPerformance_FirstRowPoints(t *testing.T) {
	tbl := table.New(attestation.TablePerformance,
		[]string{"id_employee", "performance_points"},
		[][]string{
			{"2", "21.5"},
			{"2", "99"}, // later rows are ignored
		},
	)
	agg, known := attestation.Summarize(tbl.Name(), tbl)
	require.True(t, known)
	assert.Equal(t, "Итоговый балл: 21.50", agg.Lines[0])
}

func TestPerformance_NoDataSentinel(t *testing.T) {
	for name, tbl := range map[string]*table.Table{
		"no rows":       table.New(attestation.TablePerformance, []string{"performance_points"}, nil),
		"column absent": table.New(attestation.TablePerformance, []string{"other"}, [][]string{{"1"}}),
		"unparseable":   table.New(attestation.TablePerformance, []string{"performance_points"}, [][]string{{"—"}}),
	} {
		agg, _ := attestation.Summarize(tbl.Name(), tbl)
		assert.Equal(t, "Итоговый балл: нет данных", agg.Lines[0], name)
	}
}
