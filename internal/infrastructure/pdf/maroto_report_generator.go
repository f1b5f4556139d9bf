// Package pdf renders the downloadable attestation report for one employee.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Панель аттестации  │  ФИО + ID                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ИТОГОВАЯ ОЦЕНКА: Показатель | Значение                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ДЕТАЛИЗАЦИЯ: per-table aggregate lines + breakdowns        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/staffboard/attestation-dashboard/internal/application/dto"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implements attestation.ReportGenerator with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReport renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateReport(
	_ context.Context,
	card *dto.EmployeeCardDTO,
	tabs []dto.DetailTabDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Отчет по аттестации", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Transposed roster record
	m.AddRows(sectionTitle("ИТОГОВАЯ ОЦЕНКА"))
	m.AddRows(summaryHeaderRow())
	for _, r := range summaryRows(card.Summary) {
		m.AddRows(r)
	}

	// Detail tabs
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("ДЕТАЛИЗАЦИЯ"))
	for _, tab := range tabs {
		for _, r := range tabRows(tab) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: dashboard title (left), employee name + id (right).
func headerRow(card *dto.EmployeeCardDTO) core.Row {
	sub := fmt.Sprintf("ID: %d", card.ID)
	if card.Unit != "" {
		sub = fmt.Sprintf("ID: %d   |   %s", card.ID, card.Unit)
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Панель аттестации сотрудников", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Отчет по выбранному сотруднику", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(card.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New(sub, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func summaryHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorGray,
		}))
	}
	return row.New(6).Add(h("Показатель", 5), h("Значение", 7))
}

// summaryRows: one row per transposed roster column.
func summaryRows(summary []dto.SummaryRowDTO) []core.Row {
	rows := make([]core.Row, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(s.Metric, props.Text{Size: 8, Top: 0.5})),
			col.New(7).Add(text.New(s.Value, props.Text{Size: 8, Top: 0.5})),
		))
	}
	return rows
}

// tabRows: tab label, aggregate lines, breakdown buckets and the row count
// of the filtered table. Raw rows stay on the dashboard; the report keeps
// to the aggregates.
func tabRows(tab dto.DetailTabDTO) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(tab.Label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		)),
	}
	for _, lineText := range tab.Aggregates {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(lineText, props.Text{Size: 8, Top: 0.5, Left: 2}),
		)))
	}
	for _, b := range tab.Breakdowns {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(b.Title+":", props.Text{Size: 8, Top: 0.5, Left: 2, Color: colorGray}),
		)))
		for _, bucket := range b.Rows {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(fmt.Sprintf("%s — %d", bucket.Name, bucket.Count), props.Text{
					Size: 7.5, Top: 0.5, Left: 5,
				}),
			)))
		}
	}
	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Записей: %d", len(tab.Table.Rows)), props.Text{
			Size: 7.5, Top: 0.5, Left: 2, Color: colorGray,
		}),
	)))
	return rows
}
