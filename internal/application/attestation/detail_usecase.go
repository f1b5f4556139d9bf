package attestation

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffboard/attestation-dashboard/internal/application/dto"
	domattest "github.com/staffboard/attestation-dashboard/internal/domain/attestation"
	"github.com/staffboard/attestation-dashboard/internal/domain/repository"
)

// noDetailFilesMessage is shown when the data directory has no detail CSVs.
const noDetailFilesMessage = "Дополнительные CSV файлы не найдены."

// DetailUseCase builds the per-employee detail tabs: one tab per detail
// CSV, each holding the filtered rows plus the aggregate produced by the
// rule registered for that table name.
type DetailUseCase struct {
	roster     *RosterUseCase
	detailRepo repository.DetailRepository
}

// NewDetailUseCase builds the detail use case.
func NewDetailUseCase(roster *RosterUseCase, detailRepo repository.DetailRepository) *DetailUseCase {
	return &DetailUseCase{roster: roster, detailRepo: detailRepo}
}

// EmployeeTabs returns the detail tabs for one employee. The employee must
// exist in the normalized roster (stale selections surface
// domain.ErrEmployeeNotFound before any detail file is touched). Unmatched
// ids inside a detail table simply filter to an empty tab.
func (uc *DetailUseCase) EmployeeTabs(ctx context.Context, employeeID int64) (*dto.DetailTabsDTO, error) {
	// Existence check doubles as roster validation (missing/empty roster
	// errors propagate from here).
	if _, err := uc.roster.EmployeeCard(ctx, employeeID); err != nil {
		return nil, err
	}

	tables, err := uc.detailRepo.DetailTables(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DetailTabsDTO{EmployeeID: employeeID, Tabs: make([]dto.DetailTabDTO, 0, len(tables))}
	if len(tables) == 0 {
		out.Message = noDetailFilesMessage
		return out, nil
	}

	for _, t := range tables {
		filtered := domattest.FilterByEmployee(t, employeeID)
		tab := dto.DetailTabDTO{
			Name:    t.Name(),
			Label:   tabLabel(t.Name()),
			Caption: fmt.Sprintf("Фильтр: id_employee = %d", employeeID),
			Table: dto.TableDTO{
				Columns: filtered.Columns(),
				Rows:    filtered.Rows(),
			},
		}
		if agg, known := domattest.Summarize(t.Name(), filtered); known {
			tab.Aggregates = agg.Lines
			tab.WideColumns = agg.WideColumns
			for _, b := range agg.Breakdowns {
				bd := dto.BreakdownDTO{Title: b.Title, Column: b.Column}
				for _, r := range b.Rows {
					bd.Rows = append(bd.Rows, dto.BucketDTO{Name: r.Name, Count: r.Count})
				}
				tab.Breakdowns = append(tab.Breakdowns, bd)
			}
		}
		out.Tabs = append(out.Tabs, tab)
	}
	return out, nil
}

// tabLabel returns the friendly label for known detail tables, the raw file
// stem otherwise.
func tabLabel(name string) string {
	if label, ok := domattest.DisplayLabels[strings.ToLower(name)]; ok {
		return label
	}
	return name
}
