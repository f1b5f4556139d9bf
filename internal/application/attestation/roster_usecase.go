// Package attestation contains the dashboard use cases: employee selection,
// summary cards, detail tabs and the downloadable report.
package attestation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/staffboard/attestation-dashboard/internal/application/dto"
	"github.com/staffboard/attestation-dashboard/internal/domain"
	domattest "github.com/staffboard/attestation-dashboard/internal/domain/attestation"
	"github.com/staffboard/attestation-dashboard/internal/domain/repository"
	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// Summary-score columns of the roster export. The headers come out of the
// upstream spreadsheet as-is; "7" is the points total and "Unnamed: 10" the
// total divided by ten.
const (
	colTotal = "7"
	colScore = "Unnamed: 10"
)

// noNameLabel is shown for roster rows without a display name.
const noNameLabel = "Без имени"

// RosterUseCase loads, normalizes and queries the employee roster.
type RosterUseCase struct {
	rosterRepo repository.RosterRepository
}

// NewRosterUseCase builds the roster use case.
func NewRosterUseCase(rosterRepo repository.RosterRepository) *RosterUseCase {
	return &RosterUseCase{rosterRepo: rosterRepo}
}

// Normalized returns the normalized roster. domain.ErrEmptyRoster when no
// rows survive normalization, domain.ErrRosterNotFound passed through from
// the repository.
func (uc *RosterUseCase) Normalized(ctx context.Context) (*table.Table, error) {
	raw, err := uc.rosterRepo.Roster(ctx)
	if err != nil {
		return nil, err
	}
	roster := domattest.Normalize(raw)
	if roster.RowCount() == 0 {
		return nil, domain.ErrEmptyRoster
	}
	return roster, nil
}

// ListEmployees returns the selector options labeled "{name} ({id})",
// ordered by display name with Russian collation (ids break ties).
func (uc *RosterUseCase) ListEmployees(ctx context.Context) (*dto.EmployeeListDTO, error) {
	roster, err := uc.Normalized(ctx)
	if err != nil {
		return nil, err
	}

	type option struct {
		id   int64
		name string
	}
	options := make([]option, 0, roster.RowCount())
	for i := 0; i < roster.RowCount(); i++ {
		idCell, _ := roster.Cell(i, domattest.ColEmployeeID)
		id, ok := domattest.ParseEmployeeID(idCell)
		if !ok {
			continue // cannot happen after Normalize, kept as a guard
		}
		options = append(options, option{id: id, name: displayName(roster, i)})
	}

	cl := collate.New(language.Russian)
	sort.SliceStable(options, func(i, j int) bool {
		if c := cl.CompareString(options[i].name, options[j].name); c != 0 {
			return c < 0
		}
		return options[i].id < options[j].id
	})

	out := &dto.EmployeeListDTO{Employees: make([]dto.EmployeeOptionDTO, 0, len(options))}
	for _, o := range options {
		out.Employees = append(out.Employees, dto.EmployeeOptionDTO{
			ID:    o.id,
			Label: employeeLabel(o.name, o.id),
		})
	}
	return out, nil
}

// EmployeeCard returns the summary card and the transposed roster row for
// one employee. domain.ErrEmployeeNotFound covers stale selections.
func (uc *RosterUseCase) EmployeeCard(ctx context.Context, employeeID int64) (*dto.EmployeeCardDTO, error) {
	roster, err := uc.Normalized(ctx)
	if err != nil {
		return nil, err
	}

	row := -1
	for i := 0; i < roster.RowCount(); i++ {
		idCell, _ := roster.Cell(i, domattest.ColEmployeeID)
		if id, ok := domattest.ParseEmployeeID(idCell); ok && id == employeeID {
			row = i
			break
		}
	}
	if row < 0 {
		return nil, domain.ErrEmployeeNotFound
	}

	card := &dto.EmployeeCardDTO{
		ID:   employeeID,
		Name: displayName(roster, row),
	}
	if v, ok := roster.Cell(row, domattest.ColUnit); ok && strings.TrimSpace(v) != "" {
		card.Unit = strings.TrimSpace(v)
	}
	if v, ok := roster.Cell(row, colTotal); ok && strings.TrimSpace(v) != "" {
		card.Total = strings.TrimSpace(v)
	}
	if v, ok := roster.Cell(row, colScore); ok && strings.TrimSpace(v) != "" {
		card.Score = strings.TrimSpace(v)
	}

	// Transposed key/value view of the whole roster row, column order kept.
	for _, col := range roster.Columns() {
		v, _ := roster.Cell(row, col)
		card.Summary = append(card.Summary, dto.SummaryRowDTO{Metric: col, Value: v})
	}
	return card, nil
}

func displayName(roster *table.Table, row int) string {
	name, ok := roster.Cell(row, domattest.ColEmployeeName)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return noNameLabel
	}
	return name
}

func employeeLabel(name string, id int64) string {
	return fmt.Sprintf("%s (%d)", name, id)
}
