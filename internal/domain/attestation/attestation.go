// Package attestation contains the pure roster and detail-table logic of the
// dashboard: roster normalization, per-employee filtering and the
// table-specific aggregation rules.
package attestation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// Well-known column names, matched case-sensitively against CSV headers.
const (
	ColEmployeeID   = "id_employee"
	ColEmployeeName = "fio_employee"
	ColUnit         = "Участок"
)

// ParseEmployeeID interprets a raw cell as an employee identifier. Detail
// exports are inconsistent about the cell type: plain integers ("12"),
// float-formatted integers from spreadsheet round-trips ("12.0") and padded
// text (" 12 ") all denote the same id. Anything else is null and never
// equals a valid id.
func ParseEmployeeID(cell string) (int64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	return d.IntPart(), true
}

// Normalize drops roster rows without a parseable employee id and rewrites
// the id cell to its canonical integer form. The input table is not
// modified. An empty result is the empty-roster condition; deciding what to
// tell the user is the caller's job.
func Normalize(roster *table.Table) *table.Table {
	idx, ok := roster.Column(ColEmployeeID)
	if !ok {
		return roster.Empty()
	}
	return roster.Map(func(row []string) []string {
		id, ok := ParseEmployeeID(row[idx])
		if !ok {
			return nil
		}
		row[idx] = decimal.NewFromInt(id).String()
		return row
	})
}

// FilterByEmployee returns the subset of rows belonging to employeeID.
//
// A table without an id column yields an empty table with the same schema
// rather than an error: detail files of unexpected shape are shown raw, not
// rejected. Id cells are coerced to numbers first so a text "12" matches
// the numeric id 12; cells that fail to parse match nothing.
func FilterByEmployee(t *table.Table, employeeID int64) *table.Table {
	idx, ok := t.Column(ColEmployeeID)
	if !ok {
		return t.Empty()
	}
	return t.Select(func(row []string) bool {
		id, ok := ParseEmployeeID(row[idx])
		return ok && id == employeeID
	})
}
