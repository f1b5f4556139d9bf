package dto

// EmployeeOptionDTO one entry of the employee selector, labeled
// "{name} ({id})" and sorted by name.
type EmployeeOptionDTO struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// EmployeeListDTO the selector contents.
type EmployeeListDTO struct {
	Employees []EmployeeOptionDTO `json:"employees"`
}

// SummaryRowDTO one row of the transposed roster record
// (Показатель / Значение).
type SummaryRowDTO struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// EmployeeCardDTO the summary card plus the full transposed roster row for
// one employee. Unit, Total and Score are optional roster columns and are
// omitted when absent or blank.
type EmployeeCardDTO struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit,omitempty"`
	Total   string          `json:"total,omitempty"`
	Score   string          `json:"score,omitempty"`
	Summary []SummaryRowDTO `json:"summary"`
}

// BucketDTO one row of a frequency breakdown.
type BucketDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BreakdownDTO a grouped count table shown under an aggregate line.
type BreakdownDTO struct {
	Title  string      `json:"title"`
	Column string      `json:"column"`
	Rows   []BucketDTO `json:"rows"`
}

// TableDTO raw tabular data for rendering.
type TableDTO struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// DetailTabDTO one detail-table tab: caption, aggregate lines, optional
// breakdowns and the filtered rows. WideColumns lists free-text columns the
// UI renders full width without truncation.
type DetailTabDTO struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Caption     string         `json:"caption"`
	Aggregates  []string       `json:"aggregates,omitempty"`
	Breakdowns  []BreakdownDTO `json:"breakdowns,omitempty"`
	WideColumns []string       `json:"wide_columns,omitempty"`
	Table       TableDTO       `json:"table"`
}

// DetailTabsDTO all detail tabs for one employee. Message carries the
// informational "no detail files" text when Tabs is empty.
type DetailTabsDTO struct {
	EmployeeID int64          `json:"employee_id"`
	Tabs       []DetailTabDTO `json:"tabs"`
	Message    string         `json:"message,omitempty"`
}
