package attestation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appattest "github.com/staffboard/attestation-dashboard/internal/application/attestation"
	"github.com/staffboard/attestation-dashboard/internal/application/dto"
	"github.com/staffboard/attestation-dashboard/internal/domain"
	domattest "github.com/staffboard/attestation-dashboard/internal/domain/attestation"
	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory repositories
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoster struct {
	roster *table.Table
	err    error
}

func (f *fakeRoster) Roster(context.Context) (*table.Table, error) {
	return f.roster, f.err
}

type fakeDetails struct {
	tables []*table.Table
}

func (f *fakeDetails) DetailTables(context.Context) ([]*table.Table, error) {
	return f.tables, nil
}

func testRoster() *table.Table {
	return table.New("final",
		[]string{"id_employee", "fio_employee", "Участок", "7", "Unnamed: 10"},
		[][]string{
			{"2", "Петров", "Цех 2", "84", "8.4"},
			{"1", "Иванов", "Цех 1", "91", "9.1"},
			{"", "Безымянный", "", "", ""}, // dropped by normalization
		},
	)
}

func newRosterUC(roster *table.Table) *appattest.RosterUseCase {
	return appattest.NewRosterUseCase(&fakeRoster{roster: roster})
}

// ──────────────────────────────────────────────────────────────────────────────
// RosterUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestListEmployees_SortedByName(t *testing.T) {
	out, err := newRosterUC(testRoster()).ListEmployees(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Employees, 2)
	assert.Equal(t, "Иванов (1)", out.Employees[0].Label, "options are name-sorted, not file-ordered")
	assert.Equal(t, "Петров (2)", out.Employees[1].Label)
	assert.Equal(t, int64(1), out.Employees[0].ID)
}

func TestListEmployees_EmptyRoster(t *testing.T) {
	roster := table.New("final", []string{"id_employee"}, [][]string{{""}, {"x"}})
	_, err := newRosterUC(roster).ListEmployees(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyRoster)
}

func TestListEmployees_RosterMissing(t *testing.T) {
	uc := appattest.NewRosterUseCase(&fakeRoster{err: domain.ErrRosterNotFound})
	_, err := uc.ListEmployees(context.Background())
	assert.ErrorIs(t, err, domain.ErrRosterNotFound)
}

func TestListEmployees_NamelessFallback(t *testing.T) {
	roster := table.New("final",
		[]string{"id_employee", "fio_employee"},
		[][]string{{"5", ""}},
	)
	out, err := newRosterUC(roster).ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Без имени (5)", out.Employees[0].Label)
}

func TestEmployeeCard_Fields(t *testing.T) {
	card, err := newRosterUC(testRoster()).EmployeeCard(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), card.ID)
	assert.Equal(t, "Петров", card.Name)
	assert.Equal(t, "Цех 2", card.Unit)
	assert.Equal(t, "84", card.Total)
	assert.Equal(t, "8.4", card.Score)

	// Transposed summary keeps the full roster row in column order
	require.Len(t, card.Summary, 5)
	assert.Equal(t, "id_employee", card.Summary[0].Metric)
	assert.Equal(t, "2", card.Summary[0].Value)
	assert.Equal(t, "fio_employee", card.Summary[1].Metric)
	assert.Equal(t, "Петров", card.Summary[1].Value)
}

func TestEmployeeCard_StaleSelection(t *testing.T) {
	_, err := newRosterUC(testRoster()).EmployeeCard(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DetailUseCase
// ──────────────────────────────────────────────────────────────────────────────

func testDetails() []*table.Table {
	return []*table.Table{
		table.New(domattest.TableErrors,
			[]string{"id_employee", "area", "product", "description"},
			[][]string{
				{"2", "Цех 2", "Изделие А", "брак"},
				{"1", "Цех 1", "Изделие Б", "недокомплект"},
				{"2", "Цех 2", "Изделие Б", "просрочка"},
			},
		),
		table.New("custom_export",
			[]string{"id_employee", "value"},
			[][]string{{"2", "x"}},
		),
	}
}

func newDetailUC(roster *table.Table, tables []*table.Table) *appattest.DetailUseCase {
	rosterUC := newRosterUC(roster)
	return appattest.NewDetailUseCase(rosterUC, &fakeDetails{tables: tables})
}

func TestEmployeeTabs_FiltersAndAggregates(t *testing.T) {
	out, err := newDetailUC(testRoster(), testDetails()).EmployeeTabs(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, out.Tabs, 2)

	errorsTab := out.Tabs[0]
	assert.Equal(t, "Ошибки", errorsTab.Label, "known tables get friendly labels")
	assert.Equal(t, "Фильтр: id_employee = 2", errorsTab.Caption)
	assert.Equal(t, "Итого ошибок (кол-во записей): 2", errorsTab.Aggregates[0])
	require.Len(t, errorsTab.Table.Rows, 2)
	for _, row := range errorsTab.Table.Rows {
		assert.Equal(t, "2", row[0], "every tab row belongs to the selected employee")
	}
	assert.NotEmpty(t, errorsTab.Breakdowns)

	customTab := out.Tabs[1]
	assert.Equal(t, "custom_export", customTab.Label, "unknown tables keep their file stem")
	assert.Empty(t, customTab.Aggregates, "unknown tables get no aggregate line")
	require.Len(t, customTab.Table.Rows, 1)
}

func TestEmployeeTabs_StaleSelection(t *testing.T) {
	_, err := newDetailUC(testRoster(), testDetails()).EmployeeTabs(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound,
		"the selection is validated before any detail file is read")
}

func TestEmployeeTabs_NoDetailFiles(t *testing.T) {
	out, err := newDetailUC(testRoster(), nil).EmployeeTabs(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, out.Tabs)
	assert.Equal(t, "Дополнительные CSV файлы не найдены.", out.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReportUseCase
// ──────────────────────────────────────────────────────────────────────────────

type fakeGenerator struct {
	lastCard *dto.EmployeeCardDTO
	lastTabs int
}

func (f *fakeGenerator) GenerateReport(_ context.Context, card *dto.EmployeeCardDTO, tabs []dto.DetailTabDTO) ([]byte, error) {
	f.lastCard = card
	f.lastTabs = len(tabs)
	return []byte("%PDF-fake"), nil
}

func TestEmployeeReportPDF(t *testing.T) {
	rosterUC := newRosterUC(testRoster())
	detailUC := appattest.NewDetailUseCase(rosterUC, &fakeDetails{tables: testDetails()})
	gen := &fakeGenerator{}
	uc := appattest.NewReportUseCase(rosterUC, detailUC, gen)

	pdf, filename, err := uc.EmployeeReportPDF(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "attestation_2.pdf", filename)
	require.NotNil(t, gen.lastCard)
	assert.Equal(t, "Петров", gen.lastCard.Name)
	assert.Equal(t, 2, gen.lastTabs)
}

func TestEmployeeReportPDF_StaleSelection(t *testing.T) {
	rosterUC := newRosterUC(testRoster())
	detailUC := appattest.NewDetailUseCase(rosterUC, &fakeDetails{})
	uc := appattest.NewReportUseCase(rosterUC, detailUC, &fakeGenerator{})

	_, _, err := uc.EmployeeReportPDF(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
