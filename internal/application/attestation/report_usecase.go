package attestation

import (
	"context"
	"fmt"
)

// ReportUseCase composes the card and detail tabs of one employee into a
// PDF via the ReportGenerator port.
type ReportUseCase struct {
	roster  *RosterUseCase
	details *DetailUseCase
	gen     ReportGenerator
}

// NewReportUseCase builds the report use case.
func NewReportUseCase(roster *RosterUseCase, details *DetailUseCase, gen ReportGenerator) *ReportUseCase {
	return &ReportUseCase{roster: roster, details: details, gen: gen}
}

// EmployeeReportPDF renders the attestation report for one employee and
// returns the document bytes plus a suggested file name.
func (uc *ReportUseCase) EmployeeReportPDF(ctx context.Context, employeeID int64) ([]byte, string, error) {
	card, err := uc.roster.EmployeeCard(ctx, employeeID)
	if err != nil {
		return nil, "", err
	}
	tabs, err := uc.details.EmployeeTabs(ctx, employeeID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.gen.GenerateReport(ctx, card, tabs.Tabs)
	if err != nil {
		return nil, "", fmt.Errorf("report: generate pdf for employee %d: %w", employeeID, err)
	}
	return pdf, fmt.Sprintf("attestation_%d.pdf", employeeID), nil
}
