package attestation

import (
	"context"

	"github.com/staffboard/attestation-dashboard/internal/application/dto"
)

// ReportGenerator renders one employee's attestation report (card, summary
// and detail tabs) into a downloadable document.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, card *dto.EmployeeCardDTO, tabs []dto.DetailTabDTO) ([]byte, error)
}
