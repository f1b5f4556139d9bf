package repository

import (
	"context"

	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// DetailRepository enumerates the auxiliary detail tables that accompany the
// roster. The roster itself is never part of the result.
type DetailRepository interface {
	// DetailTables returns every detail table in stable name order. An
	// empty slice means no detail files are present, which is
	// informational, not an error.
	DetailTables(ctx context.Context) ([]*table.Table, error)
}
