package repository

import (
	"context"

	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// RosterRepository provides the raw (un-normalized) roster table.
type RosterRepository interface {
	// Roster returns the roster table. Implementations return
	// domain.ErrRosterNotFound when the backing file is missing.
	Roster(ctx context.Context) (*table.Table, error)
}
