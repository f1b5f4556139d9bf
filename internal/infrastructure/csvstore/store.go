package csvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/staffboard/attestation-dashboard/internal/domain"
	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// Store serves the roster and detail tables from one data directory. The
// roster has a fixed file name; every other *.csv in the directory is a
// detail table. Implements repository.RosterRepository and
// repository.DetailRepository.
type Store struct {
	dir        string
	rosterFile string
	cache      *Cache
}

// NewStore builds a store over dir. rosterFile is the roster's file name
// inside dir (usually "final.csv").
func NewStore(dir, rosterFile string, cache *Cache) *Store {
	return &Store{dir: dir, rosterFile: rosterFile, cache: cache}
}

// RosterPath returns the full path of the roster file.
func (s *Store) RosterPath() string {
	return filepath.Join(s.dir, s.rosterFile)
}

// Roster returns the raw roster table. A missing file maps to
// domain.ErrRosterNotFound so the interface layer can show the dedicated
// user-facing message.
func (s *Store) Roster(_ context.Context) (*table.Table, error) {
	t, err := s.cache.GetOrLoad(s.RosterPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, s.rosterFile)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// DetailTables returns every detail table, sorted by file name. Files that
// vanish between the directory listing and the read are skipped, matching
// the permissive policy for detail data.
func (s *Store) DetailTables(_ context.Context) ([]*table.Table, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("csvstore: read data dir %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".csv") || name == s.rosterFile {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	tables := make([]*table.Table, 0, len(names))
	for _, name := range names {
		t, err := s.cache.GetOrLoad(filepath.Join(s.dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
