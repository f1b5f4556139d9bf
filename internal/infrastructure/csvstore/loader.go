// Package csvstore implements the roster and detail repositories on top of a
// directory of CSV files, with an explicit modification-time cache so the
// dashboard does not re-read files on every interaction.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/staffboard/attestation-dashboard/internal/domain/table"
)

// EncodingWindows1251 selects on-the-fly decoding of legacy cp1251 exports.
// Anything else is treated as UTF-8 and read as-is.
const EncodingWindows1251 = "windows-1251"

// Loader parses a single CSV file into a table. The header row becomes the
// column list; data rows keep file order. Rows with a deviating field count
// are padded/truncated to the header width rather than rejected, since the
// detail exports are not always rectangular.
type Loader struct {
	encoding string
}

// NewLoader builds a loader for the given source encoding ("utf-8" or
// "windows-1251").
func NewLoader(encoding string) *Loader {
	return &Loader{encoding: strings.ToLower(strings.TrimSpace(encoding))}
}

// Load reads path into a table named after the file stem. A missing file
// surfaces the os.Open error (wrapping fs.ErrNotExist) unchanged so callers
// can branch on it.
func (l *Loader) Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvstore: open %s: %w", path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if l.encoding == EncodingWindows1251 {
		src = transform.NewReader(f, charmap.Windows1251.NewDecoder())
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1 // tolerate ragged rows, normalized against the header below

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csvstore: %s: missing header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("csvstore: read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvstore: read %s: %w", path, err)
		}
		rows = append(rows, rec)
	}

	return table.New(stem(path), header, rows), nil
}

// stem returns the file name without directory and extension, e.g.
// "/data/detail_errors_apr_dec2025.csv" -> "detail_errors_apr_dec2025".
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
