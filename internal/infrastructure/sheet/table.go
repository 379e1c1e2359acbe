package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
)

// Table is a header row plus data rows, cells as text.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
}

// ReadFile reads a .xlsx or .csv file. dateColumns lists header names whose
// spreadsheet date serials are rewritten as dd/mm/yyyy.
func ReadFile(path string, dateColumns ...string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(path, dateColumns)
	case ".csv":
		return readCSV(path)
	default:
		return Table{}, fmt.Errorf("%w: unsupported file type %q", dataset.ErrInvalid, path)
	}
}

func (t Table) column(aliases ...string) int {
	for i, h := range t.Header {
		name := normalizeHeader(h)
		for _, alias := range aliases {
			if name == normalizeHeader(alias) {
				return i
			}
		}
	}
	return -1
}

func (t Table) requireColumn(aliases ...string) (int, error) {
	idx := t.column(aliases...)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s: missing column %q", dataset.ErrInvalid, t.Source, aliases[0])
	}
	return idx, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func normalizeHeader(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.TrimPrefix(v, "\ufeff")
	return strings.Join(strings.Fields(v), " ")
}
