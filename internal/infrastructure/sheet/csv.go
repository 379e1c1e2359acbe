package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
)

func readCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	t, err := ParseCSV(f)
	if err != nil {
		return Table{}, fmt.Errorf("read csv %s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// ParseCSV reads a comma or semicolon separated table.
func ParseCSV(r io.Reader) (Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Table{}, err
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = detectComma(raw)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return Table{}, fmt.Errorf("%w: %w", dataset.ErrInvalid, err)
		}
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	return Table{Header: records[0], Rows: records[1:]}, nil
}

// detectComma picks ';' when the header has more semicolons than commas.
func detectComma(raw []byte) rune {
	var commas, semicolons int
	for _, b := range raw {
		switch b {
		case '\n':
			if semicolons > commas {
				return ';'
			}
			return ','
		case ',':
			commas++
		case ';':
			semicolons++
		}
	}
	if semicolons > commas {
		return ';'
	}
	return ','
}
