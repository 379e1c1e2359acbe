package sheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
)

// readWorkbook reads the first sheet. Cells are read raw so date columns can
// be decoded from their serial number regardless of display format.
func readWorkbook(path string, dateColumns []string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("%w: workbook %s has no sheets", dataset.ErrInvalid, path)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %s of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return Table{Source: path}, nil
	}

	t := Table{Source: path, Header: rows[0], Rows: rows[1:]}
	for _, name := range dateColumns {
		idx := t.column(name)
		if idx < 0 {
			continue
		}
		for _, row := range t.Rows {
			if idx < len(row) {
				row[idx] = serialToDate(row[idx])
			}
		}
	}

	return t, nil
}

func serialToDate(raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.Format("02/01/2006")
}
