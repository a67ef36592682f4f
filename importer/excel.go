package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Gunal77/web-hackathon/models"
)

// CountXLSX counts the first sheet of a spreadsheet upload with the same rules
// as CountCSV
func CountXLSX(r io.Reader, variant Variant) (models.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return count(table{}, variant)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return count(sheetTable(rows), variant)
}

func sheetTable(rows [][]string) table {
	var t table
	for _, row := range rows {
		blank := true
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.TrimSpace(c)
			if cells[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		if t.headers == nil {
			t.headers = make([]string, len(row))
			for i, h := range row {
				t.headers[i] = strings.ToLower(h)
			}
			continue
		}
		t.rows = append(t.rows, cells)
	}
	return t
}
