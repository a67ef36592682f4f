package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Gunal77/web-hackathon/models"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// CountCSV counts a comma separated upload. Cells are split on every comma
// with no quoting rules, blank lines are dropped, and the first remaining line
// is the header row.
func CountCSV(r io.Reader, variant Variant) (models.ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("read import: %w", err)
	}
	return count(parseCSV(string(data)), variant)
}

func parseCSV(text string) table {
	var lines []string
	for _, l := range lineBreak.Split(text, -1) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return table{}
	}

	t := table{headers: strings.Split(strings.ToLower(lines[0]), ",")}
	for _, l := range lines[1:] {
		cells := strings.Split(l, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		t.rows = append(t.rows, cells)
	}
	return t
}
