// Package importer counts the rows of an uploaded grievance file for the
// collector's bulk upload preview. Nothing is written to the manu store.
package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Gunal77/web-hackathon/models"
)

// Variant selects the column matching and keyword rules of an import
type Variant string

// Variant values
const (
	// VariantStrict matches normalised header names exactly and skips empty
	// district and taluk cells
	VariantStrict Variant = "strict"
	// VariantExtended matches headers by substring, fills gaps with Unknown
	// and keys taluks by district
	VariantExtended Variant = "extended"
)

// UnknownValue stands in for a missing district or taluk cell in the extended variant
const UnknownValue = "Unknown"

// Import errors
var (
	ErrUnknownVariant    = errors.New("unknown import variant")
	ErrUnsupportedFormat = errors.New("unsupported import format")
)

var criticalKeywords = map[Variant][]string{
	VariantStrict:   {"urgent", "critical", "emergency"},
	VariantExtended: {"urgent", "suicide", "emergency", "critical", "frustrat"},
}

// ParseVariant reads a variant name; the empty string selects VariantStrict
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VariantStrict, nil
	case VariantStrict, VariantExtended:
		return v, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}
}

// CriticalKeywords returns the keywords that flag a row as critical
func (v Variant) CriticalKeywords() []string {
	kws := criticalKeywords[v]
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// table is a header row plus data rows with trimmed cells
type table struct {
	headers []string
	rows    [][]string
}

// CountFile dispatches on the file extension. PDFs are not parsed and report a
// single row. Anything that is not a spreadsheet is read as comma separated text.
func CountFile(name string, r io.Reader, variant Variant) (models.ImportResult, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return models.ImportResult{
			Total:      1,
			ByDistrict: map[string]int{},
			ByTaluk:    map[string]int{},
			IsPDF:      true,
		}, nil
	case ".xlsx", ".xlsm":
		return CountXLSX(r, variant)
	case ".xls":
		return models.ImportResult{}, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	default:
		return CountCSV(r, variant)
	}
}

func count(t table, variant Variant) (models.ImportResult, error) {
	switch variant {
	case VariantStrict:
		return countStrict(t), nil
	case VariantExtended:
		return countExtended(t), nil
	default:
		return models.ImportResult{}, fmt.Errorf("%q: %w", variant, ErrUnknownVariant)
	}
}

func newResult(total int) models.ImportResult {
	return models.ImportResult{
		Total:      total,
		ByDistrict: map[string]int{},
		ByTaluk:    map[string]int{},
	}
}

func hasCriticalKeyword(desc string, variant Variant) bool {
	desc = strings.ToLower(desc)
	for _, kw := range criticalKeywords[variant] {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// normalizeHeader lower-cases a header and strips whitespace and hyphens
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func countStrict(t table) models.ImportResult {
	res := newResult(len(t.rows))
	for _, cells := range t.rows {
		row := make(map[string]string, len(t.headers))
		for i, h := range t.headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			row[normalizeHeader(h)] = cell
		}

		if d := row["district"]; d != "" {
			res.ByDistrict[d]++
		}
		if tk := row["taluk"]; tk != "" {
			res.ByTaluk[tk]++
		}
		if hasCriticalKeyword(row["description"], VariantStrict) {
			res.Critical++
		}
	}
	return res
}

func columnContaining(headers []string, needles ...string) int {
	for i, h := range headers {
		h = strings.ToLower(h)
		for _, n := range needles {
			if strings.Contains(h, n) {
				return i
			}
		}
	}
	return -1
}

func cellOr(cells []string, idx int, fallback string) string {
	if idx < 0 || idx >= len(cells) {
		return fallback
	}
	return cells[idx]
}

func countExtended(t table) models.ImportResult {
	res := newResult(len(t.rows))
	districtIdx := columnContaining(t.headers, "district")
	talukIdx := columnContaining(t.headers, "taluk")
	descIdx := columnContaining(t.headers, "desc")

	for _, cells := range t.rows {
		district := cellOr(cells, districtIdx, UnknownValue)
		taluk := cellOr(cells, talukIdx, UnknownValue)

		res.ByDistrict[district]++
		res.ByTaluk[TalukKey(district, taluk)]++
		if hasCriticalKeyword(cellOr(cells, descIdx, ""), VariantExtended) {
			res.Critical++
		}
	}
	return res
}

// TalukKey is the extended variant's taluk grouping key
func TalukKey(district, taluk string) string {
	return district + " · " + taluk
}
