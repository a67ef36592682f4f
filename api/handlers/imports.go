package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/importer"
)

// MaxImportSize bounds the multipart body of an import upload
const MaxImportSize = 10 << 20

// Import exported for testing purposes
type Import struct {
	Metrics *api.Metrics
}

// CountHandler counts the rows of an uploaded CSV, Excel or PDF file by
// district, taluk and critical keywords. Nothing is stored.
func (i Import) CountHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImportSize)
	if err := r.ParseMultipartForm(MaxImportSize); err != nil {
		config.ErrorStatus("failed to parse upload", http.StatusBadRequest, w, err)
		return
	}

	variant, err := importer.ParseVariant(r.FormValue("variant"))
	if err != nil {
		config.ErrorStatus("invalid variant", http.StatusBadRequest, w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.ErrorStatus("missing file", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	result, err := importer.CountFile(header.Filename, file, variant)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			config.ErrorStatus("unsupported file format", http.StatusUnsupportedMediaType, w, err)
			return
		}
		config.ErrorStatus("failed to read import file", http.StatusBadRequest, w, err)
		return
	}

	format := importFormat(header.Filename)
	if i.Metrics != nil {
		i.Metrics.ImportsTotal.WithLabelValues(string(variant), format).Inc()
	}
	zap.S().Infow("import counted",
		"file", header.Filename,
		"variant", variant,
		"total", result.Total,
		"critical", result.Critical)
	writeJSON(w, http.StatusOK, result)
}

func importFormat(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "pdf", "xlsx", "xlsm":
		return ext
	default:
		return "csv"
	}
}
