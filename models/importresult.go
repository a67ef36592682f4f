package models

// ImportResult holds the counts produced by the demo bulk upload.
// Nothing in an import is written to the manu store.
type ImportResult struct {
	Total      int            `json:"total"`
	ByDistrict map[string]int `json:"byDistrict"`
	ByTaluk    map[string]int `json:"byTaluk"`
	Critical   int            `json:"critical"`
	IsPDF      bool           `json:"isPdf,omitempty"`
}
