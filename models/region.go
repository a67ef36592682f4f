package models

// AllDistricts is the district filter value that selects every district
const AllDistricts = "All Districts"

// Coordinates is a map centre for a district
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom,omitempty"`
}
