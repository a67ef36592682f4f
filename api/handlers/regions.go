package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Gunal77/web-hackathon/config"
	"github.com/Gunal77/web-hackathon/databases"
)

// DistrictsHandler returns the districts in display order
func DistrictsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, databases.Districts())
}

// TaluksHandler returns the taluks of one district
func TaluksHandler(w http.ResponseWriter, r *http.Request) {
	district := mux.Vars(r)["district"]
	taluks := databases.TaluksForDistrict(district)
	if taluks == nil {
		config.ErrorStatus("unknown district", http.StatusNotFound, w, fmt.Errorf("%q: %w", district, databases.ErrUnknownDistrict))
		return
	}
	writeJSON(w, http.StatusOK, taluks)
}

// DistrictCenterHandler returns the map centre of a district. Unknown
// districts get the state view.
func DistrictCenterHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, databases.DistrictCenter(mux.Vars(r)["district"]))
}
