package dashboard

import (
	"strings"

	"github.com/Gunal77/web-hackathon/models"
)

// CitizenList filters the citizen tracking list. The id query is a trimmed,
// case-sensitive substring; empty arguments do not filter.
func CitizenList(all []models.Manu, idQuery, district, taluk string) []models.Manu {
	idQuery = strings.TrimSpace(idQuery)
	out := make([]models.Manu, 0)
	for _, m := range all {
		if idQuery != "" && !strings.Contains(m.ID, idQuery) {
			continue
		}
		if district != "" && m.District != district {
			continue
		}
		if taluk != "" && m.Taluk != taluk {
			continue
		}
		out = append(out, m)
	}
	return out
}
