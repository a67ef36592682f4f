package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

// BacklogDays is the pending age above which a manu counts as backlog
const BacklogDays = 14

// ErrUnknownView is returned for an officer view outside the four known ones
var ErrUnknownView = errors.New("unknown officer view")

// ParseOfficerView reads a view name; the empty string selects ALL
func ParseOfficerView(s string) (models.OfficerView, error) {
	switch v := models.OfficerView(strings.ToUpper(strings.TrimSpace(s))); v {
	case "":
		return models.OfficerViewAll, nil
	case models.OfficerViewAll, models.OfficerViewHighCritical, models.OfficerViewSevereDistress, models.OfficerViewBacklog:
		return v, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownView)
	}
}

// OfficerOverview builds the worklist of one taluk. With no district and taluk
// the first pair found in all is used. Counts cover the whole taluk; the list
// holds the selected view sorted by priority.
func OfficerOverview(all []models.Manu, district, taluk string, view models.OfficerView) models.OfficerOverview {
	if district == "" && taluk == "" && len(all) > 0 {
		district, taluk = all[0].District, all[0].Taluk
	}

	var inTaluk, highCritical, severe, backlog []models.Manu
	riskCounts := make(map[models.RiskLevel]int, len(models.RiskLevels))
	for _, r := range models.RiskLevels {
		riskCounts[r] = 0
	}

	for _, m := range all {
		if m.District != district || m.Taluk != taluk {
			continue
		}
		inTaluk = append(inTaluk, m)
		riskCounts[m.RiskLevel]++
		if m.RiskLevel.IsHighOrCritical() {
			highCritical = append(highCritical, m)
		}
		if m.Sentiment == models.SentimentSevereDistress {
			severe = append(severe, m)
		}
		if m.PendingDays > BacklogDays {
			backlog = append(backlog, m)
		}
	}

	selected := inTaluk
	switch view {
	case models.OfficerViewHighCritical:
		selected = highCritical
	case models.OfficerViewSevereDistress:
		selected = severe
	case models.OfficerViewBacklog:
		selected = backlog
	default:
		view = models.OfficerViewAll
	}

	return models.OfficerOverview{
		District:            district,
		Taluk:               taluk,
		View:                view,
		Total:               len(inTaluk),
		HighAndCritical:     len(highCritical),
		SevereDistressCount: len(severe),
		BacklogCount:        len(backlog),
		RiskLevelCounts:     riskCounts,
		Manus:               scoring.Details(scoring.SortByPriority(selected)),
	}
}
