package scoring

import (
	"github.com/Gunal77/web-hackathon/classify"
	"github.com/Gunal77/web-hackathon/models"
)

// Detail attaches the display-time labels to m
func Detail(m models.Manu) models.ManuDetail {
	return models.ManuDetail{
		Manu:                  m,
		LifecycleStatus:       LifecycleOf(m),
		CriticalSentimentType: classify.CriticalSentimentType(m.DescriptionText),
		ShortSummary:          classify.ShortSummary(m.DescriptionText, classify.DefaultSummaryLength),
	}
}

// Details is Detail over a slice, preserving order
func Details(manus []models.Manu) []models.ManuDetail {
	out := make([]models.ManuDetail, 0, len(manus))
	for _, m := range manus {
		out = append(out, Detail(m))
	}
	return out
}
