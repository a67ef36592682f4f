package models

// RiskColor is the three-level map colour of a district
type RiskColor string

// RiskColor values
const (
	RiskColorGreen  RiskColor = "green"
	RiskColorYellow RiskColor = "yellow"
	RiskColorRed    RiskColor = "red"
)

// DistrictStats is the per-district rollup used by the collector map
type DistrictStats struct {
	District            string    `json:"district"`
	Total               int       `json:"total"`
	HighAndCritical     int       `json:"highAndCritical"`
	SevereDistressCount int       `json:"severeDistressCount"`
	AveragePendingDays  int       `json:"averagePendingDays"`
	ResolvedCount       int       `json:"resolvedCount"`
	RiskColor           RiskColor `json:"riskColor"`
}

// TalukStats is the per-taluk rollup inside one district
type TalukStats struct {
	Taluk               string `json:"taluk"`
	Total               int    `json:"total"`
	HighAndCritical     int    `json:"highAndCritical"`
	SevereDistressCount int    `json:"severeDistressCount"`
	AveragePendingDays  int    `json:"averagePendingDays"`
}

// CategoryStats counts manus per risk level for one department
type CategoryStats struct {
	Category            DepartmentCategory `json:"category"`
	ByRisk              map[RiskLevel]int  `json:"byRisk"`
	SevereDistressCount int                `json:"severeDistressCount"`
}

// SentimentCount is one bucket of a sentiment distribution
type SentimentCount struct {
	Sentiment Sentiment `json:"sentiment"`
	Count     int       `json:"count"`
}
