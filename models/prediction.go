package models

// ConfidenceLevel is how sure a prediction claims to be
type ConfidenceLevel string

// ConfidenceLevel values
const (
	ConfidenceLow    ConfidenceLevel = "Low"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceHigh   ConfidenceLevel = "High"
)

// SeasonalForecast is an expected seasonal rise in complaints for a department
type SeasonalForecast struct {
	Department          DepartmentCategory `json:"department"`
	ExpectedIncreasePct int                `json:"expectedIncreasePct"`
	HighRiskMonths      []string           `json:"highRiskMonths"`
	Reason              string             `json:"reason"`
}

// DeptSLAPrediction says whether a department is likely to miss its SLA
type DeptSLAPrediction struct {
	Department      DepartmentCategory `json:"department"`
	LikelyToMissSLA bool               `json:"likelyToMissSla"`
	Confidence      ConfidenceLevel    `json:"confidence"`
	Reason          string             `json:"reason"`
}

// DistrictCriticalPrediction says whether a district is likely to see critical manus
type DistrictCriticalPrediction struct {
	District       string          `json:"district"`
	LikelyCritical bool            `json:"likelyCritical"`
	Confidence     ConfidenceLevel `json:"confidence"`
	Reason         string          `json:"reason"`
}
