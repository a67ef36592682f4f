package models

// PerformanceLevel is the department performance tier
type PerformanceLevel string

// PerformanceLevel values
const (
	PerformanceGood    PerformanceLevel = "good"
	PerformanceWarning PerformanceLevel = "warning"
	PerformancePoor    PerformanceLevel = "poor"
)

// DistrictRisk is the three-level district performance risk
type DistrictRisk string

// DistrictRisk values
const (
	DistrictRiskLow    DistrictRisk = "Low"
	DistrictRiskMedium DistrictRisk = "Medium"
	DistrictRiskHigh   DistrictRisk = "High"
)

// DepartmentPerformance holds SLA metrics for one department
type DepartmentPerformance struct {
	Department           DepartmentCategory `json:"department"`
	Total                int                `json:"total"`
	AvgTimeToFirstAction int                `json:"avgTimeToFirstAction"`
	AvgTimeToComplete    int                `json:"avgTimeToComplete"`
	SLABreachPct         int                `json:"slaBreachPct"`
	Performance          PerformanceLevel   `json:"performance"`
}

// DepartmentRate is a department's share of a district's manus
type DepartmentRate struct {
	Department DepartmentCategory `json:"department"`
	Count      int                `json:"count"`
	Rate       int                `json:"rate"`
}

// DistrictPerformance holds resolution metrics and ranking flags for one district
type DistrictPerformance struct {
	District          string           `json:"district"`
	Total             int              `json:"total"`
	Critical          int              `json:"critical"`
	Resolved          int              `json:"resolved"`
	AvgResolutionDays int              `json:"avgResolutionDays"`
	BestDepartment    string           `json:"bestDepartment"`
	WorstDepartment   string           `json:"worstDepartment"`
	RiskLevel         DistrictRisk     `json:"riskLevel"`
	DepartmentRates   []DepartmentRate `json:"departmentRates"`
	IsBest            bool             `json:"isBest,omitempty"`
	NeedsFocus        bool             `json:"needsFocus,omitempty"`
}
