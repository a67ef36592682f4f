package models

import "time"

// Trend is the direction of a period-over-period change
type Trend string

// Trend values
const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// PercentChange is a formatted comparison against the previous period
type PercentChange struct {
	Value string `json:"value"`
	Trend Trend  `json:"trend"`
}

// CountWithChange is a headline count plus its change against the previous period
type CountWithChange struct {
	Count    int           `json:"count"`
	Previous int           `json:"previous"`
	Change   PercentChange `json:"change"`
}

// DepartmentLifecycle breaks one department's manus down by lifecycle label
type DepartmentLifecycle struct {
	Department       DepartmentCategory      `json:"department"`
	Total            int                     `json:"total"`
	StatusCounts     map[LifecycleStatus]int `json:"statusCounts"`
	CompletedCount   int                     `json:"completedCount"`
	AvgClosureDays   int                     `json:"avgClosureDays"`
	TopPriorityManus []Manu                  `json:"topPriorityManus"`
}

// TalukHotspot summarises the open workload of one taluk
type TalukHotspot struct {
	District  string `json:"district"`
	Taluk     string `json:"taluk"`
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Escalated int    `json:"escalated"`
	Critical  int    `json:"critical"`
}

// Kanban holds the three short lists shown on the collector board
type Kanban struct {
	HighPriority []Manu `json:"highPriority"`
	LongOpen     []Manu `json:"longOpen"`
	Escalated    []Manu `json:"escalated"`
}

// CollectorOverview is the collector dashboard for one filter
type CollectorOverview struct {
	District          string                `json:"district"`
	From              time.Time             `json:"from"`
	To                time.Time             `json:"to"`
	Total             CountWithChange       `json:"total"`
	Critical          CountWithChange       `json:"critical"`
	Departments       []DepartmentLifecycle `json:"departments"`
	Taluks            []TalukHotspot        `json:"taluks"`
	Kanban            Kanban                `json:"kanban"`
	CriticalPetitions []ManuDetail          `json:"criticalPetitions"`
}

// OfficerView selects which manus the taluk officer list shows
type OfficerView string

// OfficerView values
const (
	OfficerViewAll            OfficerView = "ALL"
	OfficerViewHighCritical   OfficerView = "HIGH_CRITICAL"
	OfficerViewSevereDistress OfficerView = "SEVERE_DISTRESS"
	OfficerViewBacklog        OfficerView = "BACKLOG"
)

// OfficerOverview is the taluk officer dashboard
type OfficerOverview struct {
	District            string            `json:"district"`
	Taluk               string            `json:"taluk"`
	View                OfficerView       `json:"view"`
	Total               int               `json:"total"`
	HighAndCritical     int               `json:"highAndCritical"`
	SevereDistressCount int               `json:"severeDistressCount"`
	BacklogCount        int               `json:"backlogCount"`
	RiskLevelCounts     map[RiskLevel]int `json:"riskLevelCounts"`
	Manus               []ManuDetail      `json:"manus"`
}
