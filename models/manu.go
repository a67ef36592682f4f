package models

import "time"

// Sentiment is the classified emotional tone of a manu description
type Sentiment string

// Sentiment values, ordered by increasing severity
const (
	SentimentPositive       Sentiment = "Positive"
	SentimentNeutral        Sentiment = "Neutral"
	SentimentNegative       Sentiment = "Negative"
	SentimentSevereDistress Sentiment = "Severe Distress"
)

// Sentiments lists every sentiment from least to most severe
var Sentiments = []Sentiment{
	SentimentPositive,
	SentimentNeutral,
	SentimentNegative,
	SentimentSevereDistress,
}

// Valid reports whether s is a known sentiment
func (s Sentiment) Valid() bool {
	return s.Severity() >= 0
}

// Severity returns the position of s in Sentiments, or -1 if unknown
func (s Sentiment) Severity() int {
	for i, v := range Sentiments {
		if v == s {
			return i
		}
	}
	return -1
}

// RiskLevel is the derived urgency of a manu
type RiskLevel string

// RiskLevel values, ordered by increasing severity
const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// RiskLevels lists every risk level from least to most severe
var RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh, RiskCritical}

// Valid reports whether r is a known risk level
func (r RiskLevel) Valid() bool {
	return r.Severity() >= 0
}

// Severity returns the position of r in RiskLevels, or -1 if unknown
func (r RiskLevel) Severity() int {
	for i, v := range RiskLevels {
		if v == r {
			return i
		}
	}
	return -1
}

// IsHighOrCritical is true for High and Critical
func (r RiskLevel) IsHighOrCritical() bool {
	return r == RiskHigh || r == RiskCritical
}

// ManuStatus is the stored workflow status of a manu
type ManuStatus string

// ManuStatus values
const (
	StatusSubmitted  ManuStatus = "Submitted"
	StatusInProgress ManuStatus = "In Progress"
	StatusResolved   ManuStatus = "Resolved"
)

// ManuStatuses lists the statuses in workflow order
var ManuStatuses = []ManuStatus{StatusSubmitted, StatusInProgress, StatusResolved}

// Valid reports whether s is one of the three stored statuses
func (s ManuStatus) Valid() bool {
	return s == StatusSubmitted || s == StatusInProgress || s == StatusResolved
}

// DepartmentCategory is the government department a manu is routed to
type DepartmentCategory string

// DepartmentCategory values
const (
	DepartmentHealth      DepartmentCategory = "Health"
	DepartmentRevenue     DepartmentCategory = "Revenue"
	DepartmentElectricity DepartmentCategory = "Electricity"
	DepartmentWaterSupply DepartmentCategory = "Water Supply"
	DepartmentRoads       DepartmentCategory = "Roads"
	DepartmentPolice      DepartmentCategory = "Police"
	DepartmentEducation   DepartmentCategory = "Education"
)

// DepartmentCategories lists the seven departments
var DepartmentCategories = []DepartmentCategory{
	DepartmentHealth,
	DepartmentRevenue,
	DepartmentElectricity,
	DepartmentWaterSupply,
	DepartmentRoads,
	DepartmentPolice,
	DepartmentEducation,
}

// Valid reports whether d is one of the seven departments
func (d DepartmentCategory) Valid() bool {
	for _, v := range DepartmentCategories {
		if v == d {
			return true
		}
	}
	return false
}

// LifecycleStatus is the display-only label derived from status, risk and age.
// It is never stored on a Manu.
type LifecycleStatus string

// LifecycleStatus values
const (
	LifecycleNew               LifecycleStatus = "New"
	LifecycleUnderReview       LifecycleStatus = "Under Review"
	LifecycleActionTaken       LifecycleStatus = "Action Taken"
	LifecyclePendingWithReason LifecycleStatus = "Pending with Reason"
	LifecycleEscalated         LifecycleStatus = "Escalated"
	LifecycleCompleted         LifecycleStatus = "Completed"
)

// LifecycleStatuses lists every lifecycle label in display order
var LifecycleStatuses = []LifecycleStatus{
	LifecycleNew,
	LifecycleUnderReview,
	LifecycleActionTaken,
	LifecyclePendingWithReason,
	LifecycleEscalated,
	LifecycleCompleted,
}

// Valid reports whether l is a known lifecycle label
func (l LifecycleStatus) Valid() bool {
	for _, v := range LifecycleStatuses {
		if v == l {
			return true
		}
	}
	return false
}

// CriticalSentimentType labels why a manu was flagged as critical
type CriticalSentimentType string

// CriticalSentimentType values, in matching priority order
const (
	CriticalSuicideRisk        CriticalSentimentType = "Suicide risk"
	CriticalExtremeFrustration CriticalSentimentType = "Extreme frustration"
	CriticalMentalDistress     CriticalSentimentType = "Mental distress"
	CriticalHealthEmergency    CriticalSentimentType = "Health emergency"
)

// Manu holds a single citizen grievance together with its derived fields
type Manu struct {
	ID                 string             `json:"id"`
	CitizenName        string             `json:"citizenName"`
	District           string             `json:"district"`
	Taluk              string             `json:"taluk"`
	DepartmentCategory DepartmentCategory `json:"departmentCategory"`
	Title              string             `json:"title"`
	DescriptionText    string             `json:"descriptionText"`
	Sentiment          Sentiment          `json:"sentiment"`
	RiskLevel          RiskLevel          `json:"riskLevel"`
	PriorityScore      int                `json:"priorityScore"`
	Status             ManuStatus         `json:"status"`
	CreatedDate        time.Time          `json:"createdDate"`
	PendingDays        int                `json:"pendingDays"`
	LastUpdatedDate    time.Time          `json:"lastUpdatedDate"`
}

// IsCritical is true when the manu has Severe Distress sentiment or Critical risk
func (m Manu) IsCritical() bool {
	return m.Sentiment == SentimentSevereDistress || m.RiskLevel == RiskCritical
}

// NewManuInput holds the citizen supplied fields used to create a manu
type NewManuInput struct {
	CitizenName        string             `json:"citizenName"`
	District           string             `json:"district"`
	Taluk              string             `json:"taluk"`
	DepartmentCategory DepartmentCategory `json:"departmentCategory"`
	Title              string             `json:"title"`
	DescriptionText    string             `json:"descriptionText"`
}

// UpdateStatusInput holds the body of a status update request
type UpdateStatusInput struct {
	Status ManuStatus `json:"status"`
}

// ManuDetail is a manu with its display-time derived labels
type ManuDetail struct {
	Manu
	LifecycleStatus       LifecycleStatus        `json:"lifecycleStatus"`
	CriticalSentimentType *CriticalSentimentType `json:"criticalSentimentType"`
	ShortSummary          string                 `json:"shortSummary"`
}
