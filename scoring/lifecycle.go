package scoring

import "github.com/Gunal77/web-hackathon/models"

// Lifecycle age thresholds, in days
const (
	EscalationDays    = 10
	ActionTakenDays   = 3
	PendingReasonDays = 7
)

// LifecycleStatus maps a manu's stored state to its display label. Rules are
// checked in order and the first match wins; escalation of in-progress manus
// takes precedence over everything else.
func LifecycleStatus(status models.ManuStatus, risk models.RiskLevel, pendingDays int) models.LifecycleStatus {
	switch {
	case status == models.StatusInProgress && (pendingDays > EscalationDays || risk.IsHighOrCritical()):
		return models.LifecycleEscalated
	case status == models.StatusResolved:
		return models.LifecycleCompleted
	case status == models.StatusInProgress && pendingDays <= ActionTakenDays:
		return models.LifecycleActionTaken
	case status == models.StatusInProgress:
		return models.LifecycleUnderReview
	case pendingDays > PendingReasonDays:
		return models.LifecyclePendingWithReason
	default:
		return models.LifecycleNew
	}
}

// LifecycleOf is LifecycleStatus for a whole manu
func LifecycleOf(m models.Manu) models.LifecycleStatus {
	return LifecycleStatus(m.Status, m.RiskLevel, m.PendingDays)
}
