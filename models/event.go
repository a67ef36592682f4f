package models

import "time"

// ManuEvent types pushed to connected dashboards
const (
	EventManuCreated       = "manu_created"
	EventManuStatusUpdated = "manu_status_updated"
)

// ManuEvent describes a mutation of the manu store
type ManuEvent struct {
	Event      string     `json:"event"`
	Manu       Manu       `json:"data"`
	PrevStatus ManuStatus `json:"prevStatus,omitempty"`
	At         time.Time  `json:"at"`
}
