package domain

import "time"

// IncidentState enumerates the canonical states every downstream predicate keys on.
type IncidentState string

const (
	StateOpen       IncidentState = "Open"
	StateInProgress IncidentState = "InProgress"
	StateAssigned   IncidentState = "Assigned"
	StateOnHold     IncidentState = "OnHold"
	StateClosed     IncidentState = "Closed"
	StateCancelled  IncidentState = "Cancelled"
	StateUnknown    IncidentState = "Unknown"
)

// IsActive reports whether work on the incident is still expected to progress.
func (s IncidentState) IsActive() bool {
	return s == StateOpen || s == StateInProgress || s == StateAssigned
}

// Priority enumerates canonical priority tiers, P1 most severe.
type Priority string

const (
	PriorityP1        Priority = "P1"
	PriorityP2        Priority = "P2"
	PriorityP3        Priority = "P3"
	PriorityP4        Priority = "P4"
	PriorityUndefined Priority = "Undefined"
)

// IsHigh reports whether the priority counts as high priority (P1 or P2).
func (p Priority) IsHigh() bool {
	return p == PriorityP1 || p == PriorityP2
}

// CategoryUncategorized is the sentinel canonical category for empty input.
const CategoryUncategorized = "Uncategorized"

// RawIncident is one best-effort row as exported by the upstream ITSM tool.
// Every field is free text; nothing is validated at this stage.
type RawIncident struct {
	Number           string
	ShortDescription string
	Caller           string
	Category         string
	AssignmentGroup  string
	AssignedTo       string
	Location         string
	Opened           string
	Updated          string
	State            string
	Priority         string
}

// Incident is the normalized record. It is built once from a RawIncident and
// then held immutably for the lifetime of the loaded dataset; a new upload
// replaces the whole collection.
type Incident struct {
	Number           string
	ShortDescription string
	Caller           string
	Category         string // canonical classifier output
	RawCategory      string
	AssignmentGroup  string
	AssignedTo       string
	Location         string
	Opened           time.Time
	Updated          time.Time
	State            IncidentState
	RawState         string
	Priority         Priority
	RawPriority      string
}

// Request is a parallel ticket type used only for aggregate counts.
type Request struct {
	Number string
	Opened string
}
