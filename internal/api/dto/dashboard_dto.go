package dto

import "time"

// IncidentSummary is the wire shape of a normalized incident.
type IncidentSummary struct {
	Number           string    `json:"number"`
	ShortDescription string    `json:"short_description,omitempty"`
	Caller           string    `json:"caller,omitempty"`
	Category         string    `json:"category"`
	AssignmentGroup  string    `json:"assignment_group,omitempty"`
	AssignedTo       string    `json:"assigned_to,omitempty"`
	Location         string    `json:"location,omitempty"`
	Opened           time.Time `json:"opened"`
	Updated          time.Time `json:"updated"`
	State            string    `json:"state"`
	Priority         string    `json:"priority"`
}

// StatsResponse mirrors the stats snapshot.
type StatsResponse struct {
	Total           int    `json:"total"`
	HighPriority    int    `json:"high_priority"`
	Categories      int    `json:"categories"`
	CriticalPending int    `json:"critical_pending"`
	Pending         int    `json:"pending"`
	OnHold          int    `json:"on_hold"`
	OutOfRule       int    `json:"out_of_rule"`
	Trend           string `json:"trend"`
}

// DiagnosticsResponse carries the filter evaluation counters.
type DiagnosticsResponse struct {
	CancelledCount   int `json:"cancelled_count"`
	OutOfPeriodCount int `json:"out_of_period_count"`
	DateErrorCount   int `json:"date_error_count"`
}

// DashboardResponse is the full derived view for the current criteria.
type DashboardResponse struct {
	DatasetID       string              `json:"dataset_id"`
	Filtered        []IncidentSummary   `json:"filtered"`
	CriticalPending []IncidentSummary   `json:"critical_pending"`
	Pending         []IncidentSummary   `json:"pending"`
	OnHold          []IncidentSummary   `json:"on_hold"`
	OutOfRule       []IncidentSummary   `json:"out_of_rule"`
	Categories      []string            `json:"categories"`
	Stats           *StatsResponse      `json:"stats,omitempty"`
	Diagnostics     DiagnosticsResponse `json:"diagnostics"`
}

// UploadResponse acknowledges a dataset replacement.
type UploadResponse struct {
	DatasetID string `json:"dataset_id"`
	Rows      int    `json:"rows"`
	Repairs   struct {
		OpenedRecovered int `json:"opened_recovered"`
		OpenedDefaulted int `json:"opened_defaulted"`
		UpdatedFallback int `json:"updated_fallback"`
		UpdatedClamped  int `json:"updated_clamped"`
	} `json:"repairs"`
}

// SnapshotRecordResponse is one persisted load-time snapshot.
type SnapshotRecordResponse struct {
	ID         string        `json:"id"`
	DatasetID  string        `json:"dataset_id"`
	Stats      StatsResponse `json:"stats"`
	RecordedAt time.Time     `json:"recorded_at"`
}
