package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDatasetLoaded   EventType = "dataset_loaded"
	EventCriticalBacklog EventType = "critical_backlog"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	DatasetID string      `json:"dataset_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DatasetLoadedPayload describes a wholesale dataset replacement.
type DatasetLoadedPayload struct {
	Kind           string `json:"kind"`
	Rows           int    `json:"rows"`
	OpenedDefaults int    `json:"opened_defaults"`
	UpdatedClamps  int    `json:"updated_clamps"`
}

// CriticalBacklogPayload is emitted when a freshly loaded dataset carries
// open high-priority incidents.
type CriticalBacklogPayload struct {
	CriticalPending int      `json:"critical_pending"`
	Numbers         []string `json:"numbers"`
}
