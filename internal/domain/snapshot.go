package domain

import "time"

// StatsSnapshot is a pure projection over the filtered collection and the
// derived alert buckets. It is recomputed whenever its inputs change, never
// mutated in place.
type StatsSnapshot struct {
	Total           int
	HighPriority    int
	Categories      int
	CriticalPending int
	Pending         int
	OnHold          int
	OutOfRule       int
	Trend           string
}

// SnapshotRecord is a persisted stats snapshot, captured once per dataset
// load so trends survive process restarts.
type SnapshotRecord struct {
	ID         string
	DatasetID  string
	Snapshot   StatsSnapshot
	RecordedAt time.Time
}
