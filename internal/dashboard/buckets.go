package dashboard

import (
	"time"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// staleAfter is how long an active incident may sit without an update before
// it falls out of rule.
const staleAfter = 48 * time.Hour

// Buckets are the four derived alert sets. They are recomputed from their
// base collections on every call, never persisted.
type Buckets struct {
	CriticalPending []domain.Incident
	Pending         []domain.Incident
	OnHold          []domain.Incident
	OutOfRule       []domain.Incident
}

// bucketBase declares which collection a bucket derives from. Critical and
// pending are operational alarms and must reflect the true backlog, so they
// ignore the user's current narrowing; on-hold and out-of-rule are
// investigative drill-downs scoped to the filtered view.
type bucketBase int

const (
	baseFull bucketBase = iota
	baseFiltered
)

type bucketDef struct {
	name  string
	base  bucketBase
	match func(domain.Incident, time.Time) bool
	dest  func(*Buckets) *[]domain.Incident
}

var bucketDefs = []bucketDef{
	{
		name: "criticalPending",
		base: baseFull,
		match: func(inc domain.Incident, _ time.Time) bool {
			return inc.Priority.IsHigh() &&
				inc.State != domain.StateClosed &&
				inc.State != domain.StateCancelled
		},
		dest: func(b *Buckets) *[]domain.Incident { return &b.CriticalPending },
	},
	{
		name: "pending",
		base: baseFull,
		match: func(inc domain.Incident, _ time.Time) bool {
			return inc.State != domain.StateClosed &&
				inc.State != domain.StateCancelled &&
				inc.State != domain.StateOnHold
		},
		dest: func(b *Buckets) *[]domain.Incident { return &b.Pending },
	},
	{
		name: "onHold",
		base: baseFiltered,
		match: func(inc domain.Incident, _ time.Time) bool {
			return inc.State == domain.StateOnHold
		},
		dest: func(b *Buckets) *[]domain.Incident { return &b.OnHold },
	},
	{
		name: "outOfRule",
		base: baseFiltered,
		match: func(inc domain.Incident, now time.Time) bool {
			if !inc.State.IsActive() {
				return false
			}
			updated := inc.Updated
			if updated.IsZero() {
				updated = now
			}
			return now.Sub(updated) > staleAfter
		},
		dest: func(b *Buckets) *[]domain.Incident { return &b.OutOfRule },
	},
}

// DeriveBuckets computes the four alert sets. The full/filtered base split
// per bucket is deliberate and load-bearing.
func DeriveBuckets(full, filtered []domain.Incident, now time.Time) Buckets {
	var buckets Buckets
	for _, def := range bucketDefs {
		base := full
		if def.base == baseFiltered {
			base = filtered
		}
		members := make([]domain.Incident, 0)
		for _, inc := range base {
			if def.match(inc, now) {
				members = append(members, inc)
			}
		}
		*def.dest(&buckets) = members
	}
	return buckets
}
