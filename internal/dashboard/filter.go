// Package dashboard derives every reporting view from a normalized incident
// collection and the caller-owned filter criteria: the filtered list, the
// four alert buckets, the distinct category list and the stats snapshot.
// Derivation is a pure O(n) recompute on every call; nothing is cached, so a
// stale view can never be observed after an input changes.
package dashboard

import (
	"strings"
	"time"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// FilterDiagnostics counts per-evaluation observations for data-quality
// review. They are informational; filtering itself never fails.
type FilterDiagnostics struct {
	Cancelled   int
	OutOfPeriod int
	DateError   int
}

const dayLayout = "2006-01-02"

// Filter evaluates every incident against the criteria. A non-empty search
// query selects search mode and the structured category/status/date filters
// are ignored entirely; otherwise all three structured conditions must hold.
// The cancelled counter is maintained in both modes.
func Filter(incidents []domain.Incident, criteria domain.FilterCriteria) ([]domain.Incident, FilterDiagnostics) {
	var diag FilterDiagnostics

	query := strings.ToLower(strings.TrimSpace(criteria.SearchQuery))
	start, end, rangeErr := parseRange(criteria.DateRange)

	matched := make([]domain.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if inc.State == domain.StateCancelled {
			diag.Cancelled++
		}

		if query != "" {
			if matchesSearch(inc, query) {
				matched = append(matched, inc)
			}
			continue
		}

		matchesCategory := criteria.Category == "" ||
			strings.Contains(strings.ToLower(inc.Category), strings.ToLower(criteria.Category))
		matchesStatus := criteria.Status == "" || string(inc.State) == criteria.Status

		if rangeErr != nil || inc.Opened.IsZero() {
			diag.DateError++
			continue
		}
		inRange := !inc.Opened.Before(start) && !inc.Opened.After(end)
		if !inRange {
			diag.OutOfPeriod++
		}

		if matchesCategory && matchesStatus && inRange {
			matched = append(matched, inc)
		}
	}

	return matched, diag
}

// matchesSearch tests the query against every searchable field, plus the
// leading-zero-insensitive ticket number comparison so "42" finds
// "INC0000042".
func matchesSearch(inc domain.Incident, query string) bool {
	fields := []string{
		inc.Number,
		inc.ShortDescription,
		inc.Caller,
		inc.Category,
		inc.AssignmentGroup,
		inc.AssignedTo,
		inc.Location,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	number := strings.TrimLeft(strings.ToLower(inc.Number), "0")
	return strings.Contains(number, strings.TrimLeft(query, "0"))
}

// parseRange resolves the inclusive [startOfDay, endOfDay] window. An empty
// bound leaves that side unlimited; a malformed bound is reported so the
// caller can count affected records instead of failing.
func parseRange(r domain.DateRange) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

	if s := strings.TrimSpace(r.Start); s != "" {
		day, err := time.Parse(dayLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = day
	}
	if s := strings.TrimSpace(r.End); s != "" {
		day, err := time.Parse(dayLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = endOfDay(day)
	}
	return start, end, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
