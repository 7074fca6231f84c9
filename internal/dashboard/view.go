package dashboard

import (
	"sort"
	"time"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// View bundles every derived value the reporting layer renders. Stats is nil
// when the filtered collection is empty.
type View struct {
	Filtered    []domain.Incident
	Buckets     Buckets
	Categories  []string
	Stats       *domain.StatsSnapshot
	Diagnostics FilterDiagnostics
}

// BuildView recomputes all derived values from the current collections and a
// fresh copy of the caller's criteria.
func BuildView(incidents []domain.Incident, requests []domain.Request, criteria domain.FilterCriteria, now time.Time) View {
	filtered, diag := Filter(incidents, criteria)
	buckets := DeriveBuckets(incidents, filtered, now)

	var stats *domain.StatsSnapshot
	if snapshot, ok := Aggregate(filtered, len(requests), buckets); ok {
		stats = &snapshot
	}

	return View{
		Filtered:    filtered,
		Buckets:     buckets,
		Categories:  DistinctCategories(incidents),
		Stats:       stats,
		Diagnostics: diag,
	}
}

// DistinctCategories returns the de-duplicated, case-preserved canonical
// categories of the collection, sorted lexicographically, for filter UIs.
func DistinctCategories(incidents []domain.Incident) []string {
	seen := make(map[string]struct{}, len(incidents))
	out := make([]string, 0)
	for _, inc := range incidents {
		if _, ok := seen[inc.Category]; ok {
			continue
		}
		seen[inc.Category] = struct{}{}
		out = append(out, inc.Category)
	}
	sort.Strings(out)
	return out
}
