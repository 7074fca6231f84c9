package dashboard

import (
	"fmt"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// Aggregate folds the filtered collection and the derived buckets into a
// single snapshot. The second return is false when the filtered collection is
// empty, letting consumers distinguish "no data" from "zero of something".
func Aggregate(filtered []domain.Incident, requestCount int, buckets Buckets) (domain.StatsSnapshot, bool) {
	if len(filtered) == 0 {
		return domain.StatsSnapshot{}, false
	}

	highPriority := 0
	categories := make(map[string]struct{})
	for _, inc := range filtered {
		if inc.Priority.IsHigh() {
			highPriority++
		}
		categories[inc.Category] = struct{}{}
	}

	trend := "0%"
	if pct := float64(highPriority) / float64(len(filtered)) * 100; pct > 0 {
		trend = fmt.Sprintf("↑ %.2f%%", pct)
	}

	return domain.StatsSnapshot{
		Total:           len(filtered) + requestCount,
		HighPriority:    highPriority,
		Categories:      len(categories),
		CriticalPending: len(buckets.CriticalPending),
		Pending:         len(buckets.Pending),
		OnHold:          len(buckets.OnHold),
		OutOfRule:       len(buckets.OutOfRule),
		Trend:           trend,
	}, true
}
