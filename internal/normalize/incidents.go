package normalize

import (
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/incident-dashboard/internal/classify"
	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// Diagnostics counts the recoverable repairs applied during normalization.
// Repairs never surface as errors; these counters exist for data-quality
// review.
type Diagnostics struct {
	OpenedRecovered int // Opened unparsable, date recovered from the ticket number
	OpenedDefaulted int // Opened unparsable and unrecoverable, defaulted to now
	UpdatedFallback int // Updated unparsable, set to Opened
	UpdatedClamped  int // Updated preceded Opened and was clamped to it
}

// Incidents normalizes raw export rows into the immutable incident
// collection. The function is total: every row produces exactly one incident
// regardless of how malformed its fields are.
func Incidents(rows []domain.RawIncident, now time.Time, logger *zap.Logger) ([]domain.Incident, Diagnostics) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var diag Diagnostics
	incidents := make([]domain.Incident, 0, len(rows))

	for _, row := range rows {
		row = Sanitize(row)

		opened, err := Timestamp(row.Opened)
		if err != nil {
			if recovered, ok := TimestampFromNumber(row.Number); ok {
				opened = recovered
				diag.OpenedRecovered++
				logger.Warn("opened date recovered from ticket number",
					zap.String("number", row.Number),
					zap.String("opened", row.Opened))
			} else {
				opened = now
				diag.OpenedDefaulted++
				logger.Warn("opened date unrecoverable, defaulted to now",
					zap.String("number", row.Number),
					zap.String("opened", row.Opened))
			}
		}

		updated, err := Timestamp(row.Updated)
		if err != nil {
			updated = opened
			if row.Updated != "" {
				diag.UpdatedFallback++
			}
		}
		if updated.Before(opened) {
			updated = opened
			diag.UpdatedClamped++
			logger.Warn("updated date preceded opened, clamped",
				zap.String("number", row.Number),
				zap.String("updated", row.Updated))
		}

		incidents = append(incidents, domain.Incident{
			Number:           row.Number,
			ShortDescription: row.ShortDescription,
			Caller:           row.Caller,
			Category:         classify.Category(row.Category),
			RawCategory:      row.Category,
			AssignmentGroup:  row.AssignmentGroup,
			AssignedTo:       row.AssignedTo,
			Location:         row.Location,
			Opened:           opened,
			Updated:          updated,
			State:            classify.State(row.State),
			RawState:         row.State,
			Priority:         classify.Priority(row.Priority),
			RawPriority:      row.Priority,
		})
	}

	return incidents, diag
}
