package classify

import (
	"strings"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

type stateRule struct {
	state    domain.IncidentState
	keywords []string
}

// Ordered so that terminal states win over the hold/active keywords they may
// also contain. "cancel" covers cancelled, canceled and cancelado.
var stateRules = []stateRule{
	{domain.StateCancelled, []string{"cancel"}},
	{domain.StateClosed, []string{"closed", "fechado"}},
	{domain.StateOnHold, []string{"hold", "pending", "aguardando"}},
	{domain.StateInProgress, []string{"in progress", "em andamento"}},
	{domain.StateAssigned, []string{"assigned", "atribuído", "atribuido"}},
	{domain.StateOpen, []string{"open", "aberto"}},
}

// State maps free-text state onto the canonical enum, defaulting to Unknown.
func State(raw string) domain.IncidentState {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return domain.StateUnknown
	}
	for _, rule := range stateRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.state
			}
		}
	}
	return domain.StateUnknown
}

// IsCancelled reports whether the raw state resolves to Cancelled.
func IsCancelled(raw string) bool {
	return State(raw) == domain.StateCancelled
}
