package classify

import (
	"strings"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

type priorityRule struct {
	priority domain.Priority
	keywords []string
}

// Exports carry priorities as "P1", "1 - Critical", "Prioridade 2" and the
// like; the tier digit is the reliable signal across both source languages.
var priorityRules = []priorityRule{
	{domain.PriorityP1, []string{"1"}},
	{domain.PriorityP2, []string{"2"}},
	{domain.PriorityP3, []string{"3"}},
	{domain.PriorityP4, []string{"4"}},
}

// Priority maps free-text priority onto P1..P4, defaulting to Undefined.
func Priority(raw string) domain.Priority {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return domain.PriorityUndefined
	}
	for _, rule := range priorityRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.priority
			}
		}
	}
	return domain.PriorityUndefined
}
