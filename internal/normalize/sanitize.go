package normalize

import (
	"strings"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// Raw-field defaults. State and Priority keep the source-language literals
// the classifiers recognize, so a defaulted row still classifies to
// Open/Undefined like any other.
const (
	defaultState    = "Aberto"
	defaultPriority = "Não definido"
)

// Sanitize fills missing fields with their documented defaults. The Number
// is only trimmed; callers depend on leading zeros being preserved.
func Sanitize(raw domain.RawIncident) domain.RawIncident {
	out := raw
	out.Number = strings.TrimSpace(out.Number)
	if strings.TrimSpace(out.Category) == "" {
		out.Category = domain.CategoryUncategorized
	}
	if strings.TrimSpace(out.State) == "" {
		out.State = defaultState
	}
	if strings.TrimSpace(out.Priority) == "" {
		out.Priority = defaultPriority
	}
	return out
}
