// Package classify maps the free-text vocabularies of upstream ITSM exports
// onto the canonical categories, states and priorities used by every
// downstream predicate. All classifiers are pure, total functions: they
// always return a value and never fail.
package classify

import (
	"strings"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// categoryRule pairs a bucket with the (Portuguese/English) keywords that
// select it. Rules are evaluated in order and the first match wins, so
// precedence is data: "network security" lands in IT Security because that
// rule sits above Network.
type categoryRule struct {
	bucket   string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Backup/Restore", []string{"backup", "restore"}},
	{"IT Security", []string{"security", "segurança"}},
	{"Monitoring", []string{"monitor"}},
	{"Network", []string{"rede", "network"}},
	{"Server", []string{"servidor", "server"}},
	{"Service Support", []string{"suporte", "support"}},
	{"Software", []string{"software", "programa"}},
	{"Hardware", []string{"hardware", "equipment"}},
	{"Cloud", []string{"cloud", "nuvem"}},
	{"Database", []string{"database", "banco de dados"}},
}

// Category maps a free-text category onto its canonical bucket. Input that
// matches no rule passes through trimmed: the business has not defined a
// bucket for it and it must not be forced into one.
func Category(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.CategoryUncategorized
	}
	lower := strings.ToLower(trimmed)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.bucket
			}
		}
	}
	return trimmed
}
