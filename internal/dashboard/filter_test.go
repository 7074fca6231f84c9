package dashboard

import (
	"testing"
	"time"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

func mkIncident(number string, opened time.Time, mods ...func(*domain.Incident)) domain.Incident {
	inc := domain.Incident{
		Number:   number,
		Category: "Network",
		Opened:   opened,
		Updated:  opened,
		State:    domain.StateOpen,
		Priority: domain.PriorityP3,
	}
	for _, mod := range mods {
		mod(&inc)
	}
	return inc
}

func TestFilterSearchModeIgnoresStructuredFilters(t *testing.T) {
	opened := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("INC0000042", opened, func(i *domain.Incident) {
			i.ShortDescription = "VPN down"
		}),
		mkIncident("INC0000043", opened, func(i *domain.Incident) {
			i.Category = "Hardware"
		}),
	}

	// The criteria would exclude both incidents in structured mode.
	criteria := domain.FilterCriteria{
		SearchQuery: "vpn",
		Category:    "Database",
		Status:      string(domain.StateClosed),
		DateRange:   domain.DateRange{Start: "2030-01-01", End: "2030-01-02"},
	}

	filtered, _ := Filter(incidents, criteria)
	if len(filtered) != 1 || filtered[0].Number != "INC0000042" {
		t.Fatalf("filtered = %v, want only INC0000042", numbers(filtered))
	}
}

func TestFilterSearchByNumber(t *testing.T) {
	opened := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("INC0000042", opened),
		mkIncident("INC0000420", opened),
		mkIncident("REQ0000007", opened),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"plain substring", "42", []string{"INC0000042", "INC0000420"}},
		{"zero padded query", "0042", []string{"INC0000042", "INC0000420"}},
		{"full number", "INC0000042", []string{"INC0000042"}},
		{"no match", "99", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, _ := Filter(incidents, domain.FilterCriteria{SearchQuery: tt.query})
			got := numbers(filtered)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestFilterStructuredMode(t *testing.T) {
	may := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	january := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("A", may),
		mkIncident("B", may, func(i *domain.Incident) { i.Category = "Hardware" }),
		mkIncident("C", may, func(i *domain.Incident) { i.State = domain.StateClosed }),
		mkIncident("D", january),
	}

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []string
	}{
		{
			name:     "no criteria matches everything",
			criteria: domain.FilterCriteria{},
			want:     []string{"A", "B", "C", "D"},
		},
		{
			name:     "category substring case insensitive",
			criteria: domain.FilterCriteria{Category: "net"},
			want:     []string{"A", "C", "D"},
		},
		{
			name:     "status exact",
			criteria: domain.FilterCriteria{Status: string(domain.StateClosed)},
			want:     []string{"C"},
		},
		{
			name:     "date range inclusive of the end day",
			criteria: domain.FilterCriteria{DateRange: domain.DateRange{Start: "2024-05-01", End: "2024-05-21"}},
			want:     []string{"A", "B", "C"},
		},
		{
			name:     "open start bound",
			criteria: domain.FilterCriteria{DateRange: domain.DateRange{End: "2024-02-01"}},
			want:     []string{"D"},
		},
		{
			name:     "combined",
			criteria: domain.FilterCriteria{Category: "Network", Status: string(domain.StateOpen), DateRange: domain.DateRange{Start: "2024-05-01"}},
			want:     []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, _ := Filter(incidents, tt.criteria)
			got := numbers(filtered)
			if len(got) != len(tt.want) {
				t.Fatalf("filtered = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("filtered = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFilterDiagnostics(t *testing.T) {
	may := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("A", may),
		mkIncident("B", may, func(i *domain.Incident) { i.State = domain.StateCancelled }),
		mkIncident("C", time.Date(2023, time.May, 21, 0, 0, 0, 0, time.UTC)),
		mkIncident("D", time.Time{}),
	}

	criteria := domain.FilterCriteria{DateRange: domain.DateRange{Start: "2024-05-01", End: "2024-05-31"}}
	_, diag := Filter(incidents, criteria)

	if diag.Cancelled != 1 {
		t.Errorf("Cancelled = %d, want 1", diag.Cancelled)
	}
	if diag.OutOfPeriod != 1 {
		t.Errorf("OutOfPeriod = %d, want 1", diag.OutOfPeriod)
	}
	if diag.DateError != 1 {
		t.Errorf("DateError = %d, want 1", diag.DateError)
	}
}

func TestFilterCancelledCountedInSearchMode(t *testing.T) {
	may := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("A", may, func(i *domain.Incident) { i.State = domain.StateCancelled }),
	}

	_, diag := Filter(incidents, domain.FilterCriteria{SearchQuery: "anything"})
	if diag.Cancelled != 1 {
		t.Errorf("Cancelled = %d, want 1 in search mode too", diag.Cancelled)
	}
}

func TestFilterMalformedBoundCountsEveryRecord(t *testing.T) {
	may := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("A", may),
		mkIncident("B", may),
	}

	filtered, diag := Filter(incidents, domain.FilterCriteria{DateRange: domain.DateRange{Start: "21/05/2024"}})
	if len(filtered) != 0 {
		t.Errorf("filtered = %v, want none with a malformed bound", numbers(filtered))
	}
	if diag.DateError != 2 {
		t.Errorf("DateError = %d, want 2", diag.DateError)
	}
}

func numbers(incidents []domain.Incident) []string {
	out := make([]string, 0, len(incidents))
	for _, inc := range incidents {
		out = append(out, inc.Number)
	}
	return out
}
