package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

func TestBuildViewRecentWindow(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	yearOld := now.AddDate(-1, 0, 0)
	lastDay := now.Add(-6 * time.Hour)

	incidents := make([]domain.Incident, 0, 100)
	for i := 0; i < 40; i++ {
		incidents = append(incidents, mkIncident(fmt.Sprintf("OLD%03d", i), yearOld))
	}
	for i := 0; i < 60; i++ {
		incidents = append(incidents, mkIncident(fmt.Sprintf("NEW%03d", i), lastDay))
	}

	criteria := domain.FilterCriteria{DateRange: domain.DateRange{
		Start: now.AddDate(0, 0, -7).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	}}
	view := BuildView(incidents, nil, criteria, now)

	if len(view.Filtered) != 60 {
		t.Errorf("Filtered = %d incidents, want the 60 recent ones", len(view.Filtered))
	}
	if view.Diagnostics.OutOfPeriod != 40 {
		t.Errorf("OutOfPeriod = %d, want 40", view.Diagnostics.OutOfPeriod)
	}
	if view.Stats == nil {
		t.Fatal("Stats = nil, want a snapshot for a non-empty filtered set")
	}
	if view.Stats.Total != 60 {
		t.Errorf("Stats.Total = %d, want 60", view.Stats.Total)
	}

	// Critical and pending ignore the window; every one of the 100 open
	// incidents is pending.
	if len(view.Buckets.Pending) != 100 {
		t.Errorf("Pending = %d, want 100 from the full collection", len(view.Buckets.Pending))
	}
}

func TestBuildViewSearchIgnoresDateRange(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	yearOld := now.AddDate(-1, 0, 0)

	incidents := []domain.Incident{
		mkIncident("INC0000042", yearOld, func(i *domain.Incident) {
			i.ShortDescription = "VPN down"
		}),
	}

	criteria := domain.FilterCriteria{
		SearchQuery: "vpn",
		DateRange: domain.DateRange{
			Start: now.AddDate(0, 0, -7).Format("2006-01-02"),
			End:   now.Format("2006-01-02"),
		},
	}
	view := BuildView(incidents, nil, criteria, now)

	if len(view.Filtered) != 1 {
		t.Errorf("Filtered = %d, want the year-old match despite the range", len(view.Filtered))
	}
}

func TestBuildViewEmptyFiltered(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("A", now.AddDate(-1, 0, 0)),
	}

	criteria := domain.FilterCriteria{DateRange: domain.DateRange{Start: "2024-05-01", End: "2024-05-31"}}
	view := BuildView(incidents, nil, criteria, now)

	if len(view.Filtered) != 0 {
		t.Fatalf("Filtered = %d, want 0", len(view.Filtered))
	}
	if view.Stats != nil {
		t.Error("Stats != nil, want nil for an empty filtered set")
	}
	if len(view.Categories) != 1 {
		t.Errorf("Categories = %v, want the full collection's categories", view.Categories)
	}
}

func TestDistinctCategories(t *testing.T) {
	opened := time.Date(2024, time.May, 21, 10, 0, 0, 0, time.UTC)
	incidents := []domain.Incident{
		mkIncident("A", opened, func(i *domain.Incident) { i.Category = "Network" }),
		mkIncident("B", opened, func(i *domain.Incident) { i.Category = "Hardware" }),
		mkIncident("C", opened, func(i *domain.Incident) { i.Category = "Network" }),
		mkIncident("D", opened, func(i *domain.Incident) { i.Category = domain.CategoryUncategorized }),
	}

	got := DistinctCategories(incidents)
	want := []string{"Hardware", "Network", "Uncategorized"}
	if len(got) != len(want) {
		t.Fatalf("DistinctCategories = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("DistinctCategories = %v, want %v", got, want)
		}
	}
}
