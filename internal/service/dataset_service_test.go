package service

import (
	"context"
	"testing"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

func TestDatasetServiceViewWithoutDataset(t *testing.T) {
	svc := NewDatasetService(DatasetDependencies{})

	_, dataset := svc.View(domain.FilterCriteria{})
	if dataset != nil {
		t.Fatal("View() dataset != nil before any load")
	}
}

func TestDatasetServiceLoadIncidents(t *testing.T) {
	svc := NewDatasetService(DatasetDependencies{})
	ctx := context.Background()

	rows := []domain.RawIncident{
		{Number: "INC0000042", Category: "Rede", Opened: "21/05/2024 10:00:00", State: "Aberto", Priority: "P1"},
		{Number: "INC0000043", Opened: "22/05/2024 10:00:00", State: "Fechado"},
	}

	dataset, diag := svc.LoadIncidents(ctx, rows)
	if dataset.ID == "" {
		t.Error("dataset ID empty")
	}
	if len(dataset.Incidents) != 2 {
		t.Fatalf("got %d incidents, want 2", len(dataset.Incidents))
	}
	if dataset.Incidents[0].Category != "Network" {
		t.Errorf("Category = %q, want classified %q", dataset.Incidents[0].Category, "Network")
	}
	if diag.OpenedDefaulted != 0 {
		t.Errorf("OpenedDefaulted = %d, want 0", diag.OpenedDefaulted)
	}

	view, current := svc.View(domain.FilterCriteria{})
	if current == nil || current.ID != dataset.ID {
		t.Fatal("View() does not see the loaded dataset")
	}
	if len(view.Filtered) != 2 {
		t.Errorf("Filtered = %d, want 2", len(view.Filtered))
	}
	if len(view.Buckets.CriticalPending) != 1 {
		t.Errorf("CriticalPending = %d, want 1", len(view.Buckets.CriticalPending))
	}
}

// A new upload replaces the collection it carries and keeps the other one,
// under a fresh dataset ID.
func TestDatasetServiceLoadsCarryOver(t *testing.T) {
	svc := NewDatasetService(DatasetDependencies{})
	ctx := context.Background()

	first, _ := svc.LoadIncidents(ctx, []domain.RawIncident{
		{Number: "INC1", Opened: "21/05/2024"},
	})

	second := svc.LoadRequests(ctx, []domain.Request{
		{Number: "REQ1", Opened: "21/05/2024"},
	})
	if second.ID == first.ID {
		t.Error("request load reused the dataset ID")
	}
	if len(second.Incidents) != 1 {
		t.Errorf("incidents = %d, want carried over 1", len(second.Incidents))
	}
	if len(second.Requests) != 1 {
		t.Errorf("requests = %d, want 1", len(second.Requests))
	}

	third, _ := svc.LoadIncidents(ctx, []domain.RawIncident{
		{Number: "INC2", Opened: "22/05/2024"},
		{Number: "INC3", Opened: "23/05/2024"},
	})
	if len(third.Requests) != 1 {
		t.Errorf("requests = %d, want carried over 1", len(third.Requests))
	}
	if len(third.Incidents) != 2 {
		t.Errorf("incidents = %d, want replaced with 2", len(third.Incidents))
	}

	view, _ := svc.View(domain.FilterCriteria{})
	if view.Stats == nil {
		t.Fatal("Stats = nil, want a snapshot")
	}
	if view.Stats.Total != 3 {
		t.Errorf("Stats.Total = %d, want 2 incidents + 1 request", view.Stats.Total)
	}
}
