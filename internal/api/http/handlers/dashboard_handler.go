package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/incident-dashboard/internal/api/dto"
	"github.com/spec-kit/incident-dashboard/internal/dashboard"
	"github.com/spec-kit/incident-dashboard/internal/domain"
	"github.com/spec-kit/incident-dashboard/internal/service"
	apperrors "github.com/spec-kit/incident-dashboard/pkg/util"
)

// DashboardHandler serves the derived reporting views.
type DashboardHandler struct {
	datasets *service.DatasetService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(datasets *service.DatasetService) *DashboardHandler {
	return &DashboardHandler{datasets: datasets}
}

// GetView handles GET /dashboard. Criteria arrive as query parameters and
// are rebuilt fresh on every call; the handler never caches them.
func (h *DashboardHandler) GetView(c *fiber.Ctx) error {
	criteria := domain.FilterCriteria{
		SearchQuery: c.Query("q"),
		Category:    c.Query("category"),
		Status:      c.Query("status"),
		DateRange: domain.DateRange{
			Start: c.Query("start"),
			End:   c.Query("end"),
		},
	}

	view, dataset := h.datasets.View(criteria)
	if dataset == nil {
		return apperrors.NewNotFound("dataset", nil)
	}

	resp := dto.DashboardResponse{
		DatasetID:       dataset.ID,
		Filtered:        incidentSummaries(view.Filtered),
		CriticalPending: incidentSummaries(view.Buckets.CriticalPending),
		Pending:         incidentSummaries(view.Buckets.Pending),
		OnHold:          incidentSummaries(view.Buckets.OnHold),
		OutOfRule:       incidentSummaries(view.Buckets.OutOfRule),
		Categories:      view.Categories,
		Stats:           statsResponse(view),
		Diagnostics: dto.DiagnosticsResponse{
			CancelledCount:   view.Diagnostics.Cancelled,
			OutOfPeriodCount: view.Diagnostics.OutOfPeriod,
			DateErrorCount:   view.Diagnostics.DateError,
		},
	}
	return c.JSON(fiber.Map{"data": resp})
}

// GetHistory handles GET /dashboard/history.
func (h *DashboardHandler) GetHistory(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	records, err := h.datasets.History(c.Context(), limit)
	if err != nil {
		return apperrors.MapError(err)
	}

	items := make([]dto.SnapshotRecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.SnapshotRecordResponse{
			ID:         record.ID,
			DatasetID:  record.DatasetID,
			Stats:      snapshotResponse(record.Snapshot),
			RecordedAt: record.RecordedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func incidentSummaries(incidents []domain.Incident) []dto.IncidentSummary {
	items := make([]dto.IncidentSummary, 0, len(incidents))
	for _, inc := range incidents {
		items = append(items, dto.IncidentSummary{
			Number:           inc.Number,
			ShortDescription: inc.ShortDescription,
			Caller:           inc.Caller,
			Category:         inc.Category,
			AssignmentGroup:  inc.AssignmentGroup,
			AssignedTo:       inc.AssignedTo,
			Location:         inc.Location,
			Opened:           inc.Opened,
			Updated:          inc.Updated,
			State:            string(inc.State),
			Priority:         string(inc.Priority),
		})
	}
	return items
}

func statsResponse(view dashboard.View) *dto.StatsResponse {
	if view.Stats == nil {
		return nil
	}
	resp := snapshotResponse(*view.Stats)
	return &resp
}

func snapshotResponse(s domain.StatsSnapshot) dto.StatsResponse {
	return dto.StatsResponse{
		Total:           s.Total,
		HighPriority:    s.HighPriority,
		Categories:      s.Categories,
		CriticalPending: s.CriticalPending,
		Pending:         s.Pending,
		OnHold:          s.OnHold,
		OutOfRule:       s.OutOfRule,
		Trend:           s.Trend,
	}
}
