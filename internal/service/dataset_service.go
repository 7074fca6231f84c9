package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/incident-dashboard/internal/dashboard"
	"github.com/spec-kit/incident-dashboard/internal/domain"
	"github.com/spec-kit/incident-dashboard/internal/events"
	"github.com/spec-kit/incident-dashboard/internal/normalize"
	"github.com/spec-kit/incident-dashboard/internal/observability"
	"github.com/spec-kit/incident-dashboard/internal/repository"
)

// Dataset is the immutable collection pair the dashboard derives from. A new
// upload replaces it wholesale; nothing mutates it in place.
type Dataset struct {
	ID        string
	Incidents []domain.Incident
	Requests  []domain.Request
	LoadedAt  time.Time
}

// DatasetService owns the current dataset and recomputes derived views on
// demand. The pointer swap under the mutex is the only shared mutable state;
// every view is a pure function of the snapshot it captured.
type DatasetService struct {
	mu      sync.RWMutex
	current *Dataset

	history    repository.StatsHistoryRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// DatasetDependencies bundles collaborators for the dataset service.
type DatasetDependencies struct {
	HistoryRepo repository.StatsHistoryRepository
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NewDatasetService constructs the service.
func NewDatasetService(deps DatasetDependencies) *DatasetService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetService{
		history:    deps.HistoryRepo,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// LoadIncidents normalizes raw export rows and replaces the incident
// collection. Requests already loaded are carried over.
func (s *DatasetService) LoadIncidents(ctx context.Context, rows []domain.RawIncident) (*Dataset, normalize.Diagnostics) {
	now := time.Now().UTC()
	incidents, diag := normalize.Incidents(rows, now, s.logger)

	s.mu.Lock()
	var requests []domain.Request
	if s.current != nil {
		requests = s.current.Requests
	}
	dataset := &Dataset{
		ID:        uuid.NewString(),
		Incidents: incidents,
		Requests:  requests,
		LoadedAt:  now,
	}
	s.current = dataset
	s.mu.Unlock()

	s.metrics.RecordIngest("incidents", len(rows))
	s.metrics.RecordDateRepair("opened_recovered", diag.OpenedRecovered)
	s.metrics.RecordDateRepair("opened_defaulted", diag.OpenedDefaulted)
	s.metrics.RecordDateRepair("updated_fallback", diag.UpdatedFallback)
	s.metrics.RecordDateRepair("updated_clamped", diag.UpdatedClamped)

	s.afterLoad(ctx, dataset, "incidents", len(rows), diag)
	return dataset, diag
}

// LoadRequests replaces the request collection, keeping current incidents.
func (s *DatasetService) LoadRequests(ctx context.Context, rows []domain.Request) *Dataset {
	now := time.Now().UTC()

	s.mu.Lock()
	var incidents []domain.Incident
	if s.current != nil {
		incidents = s.current.Incidents
	}
	dataset := &Dataset{
		ID:        uuid.NewString(),
		Incidents: incidents,
		Requests:  rows,
		LoadedAt:  now,
	}
	s.current = dataset
	s.mu.Unlock()

	s.metrics.RecordIngest("requests", len(rows))
	s.afterLoad(ctx, dataset, "requests", len(rows), normalize.Diagnostics{})
	return dataset
}

// View recomputes every derived value for the caller's criteria against the
// current dataset snapshot.
func (s *DatasetService) View(criteria domain.FilterCriteria) (dashboard.View, *Dataset) {
	dataset := s.snapshot()
	if dataset == nil {
		return dashboard.View{}, nil
	}
	return dashboard.BuildView(dataset.Incidents, dataset.Requests, criteria, time.Now().UTC()), dataset
}

// History returns recently persisted stats snapshots.
func (s *DatasetService) History(ctx context.Context, limit int) ([]domain.SnapshotRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListRecent(ctx, limit)
}

func (s *DatasetService) snapshot() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// afterLoad derives the unfiltered view once to publish events, update the
// bucket gauges and persist the load-time stats snapshot.
func (s *DatasetService) afterLoad(ctx context.Context, dataset *Dataset, kind string, rows int, diag normalize.Diagnostics) {
	view := dashboard.BuildView(dataset.Incidents, dataset.Requests, domain.FilterCriteria{}, time.Now().UTC())

	s.metrics.SetBucketSize("critical_pending", len(view.Buckets.CriticalPending))
	s.metrics.SetBucketSize("pending", len(view.Buckets.Pending))
	s.metrics.SetBucketSize("on_hold", len(view.Buckets.OnHold))
	s.metrics.SetBucketSize("out_of_rule", len(view.Buckets.OutOfRule))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDatasetLoaded,
			DatasetID: dataset.ID,
			Timestamp: time.Now().UTC(),
			Payload: events.DatasetLoadedPayload{
				Kind:           kind,
				Rows:           rows,
				OpenedDefaults: diag.OpenedDefaulted,
				UpdatedClamps:  diag.UpdatedClamped,
			},
		})

		if critical := view.Buckets.CriticalPending; len(critical) > 0 {
			numbers := make([]string, 0, len(critical))
			for _, inc := range critical {
				numbers = append(numbers, inc.Number)
			}
			_ = s.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventCriticalBacklog,
				DatasetID: dataset.ID,
				Timestamp: time.Now().UTC(),
				Payload: events.CriticalBacklogPayload{
					CriticalPending: len(critical),
					Numbers:         numbers,
				},
			})
		}
	}

	if s.history != nil && view.Stats != nil {
		record := &domain.SnapshotRecord{
			ID:        uuid.NewString(),
			DatasetID: dataset.ID,
			Snapshot:  *view.Stats,
		}
		if err := s.history.Record(ctx, record); err != nil {
			s.logger.Warn("failed to persist stats snapshot", zap.Error(err))
		}
	}
}
