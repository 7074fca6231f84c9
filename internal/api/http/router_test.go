package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/incident-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/incident-dashboard/internal/auth"
	"github.com/spec-kit/incident-dashboard/internal/domain"
	"github.com/spec-kit/incident-dashboard/internal/service"
)

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = r.user.ID
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, pgx.ErrNoRows
}

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	user := &domain.User{
		ID:     "11111111-1111-1111-1111-111111111111",
		Name:   "Analyst",
		Email:  "analyst@example.com",
		Status: domain.UserStatusActive,
	}
	users := &stubUserRepo{user: user}

	tokens := auth.NewTokenManager("test-secret", 60)
	token, _, err := tokens.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	datasets := service.NewDatasetService(service.DatasetDependencies{})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Datasets:       handlers.NewDatasetHandler(datasets),
		Dashboard:      handlers.NewDashboardHandler(datasets),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, users, nil),
	})
	return app, token
}

func TestDashboardRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestDashboardBeforeAnyUpload(t *testing.T) {
	app, token := newTestApp(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("status = %d, want 404 before any dataset load", resp.StatusCode)
	}
}

func TestUploadThenDashboard(t *testing.T) {
	app, token := newTestApp(t)

	csvBody := strings.Join([]string{
		"Number,Category,Opened,Updated,State,Priority",
		"INC0000042,Rede,21/05/2024 10:00:00,22/05/2024 09:00:00,Em andamento,P1",
		"INC0000043,Hardware,21/05/2024 11:00:00,21/05/2024 11:00:00,Fechado,P3",
		"INC0000044,Rede,21/05/2024 12:00:00,21/05/2024 12:00:00,Cancelado,P2",
	}, "\n")

	upload := httptest.NewRequest("POST", "/datasets/incidents", strings.NewReader(csvBody))
	upload.Header.Set("Authorization", "Bearer "+token)
	upload.Header.Set("Content-Type", "text/csv")
	resp, err := app.Test(upload)
	if err != nil {
		t.Fatalf("app.Test upload: %v", err)
	}
	if resp.StatusCode != 201 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("upload status = %d, want 201, body %s", resp.StatusCode, body)
	}

	view := httptest.NewRequest("GET", "/dashboard?category=Network", nil)
	view.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(view)
	if err != nil {
		t.Fatalf("app.Test view: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("view status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Filtered []struct {
				Number   string `json:"number"`
				Category string `json:"category"`
			} `json:"filtered"`
			CriticalPending []struct {
				Number string `json:"number"`
			} `json:"critical_pending"`
			Categories  []string `json:"categories"`
			Diagnostics struct {
				CancelledCount int `json:"cancelled_count"`
			} `json:"diagnostics"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(payload.Data.Filtered) != 2 {
		t.Errorf("filtered = %d, want the 2 Network incidents", len(payload.Data.Filtered))
	}
	for _, inc := range payload.Data.Filtered {
		if inc.Category != "Network" {
			t.Errorf("filtered category = %q, want Network", inc.Category)
		}
	}
	if len(payload.Data.CriticalPending) != 1 || payload.Data.CriticalPending[0].Number != "INC0000042" {
		t.Errorf("critical_pending = %v, want only INC0000042", payload.Data.CriticalPending)
	}
	if payload.Data.Diagnostics.CancelledCount != 1 {
		t.Errorf("cancelled_count = %d, want 1", payload.Data.Diagnostics.CancelledCount)
	}
	if len(payload.Data.Categories) != 2 {
		t.Errorf("categories = %v, want the 2 distinct buckets", payload.Data.Categories)
	}
}
