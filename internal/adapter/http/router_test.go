package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/adapter/http/dto"
	"github.com/dompet/dompet/internal/adapter/http/handler"
	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /api/health to return 200, got %d", rec.Code)
	}

	var resp dto.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "OK" || resp.Message != "Server is running" {
		t.Fatalf("unexpected health body %+v", resp)
	}
}

func TestNewRouter_ReadinessFailsWhenDatabaseDown(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.HealthHandler = handler.NewHealthHandler(handler.PingFunc(func(context.Context) error {
			return errors.New("dial tcp: connection refused")
		}), nil)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestNewRouter_TransactionsRoundTrip(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []dto.RecordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Amount != "50000.00" {
		t.Fatalf("unexpected records %+v", resp)
	}
}

func TestNewRouter_CORSHeaders(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

func TestNewRouter_MetricsEndpointOptional(t *testing.T) {
	router := NewRouter(newRouterConfig())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be absent, got %d", rec.Code)
	}

	router = NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.MetricsHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to be served, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /api/health",
		"GET /api/ready",
		"GET /api/transactions/",
		"GET /api/transactions/dashboard",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	svc := stubRecordService{}

	cfg := RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(svc, svc),
		HealthHandler: handler.NewHealthHandler(handler.PingFunc(func(context.Context) error {
			return nil
		}), nil),
		Logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubRecordService struct{}

func (stubRecordService) records() []*domain.Record {
	return []*domain.Record{{
		ID:         1,
		Kind:       domain.KindIncome,
		Amount:     decimal.NewFromInt(50000),
		Note:       domain.DefaultIncomeNote,
		OccurredAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
	}}
}

func (s stubRecordService) ListRecords(ctx context.Context) ([]*domain.Record, error) {
	return s.records(), nil
}

func (s stubRecordService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	records := s.records()
	return &usecase.Dashboard{
		Summary: domain.Summarize(records),
		Recent:  records,
		Series:  []domain.DailyPoint{},
	}, nil
}
