package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dompet/dompet/internal/adapter/http/dto"
	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/usecase"
)

// RecordService defines the behavior needed by TransactionHandler for listing.
type RecordService interface {
	ListRecords(ctx context.Context) ([]*domain.Record, error)
}

// DashboardService defines the behavior needed by TransactionHandler for aggregation.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*usecase.Dashboard, error)
}

// TransactionHandler serves the read-only record endpoints.
type TransactionHandler struct {
	records   RecordService
	dashboard DashboardService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(records RecordService, dashboard DashboardService) *TransactionHandler {
	return &TransactionHandler{
		records:   records,
		dashboard: dashboard,
	}
}

// List handles GET /api/transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.ListRecords(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list transactions failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordsFromDomain(records))
}

// Dashboard handles GET /api/transactions/dashboard.
func (h *TransactionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.GetDashboard(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("dashboard failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(dashboard))
}
