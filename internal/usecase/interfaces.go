package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// RecordRepository defines data access for financial records.
// Records are append-only.
type RecordRepository interface {
	// Create inserts record and fills in ID, OccurredAt and CreatedAt.
	Create(ctx context.Context, record *domain.Record) error
	// List returns every record, newest first (occurred_at DESC, id DESC).
	List(ctx context.Context) ([]*domain.Record, error)
	// ListBetween returns records with start <= occurred_at <= end.
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Record, error)
}

// BalanceProvider computes the current running balance.
type BalanceProvider interface {
	Balance(ctx context.Context) (decimal.Decimal, error)
}
