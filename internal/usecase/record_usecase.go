package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/infrastructure/metrics"
)

// RecordUseCase handles creating and listing financial records.
type RecordUseCase struct {
	recordRepo RecordRepository
	balance    BalanceProvider
	metrics    *metrics.Metrics
}

// NewRecordUseCase creates a new RecordUseCase.
func NewRecordUseCase(recordRepo RecordRepository, balance BalanceProvider, metrics *metrics.Metrics) *RecordUseCase {
	return &RecordUseCase{
		recordRepo: recordRepo,
		balance:    balance,
		metrics:    metrics,
	}
}

// RecordInput represents input for recording income or expense.
type RecordInput struct {
	Kind          domain.Kind
	Amount        decimal.Decimal
	Note          string
	OriginChannel string
}

// RecordResult is the stored record and the balance read right after it.
type RecordResult struct {
	Record  *domain.Record
	Balance decimal.Decimal
}

// Record stores a new record and recomputes the running balance.
// The balance is not serialized against concurrent writers.
func (uc *RecordUseCase) Record(ctx context.Context, input RecordInput) (*RecordResult, error) {
	record, err := domain.NewRecord(input.Kind, input.Amount, input.Note, input.OriginChannel)
	if err != nil {
		return nil, err
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordsCreated.WithLabelValues(string(record.Kind)).Inc()
		uc.metrics.RecordedAmount.WithLabelValues(string(record.Kind)).Add(record.Amount.InexactFloat64())
	}

	balance, err := uc.balance.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute balance: %w", err)
	}

	return &RecordResult{
		Record:  record,
		Balance: balance,
	}, nil
}

// ListRecords returns every record, newest first.
func (uc *RecordUseCase) ListRecords(ctx context.Context) ([]*domain.Record, error) {
	return uc.recordRepo.List(ctx)
}
