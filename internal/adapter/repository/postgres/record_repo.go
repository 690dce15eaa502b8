package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/infrastructure/postgres/generated"
)

// RecordRepository implements usecase.RecordRepository.
type RecordRepository struct {
	queries *generated.Queries
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return newRecordRepositoryWithDB(pool)
}

func newRecordRepositoryWithDB(db generated.DBTX) *RecordRepository {
	return &RecordRepository{queries: generated.New(db)}
}

// Create inserts a record. The database assigns id and timestamps.
func (r *RecordRepository) Create(ctx context.Context, record *domain.Record) error {
	row, err := r.queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		Kind:          string(record.Kind),
		Amount:        decimalToNumeric(record.Amount),
		Note:          stringToPgText(record.Note),
		OriginChannel: stringToPgText(record.OriginChannel),
	})
	if err != nil {
		return err
	}

	stored, err := rowToRecord(row)
	if err != nil {
		return err
	}
	*record = *stored

	return nil
}

// List returns all records ordered by occurred_at DESC, id DESC.
func (r *RecordRepository) List(ctx context.Context) ([]*domain.Record, error) {
	rows, err := r.queries.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	return rowsToRecords(rows)
}

// ListBetween returns records whose occurred_at lies in [start, end].
func (r *RecordRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Record, error) {
	rows, err := r.queries.ListTransactionsBetween(ctx, generated.ListTransactionsBetweenParams{
		StartAt: timeToPgTimestamptz(start),
		EndAt:   timeToPgTimestamptz(end),
	})
	if err != nil {
		return nil, err
	}

	return rowsToRecords(rows)
}

func rowsToRecords(rows []generated.Transaction) ([]*domain.Record, error) {
	records := make([]*domain.Record, 0, len(rows))
	for _, row := range rows {
		record, err := rowToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func rowToRecord(row generated.Transaction) (*domain.Record, error) {
	kind, err := domain.ParseKind(row.Kind)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: %w", row.ID, err)
	}

	return &domain.Record{
		ID:            row.ID,
		Kind:          kind,
		Amount:        numericToDecimal(row.Amount),
		Note:          row.Note.String,
		OccurredAt:    row.OccurredAt.Time,
		OriginChannel: row.OriginChannel.String,
		CreatedAt:     row.CreatedAt.Time,
	}, nil
}
