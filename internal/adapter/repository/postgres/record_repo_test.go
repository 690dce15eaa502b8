package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/domain"
)

var transactionColumns = []string{"id", "kind", "amount", "note", "occurred_at", "origin_channel", "created_at"}

func TestRecordRepositoryCreate(t *testing.T) {
	mockPool := newMockPool(t)
	ts := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("INSERT INTO transactions").
		WithArgs("keluar", pgxmock.AnyArg(), pgtype.Text{String: "beli makan", Valid: true}, pgtype.Text{String: "42", Valid: true}).
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(9), "keluar", "25000.00", "beli makan", ts, "42", ts))

	repo := newRecordRepositoryWithDB(mockPool)
	record := &domain.Record{
		Kind:          domain.KindExpense,
		Amount:        decimal.NewFromInt(25000),
		Note:          "beli makan",
		OriginChannel: "42",
	}

	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.ID != 9 {
		t.Errorf("expected ID 9, got %d", record.ID)
	}
	if !record.OccurredAt.Equal(ts) {
		t.Errorf("expected occurred_at %s, got %s", ts, record.OccurredAt)
	}
	if !record.Amount.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("expected amount 25000, got %s", record.Amount)
	}

	assertExpectations(t, mockPool)
}

func TestRecordRepositoryCreateError(t *testing.T) {
	mockPool := newMockPool(t)
	dbErr := errors.New("insert failed")

	mockPool.ExpectQuery("INSERT INTO transactions").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(dbErr)

	repo := newRecordRepositoryWithDB(mockPool)
	err := repo.Create(context.Background(), &domain.Record{Kind: domain.KindIncome, Amount: decimal.NewFromInt(1)})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected insert error, got %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestRecordRepositoryList(t *testing.T) {
	mockPool := newMockPool(t)
	ts := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	mockPool.ExpectQuery("SELECT (.+) FROM transactions\\s+ORDER BY occurred_at DESC, id DESC").
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(2), "keluar", "30000.00", "Pengeluaran", ts, nil, ts).
			AddRow(int64(1), "masuk", "50000.50", "Pemasukan dari Telegram", ts.Add(-time.Hour), "42", ts.Add(-time.Hour)))

	repo := newRecordRepositoryWithDB(mockPool)
	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Kind != domain.KindExpense || records[0].OriginChannel != "" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if !records[1].Amount.Equal(decimal.RequireFromString("50000.5")) {
		t.Errorf("expected amount 50000.5, got %s", records[1].Amount)
	}

	assertExpectations(t, mockPool)
}

func TestRecordRepositoryListRejectsUnknownKind(t *testing.T) {
	mockPool := newMockPool(t)
	ts := time.Now()

	mockPool.ExpectQuery("SELECT (.+) FROM transactions").
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(1), "transfer", "1.00", "x", ts, nil, ts))

	repo := newRecordRepositoryWithDB(mockPool)
	if _, err := repo.List(context.Background()); !errors.Is(err, domain.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestRecordRepositoryListBetween(t *testing.T) {
	mockPool := newMockPool(t)
	start, end := domain.DayBounds(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))

	mockPool.ExpectQuery("WHERE occurred_at BETWEEN").
		WithArgs(pgtype.Timestamptz{Time: start, Valid: true}, pgtype.Timestamptz{Time: end, Valid: true}).
		WillReturnRows(pgxmock.NewRows(transactionColumns).
			AddRow(int64(5), "masuk", "100.00", "Pemasukan dari Telegram", start.Add(time.Hour), "42", start.Add(time.Hour)))

	repo := newRecordRepositoryWithDB(mockPool)
	records, err := repo.ListBetween(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 || records[0].ID != 5 {
		t.Fatalf("unexpected records: %+v", records)
	}

	assertExpectations(t, mockPool)
}

func TestNumericConversionRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "50000", "1250.75", "9999999999999.99"} {
		d := decimal.RequireFromString(s)
		if got := numericToDecimal(decimalToNumeric(d)); !got.Equal(d) {
			t.Errorf("round trip of %s gave %s", s, got)
		}
	}

	if got := numericToDecimal(pgtype.Numeric{}); !got.IsZero() {
		t.Errorf("invalid numeric should map to zero, got %s", got)
	}
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func assertExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
