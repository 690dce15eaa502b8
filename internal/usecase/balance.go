package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/domain"
)

// ScanBalance computes the balance by reading every record.
type ScanBalance struct {
	recordRepo RecordRepository
}

// NewScanBalance creates a new ScanBalance.
func NewScanBalance(recordRepo RecordRepository) *ScanBalance {
	return &ScanBalance{recordRepo: recordRepo}
}

// Balance returns total income minus total expense over the whole store.
func (b *ScanBalance) Balance(ctx context.Context) (decimal.Decimal, error) {
	records, err := b.recordRepo.List(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list records: %w", err)
	}

	return domain.SignedTotal(records), nil
}
