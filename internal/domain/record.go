package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a financial record.
type Kind string

const (
	KindIncome  Kind = "masuk"
	KindExpense Kind = "keluar"
)

// Default notes stored when the sender gives none.
const (
	DefaultIncomeNote  = "Pemasukan dari Telegram"
	DefaultExpenseNote = "Pengeluaran"
)

// ParseKind maps a stored or typed kind to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Record is a single income or expense entry. Records are never updated or deleted.
type Record struct {
	ID            int64
	Kind          Kind
	Amount        decimal.Decimal
	Note          string
	OccurredAt    time.Time
	OriginChannel string
	CreatedAt     time.Time
}

// NewRecord validates the input and returns an unsaved record.
// ID, OccurredAt and CreatedAt are assigned by the store.
func NewRecord(kind Kind, amount decimal.Decimal, note, originChannel string) (*Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = kind.defaultNote()
	}

	return &Record{
		Kind:          kind,
		Amount:        amount,
		Note:          note,
		OriginChannel: originChannel,
	}, nil
}

// Signed returns the amount with the sign applied by kind.
func (r *Record) Signed() decimal.Decimal {
	if r.Kind == KindExpense {
		return r.Amount.Neg()
	}
	return r.Amount
}

func (k Kind) defaultNote() string {
	if k == KindIncome {
		return DefaultIncomeNote
	}
	return DefaultExpenseNote
}
