package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a NUMERIC(15,2) column can hold.
const MaxAmount = "9999999999999.99"

var maxAmount = decimal.RequireFromString(MaxAmount)

// ValidateAmount rejects amounts that are not positive or too large once
// rounded to the two decimal places the store keeps.
func ValidateAmount(amount decimal.Decimal) error {
	stored := amount.Round(2)
	if stored.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if stored.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxAmount)
	}

	return nil
}
