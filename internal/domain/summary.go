package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the totals derived from a set of records.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// DailyPoint is one day of the dashboard series.
type DailyPoint struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// DateLayout is the calendar date format used by the dashboard series.
const DateLayout = "2006-01-02"

// Label returns the point's calendar date as YYYY-MM-DD.
func (p DailyPoint) Label() string {
	return p.Date.Format(DateLayout)
}

// Summarize totals records by kind in one pass.
func Summarize(records []*Record) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, r := range records {
		switch r.Kind {
		case KindIncome:
			income = income.Add(r.Amount)
		case KindExpense:
			expense = expense.Add(r.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// SignedTotal sums record amounts, adding income and subtracting expense.
func SignedTotal(records []*Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Signed())
	}
	return total
}

// DayBounds returns the inclusive UTC start and end of the calendar day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
