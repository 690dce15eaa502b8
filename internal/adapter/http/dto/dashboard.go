package dto

import (
	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/usecase"
)

// SummaryResponse holds dashboard totals as JSON numbers.
type SummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}

// ChartPointResponse is one day of the dashboard series.
type ChartPointResponse struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// DashboardResponse is the aggregated dashboard payload.
type DashboardResponse struct {
	Summary            SummaryResponse      `json:"summary"`
	RecentTransactions []*RecordResponse    `json:"recentTransactions"`
	ChartData          []ChartPointResponse `json:"chartData"`
}

// DashboardFromUseCase converts a computed dashboard to response.
func DashboardFromUseCase(d *usecase.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Summary:            SummaryFromDomain(d.Summary),
		RecentTransactions: RecordsFromDomain(d.Recent),
		ChartData:          ChartFromDomain(d.Series),
	}
}

// SummaryFromDomain converts domain totals to response.
func SummaryFromDomain(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  s.TotalIncome.InexactFloat64(),
		TotalExpense: s.TotalExpense.InexactFloat64(),
		Balance:      s.Balance.InexactFloat64(),
	}
}

// ChartFromDomain converts the daily series to response. It never returns nil.
func ChartFromDomain(points []domain.DailyPoint) []ChartPointResponse {
	result := make([]ChartPointResponse, len(points))
	for i, p := range points {
		result[i] = ChartPointResponse{
			Date:    p.Label(),
			Income:  p.Income.InexactFloat64(),
			Expense: p.Expense.InexactFloat64(),
		}
	}
	return result
}
