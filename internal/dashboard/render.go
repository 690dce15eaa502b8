package dashboard

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/adapter/http/dto"
	"github.com/dompet/dompet/internal/money"
)

const barWidth = 30

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

var weekdays = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// Render writes the full dashboard view.
func Render(w io.Writer, d *dto.DashboardResponse) {
	fmt.Fprintln(w, titleStyle.Render("Dashboard Keuangan"))
	fmt.Fprintln(w, mutedStyle.Render("Catat Keuangan"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, RenderSummary(d.Summary))
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderBars(d.ChartData))
	fmt.Fprintln(w, RenderTrend(d.ChartData))
	fmt.Fprintln(w, RenderShare(d.Summary))
	fmt.Fprintln(w, RenderRecent(d.RecentTransactions))
}

// RenderSummary draws the three total cards side by side.
func RenderSummary(s dto.SummaryResponse) string {
	balanceStyle := incomeStyle
	balanceNote := "Saldo positif"
	if s.Balance < 0 {
		balanceStyle = expenseStyle
		balanceNote = "Saldo negatif"
	}

	income := cardStyle.Render("Total Pemasukan\n" + incomeStyle.Render(rupiah(s.TotalIncome)))
	expense := cardStyle.Render("Total Pengeluaran\n" + expenseStyle.Render(rupiah(s.TotalExpense)))
	balance := cardStyle.Render("Saldo Saat Ini\n" + balanceStyle.Render(rupiah(s.Balance)) + "\n" + mutedStyle.Render(balanceNote))

	return lipgloss.JoinHorizontal(lipgloss.Top, income, " ", expense, " ", balance)
}

// RenderBars draws income and expense bars for each day.
func RenderBars(points []dto.ChartPointResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pemasukan vs Pengeluaran (7 Hari Terakhir)") + "\n")

	if len(points) == 0 {
		b.WriteString(mutedStyle.Render("Data harian tidak tersedia") + "\n")
		return b.String()
	}

	var peak float64
	for _, p := range points {
		peak = math.Max(peak, math.Max(p.Income, p.Expense))
	}

	for _, p := range points {
		label := DayLabel(p.Date)
		fmt.Fprintf(&b, "%-7s %s %s\n", label, incomeStyle.Render(Bar(p.Income, peak, barWidth)), rupiah(p.Income))
		fmt.Fprintf(&b, "%-7s %s %s\n", "", expenseStyle.Render(Bar(p.Expense, peak, barWidth)), rupiah(p.Expense))
	}

	return b.String()
}

// RenderTrend lists the running balance across the series.
func RenderTrend(points []dto.ChartPointResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Trend Saldo (7 Hari Terakhir)") + "\n")

	running := CumulativeBalance(points)
	if len(running) == 0 {
		b.WriteString(mutedStyle.Render("Data harian tidak tersedia") + "\n")
		return b.String()
	}

	b.WriteString(Sparkline(running) + "\n")
	for i, p := range points {
		style := incomeStyle
		if running[i] < 0 {
			style = expenseStyle
		}
		fmt.Fprintf(&b, "%-7s %s\n", DayLabel(p.Date), style.Render(rupiah(running[i])))
	}

	return b.String()
}

// RenderShare shows how totals split between income and expense.
func RenderShare(s dto.SummaryResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Distribusi Keuangan") + "\n")

	income, expense := Share(s)
	fmt.Fprintf(&b, "%s %5.1f%%  %s\n", incomeStyle.Render("Pemasukan  "), income, Bar(income, 100, barWidth))
	fmt.Fprintf(&b, "%s %5.1f%%  %s\n", expenseStyle.Render("Pengeluaran"), expense, Bar(expense, 100, barWidth))

	return b.String()
}

// RenderRecent lists the most recent records.
func RenderRecent(records []*dto.RecordResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Transaksi Terbaru"), mutedStyle.Render(fmt.Sprintf("(%d transaksi)", len(records))))

	if len(records) == 0 {
		b.WriteString(mutedStyle.Render("Belum ada transaksi. Mulai dengan menambahkan transaksi melalui Telegram bot.") + "\n")
		return b.String()
	}

	for _, r := range records {
		b.WriteString(RecordLine(r) + "\n")
	}

	return b.String()
}

// RecordLine formats one record as a single line.
func RecordLine(r *dto.RecordResponse) string {
	desc := r.Description
	if desc == "" {
		desc = "Tanpa keterangan"
	}

	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		amount = decimal.Zero
	}

	sign, style := "+", incomeStyle
	if r.Type == "keluar" {
		sign, style = "-", expenseStyle
	}

	date := r.Date.Format("02 Jan 2006 15:04")
	return fmt.Sprintf("%s  %-30s %s", mutedStyle.Render(date), desc, style.Render(sign+money.Rupiah(amount)))
}

// CumulativeBalance returns the running income minus expense for each point.
func CumulativeBalance(points []dto.ChartPointResponse) []float64 {
	out := make([]float64, len(points))
	var total float64
	for i, p := range points {
		total += p.Income - p.Expense
		out[i] = total
	}
	return out
}

// Share returns income and expense as percentages of their sum.
// Both are zero when there is nothing recorded.
func Share(s dto.SummaryResponse) (income, expense float64) {
	sum := s.TotalIncome + s.TotalExpense
	if sum <= 0 {
		return 0, 0
	}
	return s.TotalIncome / sum * 100, s.TotalExpense / sum * 100
}

// Bar scales value against peak into at most width block characters.
func Bar(value, peak float64, width int) string {
	if peak <= 0 || value <= 0 || width <= 0 {
		return ""
	}

	n := int(math.Round(value / peak * float64(width)))
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

// Sparkline maps values onto eight block heights.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	ticks := []rune("▁▂▃▄▅▆▇█")

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(ticks)-1))
		}
		b.WriteRune(ticks[idx])
	}
	return b.String()
}

// DayLabel turns "2026-10-18" into "Min 18". Unparseable input is returned as is.
func DayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d", weekdays[t.Weekday()], t.Day())
}

func rupiah(v float64) string {
	return money.Rupiah(decimal.NewFromFloat(v))
}
