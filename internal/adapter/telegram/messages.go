package telegram

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/money"
)

// Fixed replies.
const (
	MsgWelcome = "Selamat datang di Bot Pencatatan Keuangan!\n\n" +
		"Format input:\n" +
		"• Pemasukan: \"Masuk 50000\"\n" +
		"• Pengeluaran: \"Keluar 25000 Beli makan\"\n\n" +
		"Contoh: \"Keluar 15000 Beli pulsa\""

	MsgUnrecognized = "Format tidak dikenali. Gunakan:\n" +
		"\"Masuk [jumlah]\" untuk pemasukan\n" +
		"\"Keluar [jumlah] [keterangan]\" untuk pengeluaran"

	MsgIncomeFormat  = "Format salah. Gunakan: \"Masuk 50000\""
	MsgExpenseFormat = "Format salah. Gunakan: \"Keluar 50000 Beli makan\""

	MsgFailure = "Terjadi kesalahan, coba lagi."
)

func formatErrorMessage(kind domain.Kind) string {
	if kind == domain.KindExpense {
		return MsgExpenseFormat
	}
	return MsgIncomeFormat
}

func incomeMessage(amount, balance decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("✅ Pemasukan berhasil dicatat!\n")
	b.WriteString("Jumlah: " + money.Rupiah(amount) + "\n")
	b.WriteString("Saldo saat ini: " + money.Rupiah(balance))
	return b.String()
}

func expenseMessage(amount decimal.Decimal, note string, balance decimal.Decimal) string {
	if note == "" {
		note = "-"
	}

	var b strings.Builder
	b.WriteString("✅ Pengeluaran berhasil dicatat!\n")
	b.WriteString("Jumlah: " + money.Rupiah(amount) + "\n")
	b.WriteString("Keterangan: " + note + "\n")
	b.WriteString("Saldo saat ini: " + money.Rupiah(balance))
	return b.String()
}
