package kas

import (
	"sort"

	"kas-siswa-backend/internal/model"
)

type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	// Permille adalah porsi kategori dalam per-seribu (176 = 17,6%).
	Permille int64 `json:"permille"`
}

type PeriodAmount struct {
	PeriodID uint  `json:"periodId"`
	WeekNo   int   `json:"weekNo"`
	Income   int64 `json:"income"`
	Expense  int64 `json:"expense"`
	Balance  int64 `json:"balance"`
}

type ReportSummary struct {
	TotalIncome        int64               `json:"totalIncome"`
	TotalExpense       int64               `json:"totalExpense"`
	NetBalance         int64               `json:"netBalance"`
	TotalStudents      int64               `json:"totalStudents"`
	TotalTransactions  int                 `json:"totalTransactions"`
	PeriodData         []PeriodAmount      `json:"periodData"`
	CategoryData       []CategoryAmount    `json:"categoryData"`
	RecentTransactions []model.Transaction `json:"recentTransactions"`
}

// CategoryBreakdown mengelompokkan transaksi satu jenis per kategori,
// urut dari nominal terbesar.
func CategoryBreakdown(txs []model.Transaction, kind model.TransactionKind) []CategoryAmount {
	totals := make(map[string]int64)
	var grand int64
	for _, t := range txs {
		if t.Kind != kind {
			continue
		}
		totals[t.Category] += t.Amount
		grand += t.Amount
	}

	out := make([]CategoryAmount, 0, len(totals))
	for cat, amount := range totals {
		ca := CategoryAmount{Category: cat, Amount: amount}
		if grand > 0 {
			ca.Permille = amount * 1000 / grand
		}
		out = append(out, ca)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// PeriodBreakdown: pemasukan = pembayaran kas periode tersebut, pengeluaran =
// transaksi expense yang dibuat di dalam rentang periode.
func PeriodBreakdown(periods []model.KasPeriod, payments []model.KasPayment, txs []model.Transaction) []PeriodAmount {
	income := make(map[uint]int64)
	for _, p := range payments {
		income[p.KasPeriodID] += p.Amount
	}

	out := make([]PeriodAmount, 0, len(periods))
	for _, p := range periods {
		row := PeriodAmount{PeriodID: p.ID, WeekNo: p.WeekNo, Income: income[p.ID]}
		for _, t := range txs {
			if t.Kind == model.KindExpense && PeriodContains(p, t.CreatedAt) {
				row.Expense += t.Amount
			}
		}
		row.Balance = row.Income - row.Expense
		out = append(out, row)
	}
	return out
}

// BuildReport menyusun laporan ringkas. txs diharapkan sudah urut terbaru dulu.
func BuildReport(totalStudents int64, periods []model.KasPeriod, payments []model.KasPayment, txs []model.Transaction, recent int) (ReportSummary, error) {
	sum, err := SummarizeTransactions(txs)
	if err != nil {
		return ReportSummary{}, err
	}
	if recent > len(txs) {
		recent = len(txs)
	}
	latest := make([]model.Transaction, 0, recent)
	latest = append(latest, txs[:recent]...)

	return ReportSummary{
		TotalIncome:        sum.TotalIncome,
		TotalExpense:       sum.TotalExpense,
		NetBalance:         sum.Balance,
		TotalStudents:      totalStudents,
		TotalTransactions:  len(txs),
		PeriodData:         PeriodBreakdown(periods, payments, txs),
		CategoryData:       CategoryBreakdown(txs, model.KindExpense),
		RecentTransactions: latest,
	}, nil
}
