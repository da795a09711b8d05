package kas

import (
	"fmt"

	"kas-siswa-backend/internal/model"
)

type TransactionSummary struct {
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Balance      int64 `json:"balance"`
}

type PaymentSummary struct {
	PaidCount      int   `json:"paidCount"`
	UnpaidCount    int   `json:"unpaidCount"`
	TotalCollected int64 `json:"totalCollected"`
}

// SummarizeTransactions menjumlahkan pemasukan dan pengeluaran. Balance boleh negatif.
// Kind di luar income/expense mengembalikan error.
func SummarizeTransactions(txs []model.Transaction) (TransactionSummary, error) {
	var s TransactionSummary
	for _, t := range txs {
		switch t.Kind {
		case model.KindIncome:
			s.TotalIncome += t.Amount
		case model.KindExpense:
			s.TotalExpense += t.Amount
		default:
			return TransactionSummary{}, fmt.Errorf("transaction %d: unknown kind %q", t.ID, t.Kind)
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s, nil
}

// SummarizePayments menghitung status lunas dari hasil Reconcile.
func SummarizePayments(items []PaymentItem) PaymentSummary {
	var s PaymentSummary
	for _, it := range items {
		if it.Payment == nil {
			continue
		}
		s.PaidCount++
		s.TotalCollected += it.Payment.Amount
	}
	s.UnpaidCount = len(items) - s.PaidCount
	return s
}
