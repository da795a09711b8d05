package kas

import (
	"testing"

	"kas-siswa-backend/internal/model"
)

func TestSummarizeTransactions(t *testing.T) {
	cases := []struct {
		name    string
		txs     []model.Transaction
		income  int64
		expense int64
		balance int64
	}{
		{"empty", nil, 0, 0, 0},
		{
			"mixed",
			[]model.Transaction{
				{Kind: model.KindIncome, Amount: 20000},
				{Kind: model.KindExpense, Amount: 150000},
				{Kind: model.KindIncome, Amount: 500000},
			},
			520000, 150000, 370000,
		},
		{
			"negative balance",
			[]model.Transaction{
				{Kind: model.KindIncome, Amount: 20000},
				{Kind: model.KindExpense, Amount: 75000},
			},
			20000, 75000, -55000,
		},
	}
	for _, tc := range cases {
		s, err := SummarizeTransactions(tc.txs)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if s.TotalIncome != tc.income || s.TotalExpense != tc.expense || s.Balance != tc.balance {
			t.Fatalf("%s: got %+v", tc.name, s)
		}
		if s.TotalIncome-s.TotalExpense != s.Balance {
			t.Fatalf("%s: balance invariant broken %+v", tc.name, s)
		}
	}
}

func TestSummarizeTransactionsRejectsUnknownKind(t *testing.T) {
	_, err := SummarizeTransactions([]model.Transaction{{ID: 4, Kind: "transfer", Amount: 1}})
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestSummarizePayments(t *testing.T) {
	items := []PaymentItem{
		{Student: model.Student{ID: 1}, Payment: &PaymentRef{Amount: 20000}},
		{Student: model.Student{ID: 2}},
		{Student: model.Student{ID: 3}, Payment: &PaymentRef{Amount: 15000}},
	}
	s := SummarizePayments(items)
	if s.PaidCount != 2 || s.UnpaidCount != 1 || s.TotalCollected != 35000 {
		t.Fatalf("got %+v", s)
	}

	if s := SummarizePayments(nil); s != (PaymentSummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}
