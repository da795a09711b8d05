package kas

import (
	"testing"
	"time"

	"kas-siswa-backend/internal/model"
)

func roster() []model.Student {
	return []model.Student{
		{ID: 1, NIS: "2024001", Name: "Ahmad Rizki", Kelas: "X-A"},
		{ID: 2, NIS: "2024002", Name: "Siti Nurhaliza", Kelas: "X-A"},
	}
}

func TestReconcileMarksPaidAndUnpaid(t *testing.T) {
	paidAt := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	payments := []model.KasPayment{{ID: 7, StudentID: 1, KasPeriodID: 1, Amount: 20000, PaidAt: paidAt}}

	items := Reconcile(roster(), payments)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Student.Name != "Ahmad Rizki" || items[0].Payment == nil {
		t.Fatalf("expected Ahmad paid, got %+v", items[0])
	}
	if items[0].Payment.ID != 7 || items[0].Payment.Amount != 20000 || !items[0].Payment.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected payment ref %+v", items[0].Payment)
	}
	if items[1].Student.Name != "Siti Nurhaliza" || items[1].Payment != nil {
		t.Fatalf("expected Siti unpaid, got %+v", items[1])
	}
}

func TestReconcileNoPayments(t *testing.T) {
	items := Reconcile(roster(), nil)
	for i, it := range items {
		if it.Payment != nil {
			t.Fatalf("item %d expected unpaid", i)
		}
	}
	if len(items) != 2 {
		t.Fatalf("expected every student listed, got %d", len(items))
	}
}

func TestReconcileOneItemPerStudent(t *testing.T) {
	students := []model.Student{{ID: 3, Name: "Budi"}, {ID: 1, Name: "Ahmad"}, {ID: 2, Name: "Siti"}}
	payments := []model.KasPayment{
		{ID: 1, StudentID: 2, Amount: 5000},
		{ID: 2, StudentID: 2, Amount: 9000},  // duplikat, yang pertama dipakai
		{ID: 3, StudentID: 99, Amount: 1000}, // siswa tidak dikenal
		{ID: 4, StudentID: 3, Amount: 20000},
	}

	items := Reconcile(students, payments)
	if len(items) != len(students) {
		t.Fatalf("expected %d items, got %d", len(students), len(items))
	}
	seen := map[uint]bool{}
	for i, it := range items {
		if it.Student.ID != students[i].ID {
			t.Fatalf("item %d: order changed, got student %d", i, it.Student.ID)
		}
		if seen[it.Student.ID] {
			t.Fatalf("student %d listed twice", it.Student.ID)
		}
		seen[it.Student.ID] = true
	}
	if items[2].Payment == nil || items[2].Payment.ID != 1 {
		t.Fatalf("expected first payment for Siti, got %+v", items[2].Payment)
	}
	if items[1].Payment != nil {
		t.Fatalf("Ahmad should be unpaid")
	}
}

func TestReconcileEmptyRoster(t *testing.T) {
	items := Reconcile(nil, []model.KasPayment{{StudentID: 1}})
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}
