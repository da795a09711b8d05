package kas

import (
	"testing"
	"time"

	"kas-siswa-backend/internal/model"
)

func TestPeriodContainsInclusive(t *testing.T) {
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 12, 23, 59, 59, 0, time.UTC)
	p := model.KasPeriod{StartsAt: start, EndsAt: end}

	cases := []struct {
		at   time.Time
		want bool
	}{
		{start, true},
		{end, true},
		{start.Add(-time.Nanosecond), false},
		{end.Add(time.Nanosecond), false},
		{start.Add(48 * time.Hour), true},
	}
	for i, tc := range cases {
		if got := PeriodContains(p, tc.at); got != tc.want {
			t.Fatalf("case %d: at %v got %v", i, tc.at, got)
		}
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	periods := []model.KasPeriod{
		{ID: 1, WeekNo: 1, StartsAt: now.AddDate(0, 0, -14), EndsAt: now.AddDate(0, 0, -10)},
		{ID: 2, WeekNo: 2, StartsAt: now.AddDate(0, 0, -2), EndsAt: now.AddDate(0, 0, 2)},
		{ID: 3, WeekNo: 3, StartsAt: now, EndsAt: now.AddDate(0, 0, 4)},
	}

	p, ok := CurrentPeriod(periods, now)
	if !ok || p.ID != 3 {
		t.Fatalf("expected overlapping period with highest week, got %+v ok=%v", p, ok)
	}

	if _, ok := CurrentPeriod(periods[:1], now); ok {
		t.Fatalf("expected no current period")
	}
}

func TestWeekBounds(t *testing.T) {
	// Rabu, 10 Januari 2024
	wed := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	mon, fri := WeekBounds(wed)
	if !mon.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("monday = %v", mon)
	}
	if !fri.Equal(time.Date(2024, 1, 12, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("friday = %v", fri)
	}

	// Minggu masuk ke minggu yang diawali Senin sebelumnya
	sun := time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC)
	mon, _ = WeekBounds(sun)
	if !mon.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("sunday monday = %v", mon)
	}
}

func TestBuildDashboard(t *testing.T) {
	tx := TransactionSummary{TotalIncome: 40000, TotalExpense: 425000, Balance: -385000}

	stats := BuildDashboard(5, tx, nil, 3)
	if stats.PendingPayments != 0 || stats.CurrentWeekPayments != 0 {
		t.Fatalf("no current period should report zeros, got %+v", stats)
	}
	if stats.CurrentBalance != -385000 || stats.TotalStudents != 5 {
		t.Fatalf("got %+v", stats)
	}

	period := &model.KasPeriod{ID: 1, WeekNo: 1}
	stats = BuildDashboard(5, tx, period, 2)
	if stats.CurrentWeekPayments != 2 || stats.PendingPayments != 3 {
		t.Fatalf("got %+v", stats)
	}
}
