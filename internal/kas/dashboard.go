package kas

import "kas-siswa-backend/internal/model"

type DashboardStats struct {
	TotalStudents       int64            `json:"totalStudents"`
	TotalIncome         int64            `json:"totalIncome"`
	TotalExpense        int64            `json:"totalExpense"`
	CurrentBalance      int64            `json:"currentBalance"`
	CurrentWeekPayments int64            `json:"currentWeekPayments"`
	PendingPayments     int64            `json:"pendingPayments"`
	CurrentPeriod       *model.KasPeriod `json:"currentPeriod"`
}

// BuildDashboard menyusun statistik dashboard. current nil berarti tidak ada
// periode berjalan, sehingga pembayaran minggu ini dan tunggakan dilaporkan 0.
func BuildDashboard(totalStudents int64, tx TransactionSummary, current *model.KasPeriod, currentPayments int64) DashboardStats {
	stats := DashboardStats{
		TotalStudents:  totalStudents,
		TotalIncome:    tx.TotalIncome,
		TotalExpense:   tx.TotalExpense,
		CurrentBalance: tx.Balance,
		CurrentPeriod:  current,
	}
	if current != nil {
		stats.CurrentWeekPayments = currentPayments
		stats.PendingPayments = totalStudents - currentPayments
	}
	return stats
}
