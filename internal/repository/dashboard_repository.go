package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kas-siswa-backend/internal/kas"
	"kas-siswa-backend/internal/model"
)

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context, now time.Time) (kas.DashboardStats, error)
	GetReportSummary(ctx context.Context, recent int) (kas.ReportSummary, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(ctx context.Context, now time.Time) (kas.DashboardStats, error) {
	db := r.db.WithContext(ctx)

	// 1. Total siswa
	var totalStudents int64
	if err := db.Model(&model.Student{}).Count(&totalStudents).Error; err != nil {
		return kas.DashboardStats{}, err
	}

	// 2. Pemasukan & pengeluaran
	var txs []model.Transaction
	if err := db.Select("id", "kind", "amount").Find(&txs).Error; err != nil {
		return kas.DashboardStats{}, err
	}
	summary, err := kas.SummarizeTransactions(txs)
	if err != nil {
		return kas.DashboardStats{}, err
	}

	// 3. Periode minggu ini
	var periods []model.KasPeriod
	if err := db.Find(&periods).Error; err != nil {
		return kas.DashboardStats{}, err
	}
	current, ok := kas.CurrentPeriod(periods, now)
	if !ok {
		return kas.BuildDashboard(totalStudents, summary, nil, 0), nil
	}

	var paid int64
	if err := db.Model(&model.KasPayment{}).Where("kas_period_id = ?", current.ID).Count(&paid).Error; err != nil {
		return kas.DashboardStats{}, err
	}
	return kas.BuildDashboard(totalStudents, summary, &current, paid), nil
}

func (r *dashboardRepository) GetReportSummary(ctx context.Context, recent int) (kas.ReportSummary, error) {
	db := r.db.WithContext(ctx)

	var totalStudents int64
	if err := db.Model(&model.Student{}).Count(&totalStudents).Error; err != nil {
		return kas.ReportSummary{}, err
	}

	var periods []model.KasPeriod
	if err := db.Order("week_no desc").Find(&periods).Error; err != nil {
		return kas.ReportSummary{}, err
	}

	var payments []model.KasPayment
	if err := db.Select("id", "kas_period_id", "amount").Find(&payments).Error; err != nil {
		return kas.ReportSummary{}, err
	}

	var txs []model.Transaction
	if err := db.Preload("Student").Order("created_at desc").Order("id desc").Find(&txs).Error; err != nil {
		return kas.ReportSummary{}, err
	}

	return kas.BuildReport(totalStudents, periods, payments, txs, recent)
}
