package repository

import (
	"context"

	"gorm.io/gorm"

	"kas-siswa-backend/internal/model"
)

type KasPaymentRepository interface {
	GetByPeriod(ctx context.Context, periodID uint) ([]model.KasPayment, error)
	GetAll(ctx context.Context, periodID uint) ([]model.KasPayment, error)
	Exists(ctx context.Context, studentID, periodID uint) (bool, error)
	CountByPeriod(ctx context.Context, periodID uint) (int64, error)
	CreateWithTransaction(ctx context.Context, payment *model.KasPayment, mirror *model.Transaction) error
}

type kasPaymentRepository struct {
	db *gorm.DB
}

func NewKasPaymentRepository(db *gorm.DB) KasPaymentRepository {
	return &kasPaymentRepository{db}
}

func (r *kasPaymentRepository) GetByPeriod(ctx context.Context, periodID uint) ([]model.KasPayment, error) {
	payments := []model.KasPayment{}
	err := r.db.WithContext(ctx).Where("kas_period_id = ?", periodID).Order("id asc").Find(&payments).Error
	return payments, err
}

// GetAll dengan periodID 0 mengembalikan semua pembayaran.
func (r *kasPaymentRepository) GetAll(ctx context.Context, periodID uint) ([]model.KasPayment, error) {
	payments := []model.KasPayment{}
	q := r.db.WithContext(ctx).Preload("Student").Preload("KasPeriod").Order("id desc")
	if periodID != 0 {
		q = q.Where("kas_period_id = ?", periodID)
	}
	err := q.Find(&payments).Error
	return payments, err
}

func (r *kasPaymentRepository) Exists(ctx context.Context, studentID, periodID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KasPayment{}).
		Where("student_id = ? AND kas_period_id = ?", studentID, periodID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *kasPaymentRepository) CountByPeriod(ctx context.Context, periodID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KasPayment{}).Where("kas_period_id = ?", periodID).Count(&count).Error
	return count, err
}

// CreateWithTransaction menyimpan pembayaran dan transaksi pemasukan
// cerminannya dalam satu transaksi database.
func (r *kasPaymentRepository) CreateWithTransaction(ctx context.Context, payment *model.KasPayment, mirror *model.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Create(mirror).Error
	})
}
