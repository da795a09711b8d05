package repository

import (
	"context"

	"gorm.io/gorm"

	"kas-siswa-backend/internal/model"
)

type TransactionRepository interface {
	GetAll(ctx context.Context, kind model.TransactionKind) ([]model.Transaction, error)
	GetByID(ctx context.Context, id uint) (*model.Transaction, error)
	Create(ctx context.Context, t *model.Transaction) error
	Update(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, id uint) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db}
}

// GetAll urut terbaru dulu, kind kosong berarti semua jenis.
func (r *transactionRepository) GetAll(ctx context.Context, kind model.TransactionKind) ([]model.Transaction, error) {
	txs := []model.Transaction{}
	q := r.db.WithContext(ctx).Preload("Student").Order("created_at desc").Order("id desc")
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	err := q.Find(&txs).Error
	return txs, err
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var t model.Transaction
	if err := r.db.WithContext(ctx).Preload("Student").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepository) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Omit("Student").Create(t).Error
}

func (r *transactionRepository) Update(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Omit("Student").Save(t).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
