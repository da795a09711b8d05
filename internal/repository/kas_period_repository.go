package repository

import (
	"context"

	"gorm.io/gorm"

	"kas-siswa-backend/internal/model"
)

type KasPeriodRepository interface {
	GetAll(ctx context.Context) ([]model.KasPeriod, error)
	GetByID(ctx context.Context, id uint) (*model.KasPeriod, error)
	WeekNoExists(ctx context.Context, weekNo int, excludeID uint) (bool, error)
	Create(ctx context.Context, period *model.KasPeriod) error
	Update(ctx context.Context, period *model.KasPeriod) error
	Delete(ctx context.Context, id uint) error
}

type kasPeriodRepository struct {
	db *gorm.DB
}

func NewKasPeriodRepository(db *gorm.DB) KasPeriodRepository {
	return &kasPeriodRepository{db}
}

func (r *kasPeriodRepository) GetAll(ctx context.Context) ([]model.KasPeriod, error) {
	periods := []model.KasPeriod{}
	err := r.db.WithContext(ctx).Order("week_no desc").Find(&periods).Error
	return periods, err
}

func (r *kasPeriodRepository) GetByID(ctx context.Context, id uint) (*model.KasPeriod, error) {
	var period model.KasPeriod
	if err := r.db.WithContext(ctx).First(&period, id).Error; err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *kasPeriodRepository) WeekNoExists(ctx context.Context, weekNo int, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.KasPeriod{}).Where("week_no = ?", weekNo)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *kasPeriodRepository) Create(ctx context.Context, period *model.KasPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *kasPeriodRepository) Update(ctx context.Context, period *model.KasPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

// Delete ikut menghapus pembayaran pada periode tersebut (cascade).
func (r *kasPeriodRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kas_period_id = ?", id).Delete(&model.KasPayment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.KasPeriod{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
