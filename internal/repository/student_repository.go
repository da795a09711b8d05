package repository

import (
	"context"

	"gorm.io/gorm"

	"kas-siswa-backend/internal/model"
)

type StudentRepository interface {
	GetAll(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	NISExists(ctx context.Context, nis string, excludeID uint) (bool, error)
	Create(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db}
}

func (r *studentRepository) GetAll(ctx context.Context) ([]model.Student, error) {
	students := []model.Student{}
	err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&students).Error
	return students, err
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// NISExists mengecek NIS dipakai siswa lain; excludeID 0 berarti cek semua.
func (r *studentRepository) NISExists(ctx context.Context, nis string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Student{}).Where("nis = ?", nis)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

// Delete menghapus siswa beserta pembayaran kasnya; transaksi yang merujuk
// siswa tetap ada dengan student_id NULL. FK di skema melakukan hal yang sama,
// di sini dilakukan manual agar tetap benar di driver yang FK-nya nonaktif.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Transaction{}).Where("student_id = ?", id).Update("student_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&model.KasPayment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Student{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&count).Error
	return count, err
}
