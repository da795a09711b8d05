package usecase

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/dto"
	"kas-siswa-backend/internal/kas"
	"kas-siswa-backend/internal/model"
	"kas-siswa-backend/internal/repository"
)

const MsgPaymentDuplicate = "Payment already recorded for this student and period"

type KasUsecase struct {
	students repository.StudentRepository
	periods  repository.KasPeriodRepository
	payments repository.KasPaymentRepository
	now      func() time.Time
}

func NewKasUsecase(students repository.StudentRepository, periods repository.KasPeriodRepository, payments repository.KasPaymentRepository) *KasUsecase {
	return &KasUsecase{students: students, periods: periods, payments: payments, now: time.Now}
}

// RecordPayment mencatat pembayaran kas dan transaksi pemasukan kategori "kas".
// Keduanya ditulis atomik; unique index (student_id, kas_period_id) menutup
// celah balapan setelah pengecekan duplikat.
func (u *KasUsecase) RecordPayment(ctx context.Context, req dto.KasPaymentRequest) (*model.KasPayment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 1. Pastikan siswa & periode ada
	if _, err := u.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, notFound(err, "Student not found")
	}
	if _, err := u.periods.GetByID(ctx, req.KasPeriodID); err != nil {
		return nil, notFound(err, "Kas period not found")
	}

	// 2. Cek pembayaran ganda
	exists, err := u.payments.Exists(ctx, req.StudentID, req.KasPeriodID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict(MsgPaymentDuplicate)
	}

	// 3. Simpan pembayaran + transaksi cerminan
	now := u.now()
	payment := &model.KasPayment{
		StudentID:   req.StudentID,
		KasPeriodID: req.KasPeriodID,
		Amount:      req.Amount,
		PaidAt:      now,
	}
	desc := model.KasPaymentDescription(req.StudentID)
	studentID := req.StudentID
	mirror := &model.Transaction{
		Kind:        model.KindIncome,
		Category:    model.CategoryKas,
		Description: &desc,
		Amount:      req.Amount,
		StudentID:   &studentID,
	}
	if err := u.payments.CreateWithTransaction(ctx, payment, mirror); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict(MsgPaymentDuplicate)
		}
		return nil, err
	}
	return payment, nil
}

// PeriodPayments: periode yang tidak ada tetap menghasilkan roster lengkap
// dengan semua siswa belum bayar.
func (u *KasUsecase) PeriodPayments(ctx context.Context, periodID uint) ([]kas.PaymentItem, error) {
	students, err := u.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := u.payments.GetByPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return kas.Reconcile(students, payments), nil
}

type PeriodSummary struct {
	Period model.KasPeriod `json:"period"`
	kas.PaymentSummary
	ExpectedTotal int64 `json:"expectedTotal"`
	Outstanding   int64 `json:"outstanding"`
}

func (u *KasUsecase) PeriodSummary(ctx context.Context, periodID uint) (*PeriodSummary, error) {
	period, err := u.periods.GetByID(ctx, periodID)
	if err != nil {
		return nil, notFound(err, "Kas period not found")
	}
	items, err := u.PeriodPayments(ctx, periodID)
	if err != nil {
		return nil, err
	}

	s := kas.SummarizePayments(items)
	expected := period.Nominal * int64(len(items))
	return &PeriodSummary{
		Period:         *period,
		PaymentSummary: s,
		ExpectedTotal:  expected,
		Outstanding:    expected - s.TotalCollected,
	}, nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(msg)
	}
	return err
}
