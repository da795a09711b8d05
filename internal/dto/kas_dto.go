package dto

import (
	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/model"
)

const (
	MsgPeriodRequired  = "All fields are required"
	MsgPeriodRange     = "startsAt must not be after endsAt"
	MsgPaymentRequired = "Student ID, Kas Period ID, and amount are required"
)

type KasPeriodRequest struct {
	WeekNo   int    `json:"weekNo" validate:"required,gt=0"`
	Nominal  int64  `json:"nominal" validate:"required,gt=0"`
	StartsAt string `json:"startsAt" validate:"required"`
	EndsAt   string `json:"endsAt" validate:"required"`
}

// ToModel memvalidasi request lalu membangun KasPeriod baru.
func (r *KasPeriodRequest) ToModel() (model.KasPeriod, error) {
	var p model.KasPeriod
	if err := r.Apply(&p); err != nil {
		return model.KasPeriod{}, err
	}
	return p, nil
}

// Apply memvalidasi lalu menimpa field periode (update penuh).
func (r *KasPeriodRequest) Apply(p *model.KasPeriod) error {
	if err := requireAll(r, MsgPeriodRequired); err != nil {
		return err
	}
	starts, err := ParseTime(r.StartsAt)
	if err != nil {
		return err
	}
	ends, err := ParseTime(r.EndsAt)
	if err != nil {
		return err
	}
	if starts.After(ends) {
		return apperror.Validation(MsgPeriodRange)
	}

	p.WeekNo = r.WeekNo
	p.Nominal = r.Nominal
	p.StartsAt = starts
	p.EndsAt = ends
	return nil
}

type KasPaymentRequest struct {
	StudentID   uint  `json:"studentId" validate:"required"`
	KasPeriodID uint  `json:"kasPeriodId" validate:"required"`
	Amount      int64 `json:"amount" validate:"required,gt=0"`
}

func (r *KasPaymentRequest) Validate() error {
	return requireAll(r, MsgPaymentRequired)
}
