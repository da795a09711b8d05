package model

import "time"

// KasPeriod adalah satu minggu tagihan kas dengan nominal yang diharapkan.
type KasPeriod struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WeekNo    int       `json:"weekNo" gorm:"column:week_no;uniqueIndex;not null"`
	StartsAt  time.Time `json:"startsAt" gorm:"not null"`
	EndsAt    time.Time `json:"endsAt" gorm:"not null"`
	Nominal   int64     `json:"nominal" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// KasPayment hanya boleh satu per pasangan (siswa, periode).
type KasPayment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StudentID   uint      `json:"studentId" gorm:"not null;uniqueIndex:uniq_student_period,priority:1"`
	KasPeriodID uint      `json:"kasPeriodId" gorm:"not null;uniqueIndex:uniq_student_period,priority:2;index"`
	Amount      int64     `json:"amount" gorm:"not null"`
	PaidAt      time.Time `json:"paidAt" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relasi
	Student   *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	KasPeriod *KasPeriod `json:"kasPeriod,omitempty" gorm:"foreignKey:KasPeriodID;constraint:OnDelete:CASCADE"`
}
