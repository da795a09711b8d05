package model

import (
	"fmt"
	"time"
)

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// CategoryKas dipakai untuk transaksi pemasukan yang dibuat otomatis dari pembayaran kas.
const CategoryKas = "kas"

func (k TransactionKind) Valid() bool {
	switch k {
	case KindIncome, KindExpense:
		return true
	}
	return false
}

type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Kind        TransactionKind `json:"kind" gorm:"type:varchar(50);not null;index"`
	Category    string          `json:"category" gorm:"type:varchar(255);not null"`
	Description *string         `json:"description"`
	Amount      int64           `json:"amount" gorm:"not null"`
	StudentID   *uint           `json:"studentId" gorm:"index"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relasi (opsional), di-preload saat list
	Student *Student `json:"student" gorm:"foreignKey:StudentID;constraint:OnDelete:SET NULL"`
}

// KasPaymentDescription membentuk keterangan transaksi cerminan pembayaran kas.
func KasPaymentDescription(studentID uint) string {
	return fmt.Sprintf("Pembayaran kas mingguan - siswa ID: %d", studentID)
}
