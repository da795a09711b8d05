// Package kas berisi logika inti kas kelas: rekonsiliasi siswa terhadap
// pembayaran per periode dan agregasi keuangan. Semua fungsi di sini murni,
// tanpa akses database.
package kas

import (
	"time"

	"kas-siswa-backend/internal/model"
)

// PaymentRef adalah ringkasan pembayaran yang ditempel ke PaymentItem.
type PaymentRef struct {
	ID     uint      `json:"id"`
	Amount int64     `json:"amount"`
	PaidAt time.Time `json:"paidAt"`
}

// PaymentItem memasangkan satu siswa dengan pembayarannya (nil jika belum bayar).
type PaymentItem struct {
	Student model.Student `json:"student"`
	Payment *PaymentRef   `json:"payment"`
}

// Reconcile menghasilkan tepat satu item per siswa, mengikuti urutan roster.
// Pembayaran yang siswanya tidak ada di roster diabaikan.
func Reconcile(students []model.Student, payments []model.KasPayment) []PaymentItem {
	byStudent := make(map[uint]model.KasPayment, len(payments))
	for _, p := range payments {
		// simpan yang pertama saja, sama seperti pencarian linear
		if _, ok := byStudent[p.StudentID]; !ok {
			byStudent[p.StudentID] = p
		}
	}

	items := make([]PaymentItem, 0, len(students))
	for _, s := range students {
		item := PaymentItem{Student: s}
		if p, ok := byStudent[s.ID]; ok {
			item.Payment = &PaymentRef{ID: p.ID, Amount: p.Amount, PaidAt: p.PaidAt}
		}
		items = append(items, item)
	}
	return items
}
