package database

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kas-siswa-backend/internal/kas"
	"kas-siswa-backend/internal/model"
)

const (
	AdminEmail    = "admin@kassiswa.sch.id"
	AdminPassword = "admin123"
	SeedNominal   = 20000
)

// SeedAll mengisi data awal. Aman dijalankan berulang kali: setiap baris
// dicari dulu berdasarkan kunci alaminya.
func SeedAll(db *gorm.DB, now time.Time, log *slog.Logger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1. Seed Akun Admin
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.User{Name: "Administrator", Email: AdminEmail, Password: string(hashedPassword), Role: model.RoleAdmin}
		if err := tx.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		// Paksa update password agar selalu sinkron dengan "admin123" meskipun user sudah ada
		if err := tx.Model(&admin).Update("password", string(hashedPassword)).Error; err != nil {
			return fmt.Errorf("seed admin password: %w", err)
		}

		// 2. Seed Siswa
		students := []model.Student{
			{NIS: "2024001", Name: "Ahmad Rizki", Kelas: "XII IPA 1"},
			{NIS: "2024002", Name: "Siti Nurhaliza", Kelas: "XII IPA 1"},
			{NIS: "2024003", Name: "Budi Santoso", Kelas: "XII IPA 1"},
			{NIS: "2024004", Name: "Dewi Lestari", Kelas: "XII IPA 1"},
			{NIS: "2024005", Name: "Eko Prasetyo", Kelas: "XII IPA 1"},
		}
		for i := range students {
			if err := tx.Where(model.Student{NIS: students[i].NIS}).FirstOrCreate(&students[i]).Error; err != nil {
				return fmt.Errorf("seed student %s: %w", students[i].NIS, err)
			}
		}

		// 3. Seed Periode minggu ini (Senin-Jumat)
		start, end := kas.WeekBounds(now)
		period := model.KasPeriod{WeekNo: 1, StartsAt: start, EndsAt: end, Nominal: SeedNominal}
		if err := tx.Where(model.KasPeriod{WeekNo: period.WeekNo}).FirstOrCreate(&period).Error; err != nil {
			return fmt.Errorf("seed kas period: %w", err)
		}

		// 4. Seed Pembayaran (dua siswa pertama) + transaksi cerminannya
		for _, s := range students[:2] {
			payment := model.KasPayment{StudentID: s.ID, KasPeriodID: period.ID, Amount: period.Nominal, PaidAt: now}
			res := tx.Where(model.KasPayment{StudentID: s.ID, KasPeriodID: period.ID}).FirstOrCreate(&payment)
			if res.Error != nil {
				return fmt.Errorf("seed payment: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}
			studentID := s.ID
			desc := model.KasPaymentDescription(s.ID)
			mirror := model.Transaction{
				Kind:        model.KindIncome,
				Category:    model.CategoryKas,
				Description: &desc,
				Amount:      payment.Amount,
				StudentID:   &studentID,
			}
			if err := tx.Omit("Student").Create(&mirror).Error; err != nil {
				return fmt.Errorf("seed payment transaction: %w", err)
			}
		}

		// 5. Seed Pengeluaran
		expenses := []struct {
			category, description string
			amount                int64
		}{
			{"ATK", "Pembelian alat tulis kelas", 150000},
			{"Kebersihan", "Perlengkapan kebersihan kelas", 75000},
			{"Listrik", "Iuran listrik kelas", 200000},
		}
		for _, e := range expenses {
			desc := e.description
			t := model.Transaction{Kind: model.KindExpense, Category: e.category, Description: &desc, Amount: e.amount}
			if err := tx.Where("kind = ? AND category = ?", model.KindExpense, e.category).Omit("Student").FirstOrCreate(&t).Error; err != nil {
				return fmt.Errorf("seed expense %s: %w", e.category, err)
			}
		}

		log.Info("seeding selesai", "students", len(students), "period_week", period.WeekNo)
		return nil
	})
}
