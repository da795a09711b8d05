package database

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kas-siswa-backend/config"
	"kas-siswa-backend/internal/kas"
	"kas-siswa-backend/internal/logger"
	"kas-siswa-backend/internal/model"
)

func TestSeedAllIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "seed.db") + "?_pragma=foreign_keys(1)"
	db, err := config.Open("sqlite", dsn, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := config.Migrate(db); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 7, 17, 10, 0, 0, 0, time.UTC) // Rabu
	for i := 0; i < 2; i++ {
		if err := SeedAll(db, now, logger.Discard()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	counts := map[string]struct {
		model any
		want  int64
	}{
		"users":        {&model.User{}, 1},
		"students":     {&model.Student{}, 5},
		"periods":      {&model.KasPeriod{}, 1},
		"payments":     {&model.KasPayment{}, 2},
		"transactions": {&model.Transaction{}, 5},
	}
	for name, c := range counts {
		var n int64
		if err := db.Model(c.model).Count(&n).Error; err != nil {
			t.Fatal(err)
		}
		if n != c.want {
			t.Errorf("%s = %d, want %d", name, n, c.want)
		}
	}

	var admin model.User
	if err := db.Where("email = ?", AdminEmail).First(&admin).Error; err != nil {
		t.Fatal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(AdminPassword)) != nil {
		t.Fatalf("admin password hash mismatch")
	}

	var period model.KasPeriod
	db.First(&period)
	if !kas.PeriodContains(period, now) {
		t.Fatalf("seeded period %v - %v does not contain %v", period.StartsAt, period.EndsAt, now)
	}
}
