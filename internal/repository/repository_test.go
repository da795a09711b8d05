package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"kas-siswa-backend/config"
	"kas-siswa-backend/internal/logger"
	"kas-siswa-backend/internal/model"
	"kas-siswa-backend/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "kas.db") + "?_pragma=foreign_keys(1)"
	db, err := config.Open("sqlite", dsn, logger.Discard())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStudentAndPeriod(t *testing.T, db *gorm.DB) (model.Student, model.KasPeriod) {
	t.Helper()
	s := model.Student{NIS: "2024001", Name: "Ahmad", Kelas: "XII"}
	if err := db.Create(&s).Error; err != nil {
		t.Fatal(err)
	}
	start := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	p := model.KasPeriod{WeekNo: 1, StartsAt: start, EndsAt: start.AddDate(0, 0, 5), Nominal: 20000}
	if err := db.Create(&p).Error; err != nil {
		t.Fatal(err)
	}
	return s, p
}

func mirrorOf(p *model.KasPayment) *model.Transaction {
	desc := model.KasPaymentDescription(p.StudentID)
	id := p.StudentID
	return &model.Transaction{Kind: model.KindIncome, Category: model.CategoryKas, Description: &desc, Amount: p.Amount, StudentID: &id}
}

func TestCreateWithTransactionRollsBackOnDuplicate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s, p := seedStudentAndPeriod(t, db)
	repo := repository.NewKasPaymentRepository(db)

	first := &model.KasPayment{StudentID: s.ID, KasPeriodID: p.ID, Amount: 20000, PaidAt: time.Now()}
	if err := repo.CreateWithTransaction(ctx, first, mirrorOf(first)); err != nil {
		t.Fatalf("first: %v", err)
	}

	// melewati pengecekan Exists, unique index yang menolak
	second := &model.KasPayment{StudentID: s.ID, KasPeriodID: p.ID, Amount: 20000, PaidAt: time.Now()}
	err := repo.CreateWithTransaction(ctx, second, mirrorOf(second))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want ErrDuplicatedKey", err)
	}

	var txCount int64
	db.Model(&model.Transaction{}).Count(&txCount)
	if txCount != 1 {
		t.Fatalf("transactions = %d, want 1", txCount)
	}
	n, err := repo.CountByPeriod(ctx, p.ID)
	if err != nil || n != 1 {
		t.Fatalf("CountByPeriod = %d, %v", n, err)
	}
	exists, err := repo.Exists(ctx, s.ID, p.ID)
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v", exists, err)
	}
}

func TestKasPaymentGetAllFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s, p := seedStudentAndPeriod(t, db)
	repo := repository.NewKasPaymentRepository(db)
	pay := &model.KasPayment{StudentID: s.ID, KasPeriodID: p.ID, Amount: 20000, PaidAt: time.Now()}
	if err := repo.CreateWithTransaction(ctx, pay, mirrorOf(pay)); err != nil {
		t.Fatal(err)
	}

	all, err := repo.GetAll(ctx, 0)
	if err != nil || len(all) != 1 {
		t.Fatalf("GetAll(0) = %d, %v", len(all), err)
	}
	if all[0].Student == nil || all[0].KasPeriod == nil {
		t.Fatalf("relations not preloaded: %+v", all[0])
	}
	none, err := repo.GetAll(ctx, p.ID+1)
	if err != nil || len(none) != 0 {
		t.Fatalf("GetAll(other) = %d, %v", len(none), err)
	}
}

func TestDeletePeriodCascadesPayments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s, p := seedStudentAndPeriod(t, db)
	payments := repository.NewKasPaymentRepository(db)
	pay := &model.KasPayment{StudentID: s.ID, KasPeriodID: p.ID, Amount: 20000, PaidAt: time.Now()}
	if err := payments.CreateWithTransaction(ctx, pay, mirrorOf(pay)); err != nil {
		t.Fatal(err)
	}

	periods := repository.NewKasPeriodRepository(db)
	if err := periods.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := payments.CountByPeriod(ctx, p.ID); n != 0 {
		t.Fatalf("payments left = %d", n)
	}
	if err := periods.Delete(ctx, p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestWeekNoAndNISExistsExcludeSelf(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s, p := seedStudentAndPeriod(t, db)

	periods := repository.NewKasPeriodRepository(db)
	if ok, _ := periods.WeekNoExists(ctx, 1, 0); !ok {
		t.Fatalf("week 1 should exist")
	}
	if ok, _ := periods.WeekNoExists(ctx, 1, p.ID); ok {
		t.Fatalf("week 1 should be ignored for its own period")
	}

	students := repository.NewStudentRepository(db)
	if ok, _ := students.NISExists(ctx, "2024001", 0); !ok {
		t.Fatalf("nis should exist")
	}
	if ok, _ := students.NISExists(ctx, "2024001", s.ID); ok {
		t.Fatalf("nis should be ignored for its own student")
	}
	if n, _ := students.Count(ctx); n != 1 {
		t.Fatalf("count = %d", n)
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := repository.NewTransactionRepository(db)

	base := time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC)
	for i, cat := range []string{"lama", "baru"} {
		tx := &model.Transaction{Kind: model.KindExpense, Category: cat, Amount: 1000, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Create(ctx, &model.Transaction{Kind: model.KindIncome, Category: "donasi", Amount: 5, CreatedAt: base}); err != nil {
		t.Fatal(err)
	}

	expenses, err := repo.GetAll(ctx, model.KindExpense)
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 2 || expenses[0].Category != "baru" {
		t.Fatalf("expenses = %+v", expenses)
	}
	all, _ := repo.GetAll(ctx, "")
	if len(all) != 3 {
		t.Fatalf("all = %d", len(all))
	}
}
