package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"kas-siswa-backend/config"
	"kas-siswa-backend/internal/database"
	"kas-siswa-backend/internal/logger"
)

func main() {
	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		slog.Warn("file .env tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	log.Info("memulai database seeding")

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Error("koneksi database gagal", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.SeedAll(db, time.Now(), log); err != nil {
		log.Error("seeding gagal", "error", err)
		os.Exit(1)
	}
}
