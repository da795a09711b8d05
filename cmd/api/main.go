package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"kas-siswa-backend/config"
	"kas-siswa-backend/internal/logger"
	"kas-siswa-backend/internal/middleware"
	"kas-siswa-backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("file .env tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Error("koneksi database gagal", "error", err)
		os.Exit(1)
	}

	app := NewApp(cfg, log)
	routes.SetupRoutes(app, routes.Deps{DB: db, Config: cfg, Log: log})

	go func() {
		log.Info("server siap", "port", cfg.AppPort, "require_auth", cfg.RequireAuth)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Error("server berhenti", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("mematikan server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("shutdown gagal", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// NewApp membuat aplikasi Fiber dengan middleware global.
func NewApp(cfg config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "kas-siswa-backend",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins})) // Agar API bisa diakses dari domain/port lain
	app.Use(fiberlog.New(fiberlog.Config{
		Format: "${time} ${locals:reqid} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	return app
}
