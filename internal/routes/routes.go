package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"kas-siswa-backend/config"
	"kas-siswa-backend/internal/middleware"
	"kas-siswa-backend/internal/model"
)

// Deps berisi semua yang dibutuhkan untuk merakit repository dan handler.
type Deps struct {
	DB     *gorm.DB
	Config config.Config
	Log    *slog.Logger
	Now    func() time.Time
}

// guard mengembalikan middleware untuk route data. Tanpa REQUIRE_AUTH route
// terbuka seperti aplikasi aslinya.
func (d Deps) guard() []fiber.Handler {
	if !d.Config.RequireAuth {
		return nil
	}
	return []fiber.Handler{middleware.Auth(d.Config.JWTSecret), middleware.Role(model.RoleAdmin)}
}

// SetupRoutes mendaftarkan semua route di root dan di bawah /api.
func SetupRoutes(app *fiber.App, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many login attempts"})
		},
	})

	for _, r := range []fiber.Router{app, app.Group("/api")} {
		SetupAuthRoutes(r, d, loginLimiter)
		SetupStudentRoutes(r, d)
		SetupKasPeriodRoutes(r, d)
		SetupKasPaymentRoutes(r, d)
		SetupTransactionRoutes(r, d)
		SetupDashboardRoutes(r, d)
		SetupReportRoutes(r, d)
	}
}
