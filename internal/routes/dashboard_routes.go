package routes

import (
	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/handler"
	"kas-siswa-backend/internal/repository"
)

func SetupDashboardRoutes(r fiber.Router, d Deps) {
	repo := repository.NewDashboardRepository(d.DB)
	hdl := handler.NewDashboardHandler(repo, d.Log, d.Now)

	api := r.Group("/dashboard", d.guard()...)
	api.Get("/stats", hdl.GetStats)
}
