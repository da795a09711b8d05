package routes

import (
	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/handler"
	"kas-siswa-backend/internal/repository"
)

func SetupReportRoutes(r fiber.Router, d Deps) {
	repo := repository.NewDashboardRepository(d.DB)
	hdl := handler.NewReportHandler(repo, d.Log)

	api := r.Group("/reports", d.guard()...)
	api.Get("/summary", hdl.GetSummary)
}
