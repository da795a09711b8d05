package routes

import (
	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/handler"
	"kas-siswa-backend/internal/repository"
	"kas-siswa-backend/internal/usecase"
)

func newKasUsecase(d Deps) *usecase.KasUsecase {
	return usecase.NewKasUsecase(
		repository.NewStudentRepository(d.DB),
		repository.NewKasPeriodRepository(d.DB),
		repository.NewKasPaymentRepository(d.DB),
	)
}

func SetupKasPeriodRoutes(r fiber.Router, d Deps) {
	repo := repository.NewKasPeriodRepository(d.DB)
	hdl := handler.NewKasPeriodHandler(repo, newKasUsecase(d), d.Log)

	api := r.Group("/kas-periods", d.guard()...)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Get("/:id/payments", hdl.Payments) // roster + status bayar
	api.Get("/:id/summary", hdl.Summary)
}

func SetupKasPaymentRoutes(r fiber.Router, d Deps) {
	repo := repository.NewKasPaymentRepository(d.DB)
	hdl := handler.NewKasPaymentHandler(repo, newKasUsecase(d), d.Log)

	api := r.Group("/kas-payments", d.guard()...)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
}
