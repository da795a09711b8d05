package routes

import (
	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/handler"
	"kas-siswa-backend/internal/repository"
)

func SetupTransactionRoutes(r fiber.Router, d Deps) {
	repo := repository.NewTransactionRepository(d.DB)
	hdl := handler.NewTransactionHandler(repo, repository.NewStudentRepository(d.DB), d.Log)

	api := r.Group("/transactions", d.guard()...)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
