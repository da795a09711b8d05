package routes

import (
	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/handler"
	"kas-siswa-backend/internal/repository"
)

func SetupStudentRoutes(r fiber.Router, d Deps) {
	repo := repository.NewStudentRepository(d.DB)
	hdl := handler.NewStudentHandler(repo, d.Log)

	api := r.Group("/students", d.guard()...)
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
