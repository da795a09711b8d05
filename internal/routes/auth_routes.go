package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	delivery "kas-siswa-backend/internal/delivery/http"
	"kas-siswa-backend/internal/middleware"
	"kas-siswa-backend/internal/repository"
	"kas-siswa-backend/internal/usecase"
)

func SetupAuthRoutes(r fiber.Router, d Deps, limit fiber.Handler) {
	repo := repository.NewUserRepository(d.DB)
	uc := usecase.NewUserUsecase(repo, d.Config.JWTSecret, time.Duration(d.Config.JWTTTLHours)*time.Hour)
	hdl := delivery.NewUserHandler(uc, d.Log)

	api := r.Group("/auth")
	api.Post("/", limit, hdl.Login)
	api.Get("/me", middleware.Auth(d.Config.JWTSecret), hdl.Me)
}
