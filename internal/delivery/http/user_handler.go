package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/dto"
	"kas-siswa-backend/internal/handler"
	"kas-siswa-backend/internal/usecase"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
	log     *slog.Logger
}

func NewUserHandler(u *usecase.UserUsecase, log *slog.Logger) *UserHandler {
	return &UserHandler{usecase: u, log: log}
}

// Login menerima {email, password} dan mengembalikan {user, token}.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return handler.RespondError(c, h.log, apperror.Validation("Invalid request body"), "")
	}
	if err := input.Validate(); err != nil {
		return handler.RespondError(c, h.log, err, "")
	}

	user, token, err := h.usecase.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return handler.RespondError(c, h.log, err, "Login failed")
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Me mengembalikan profil user pemilik token (diset oleh middleware.Auth).
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id, ok := c.Locals("user_id").(uint)
	if !ok {
		return handler.RespondError(c, h.log, apperror.Unauthorized("Unauthorized"), "")
	}
	user, err := h.usecase.Profile(c.UserContext(), id)
	if err != nil {
		return handler.RespondError(c, h.log, err, "Failed to fetch profile")
	}
	return c.JSON(user)
}
