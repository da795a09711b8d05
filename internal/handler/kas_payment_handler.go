package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/dto"
	"kas-siswa-backend/internal/repository"
	"kas-siswa-backend/internal/usecase"
)

type KasPaymentHandler struct {
	repo repository.KasPaymentRepository
	kas  *usecase.KasUsecase
	log  *slog.Logger
}

func NewKasPaymentHandler(repo repository.KasPaymentRepository, kas *usecase.KasUsecase, log *slog.Logger) *KasPaymentHandler {
	return &KasPaymentHandler{repo: repo, kas: kas, log: log}
}

// GetAll mendukung filter ?periodId=.
func (h *KasPaymentHandler) GetAll(c *fiber.Ctx) error {
	periodID := c.QueryInt("periodId", 0)
	if periodID < 0 {
		return RespondError(c, h.log, apperror.Validation("Invalid periodId"), "")
	}
	payments, err := h.repo.GetAll(c.UserContext(), uint(periodID))
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch kas payments")
	}
	return c.JSON(payments)
}

func (h *KasPaymentHandler) Create(c *fiber.Ctx) error {
	var req dto.KasPaymentRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}
	payment, err := h.kas.RecordPayment(c.UserContext(), req)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to create kas payment")
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}
