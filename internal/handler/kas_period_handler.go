package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/dto"
	"kas-siswa-backend/internal/repository"
	"kas-siswa-backend/internal/usecase"
)

const msgWeekExists = "Week number already exists"

type KasPeriodHandler struct {
	repo repository.KasPeriodRepository
	kas  *usecase.KasUsecase
	log  *slog.Logger
}

func NewKasPeriodHandler(repo repository.KasPeriodRepository, kas *usecase.KasUsecase, log *slog.Logger) *KasPeriodHandler {
	return &KasPeriodHandler{repo: repo, kas: kas, log: log}
}

func (h *KasPeriodHandler) GetAll(c *fiber.Ctx) error {
	periods, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch kas periods")
	}
	return c.JSON(periods)
}

func (h *KasPeriodHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	period, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Kas period not found"), "Failed to fetch kas period")
	}
	return c.JSON(period)
}

func (h *KasPeriodHandler) Create(c *fiber.Ctx) error {
	var req dto.KasPeriodRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}
	period, err := req.ToModel()
	if err != nil {
		return RespondError(c, h.log, err, "Failed to create kas period")
	}

	// Cek nomor minggu sudah ada
	exists, err := h.repo.WeekNoExists(c.UserContext(), period.WeekNo, 0)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to create kas period")
	}
	if exists {
		return RespondError(c, h.log, apperror.Conflict(msgWeekExists), "")
	}

	if err := h.repo.Create(c.UserContext(), &period); err != nil {
		return RespondError(c, h.log, duplicateAs(err, msgWeekExists), "Failed to create kas period")
	}
	return c.Status(fiber.StatusCreated).JSON(period)
}

func (h *KasPeriodHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	var req dto.KasPeriodRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}

	period, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Kas period not found"), "Failed to update kas period")
	}
	if err := req.Apply(period); err != nil {
		return RespondError(c, h.log, err, "Failed to update kas period")
	}

	exists, err := h.repo.WeekNoExists(c.UserContext(), period.WeekNo, id)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to update kas period")
	}
	if exists {
		return RespondError(c, h.log, apperror.Conflict(msgWeekExists), "")
	}

	if err := h.repo.Update(c.UserContext(), period); err != nil {
		return RespondError(c, h.log, duplicateAs(err, msgWeekExists), "Failed to update kas period")
	}
	return c.JSON(period)
}

func (h *KasPeriodHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Kas period not found"), "Failed to delete kas period")
	}
	return c.JSON(fiber.Map{"message": "Kas period deleted successfully"})
}

// Payments mengembalikan roster siswa beserta status bayar pada periode ini.
func (h *KasPeriodHandler) Payments(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	items, err := h.kas.PeriodPayments(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch payment items")
	}
	return c.JSON(items)
}

func (h *KasPeriodHandler) Summary(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	summary, err := h.kas.PeriodSummary(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch period summary")
	}
	return c.JSON(summary)
}
