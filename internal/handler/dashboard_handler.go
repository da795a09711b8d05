package handler

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/repository"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
	log  *slog.Logger
	now  func() time.Time
}

func NewDashboardHandler(repo repository.DashboardRepository, log *slog.Logger, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{repo: repo, log: log, now: now}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.GetDashboardStats(c.UserContext(), h.now())
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch dashboard stats")
	}
	return c.JSON(stats)
}
