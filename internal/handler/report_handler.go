package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/repository"
)

const recentTransactions = 10

type ReportHandler struct {
	repo repository.DashboardRepository
	log  *slog.Logger
}

func NewReportHandler(repo repository.DashboardRepository, log *slog.Logger) *ReportHandler {
	return &ReportHandler{repo: repo, log: log}
}

// GetSummary menyediakan data halaman laporan: total, per minggu, per kategori,
// dan transaksi terbaru (?recent=, default 10).
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	limit := c.QueryInt("recent", recentTransactions)
	if limit <= 0 {
		limit = recentTransactions
	}
	report, err := h.repo.GetReportSummary(c.UserContext(), limit)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch report summary")
	}
	return c.JSON(report)
}
