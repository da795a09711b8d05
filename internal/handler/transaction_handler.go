package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/dto"
	"kas-siswa-backend/internal/model"
	"kas-siswa-backend/internal/repository"
)

type TransactionHandler struct {
	repo     repository.TransactionRepository
	students repository.StudentRepository
	log      *slog.Logger
}

func NewTransactionHandler(repo repository.TransactionRepository, students repository.StudentRepository, log *slog.Logger) *TransactionHandler {
	return &TransactionHandler{repo: repo, students: students, log: log}
}

// GetAll mendukung filter ?kind=income|expense.
func (h *TransactionHandler) GetAll(c *fiber.Ctx) error {
	kind := model.TransactionKind(c.Query("kind"))
	if kind != "" && !kind.Valid() {
		return RespondError(c, h.log, apperror.Validation(dto.MsgTransactionKind), "")
	}
	txs, err := h.repo.GetAll(c.UserContext(), kind)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch transactions")
	}
	return c.JSON(txs)
}

func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	t, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Transaction not found"), "Failed to fetch transaction")
	}
	return c.JSON(t)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req dto.TransactionRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := req.Validate(); err != nil {
		return RespondError(c, h.log, err, "Failed to create transaction")
	}
	if err := h.checkStudent(c, req.StudentID); err != nil {
		return RespondError(c, h.log, err, "Failed to create transaction")
	}

	var t model.Transaction
	req.Apply(&t)
	if err := h.repo.Create(c.UserContext(), &t); err != nil {
		return RespondError(c, h.log, err, "Failed to create transaction")
	}

	// Ambil ulang agar data siswa ikut ter-preload
	created, err := h.repo.GetByID(c.UserContext(), t.ID)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to create transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	var req dto.TransactionRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := req.Validate(); err != nil {
		return RespondError(c, h.log, err, "Failed to update transaction")
	}

	t, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Transaction not found"), "Failed to update transaction")
	}
	if err := h.checkStudent(c, req.StudentID); err != nil {
		return RespondError(c, h.log, err, "Failed to update transaction")
	}

	req.Apply(t)
	t.Student = nil
	if err := h.repo.Update(c.UserContext(), t); err != nil {
		return RespondError(c, h.log, err, "Failed to update transaction")
	}

	updated, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to update transaction")
	}
	return c.JSON(updated)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Transaction not found"), "Failed to delete transaction")
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted successfully"})
}

func (h *TransactionHandler) checkStudent(c *fiber.Ctx, id *uint) error {
	if id == nil {
		return nil
	}
	_, err := h.students.GetByID(c.UserContext(), *id)
	return notFoundAs(err, "Student not found")
}
