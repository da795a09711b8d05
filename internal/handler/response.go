package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kas-siswa-backend/internal/apperror"
)

const (
	msgInvalidBody = "Invalid request body"
	msgInvalidID   = "Invalid id"
)

// RespondError memetakan error ke status HTTP. Error tak terduga dicatat di
// log dan client hanya menerima pesan fallback.
func RespondError(c *fiber.Ctx, log *slog.Logger, err error, fallback string) error {
	var status int
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperror.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	default:
		log.Error(fallback,
			"error", err,
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals("reqid"),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}

	msg, _ := apperror.Message(err)
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// notFoundAs mengubah gorm.ErrRecordNotFound menjadi not-found dengan pesan.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(msg)
	}
	return err
}

// paramID membaca :id dan menolak nilai bukan bilangan positif.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperror.Validation(msgInvalidID)
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation(msgInvalidBody)
	}
	return nil
}

// duplicateAs menangkap pelanggaran unique index yang lolos dari pengecekan awal.
func duplicateAs(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict(msg)
	}
	return err
}
