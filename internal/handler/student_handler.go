package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/dto"
	"kas-siswa-backend/internal/model"
	"kas-siswa-backend/internal/repository"
)

const msgNISExists = "NIS already exists"

type StudentHandler struct {
	repo repository.StudentRepository
	log  *slog.Logger
}

func NewStudentHandler(repo repository.StudentRepository, log *slog.Logger) *StudentHandler {
	return &StudentHandler{repo: repo, log: log}
}

func (h *StudentHandler) GetAll(c *fiber.Ctx) error {
	students, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return RespondError(c, h.log, err, "Failed to fetch students")
	}
	return c.JSON(students)
}

func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	student, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Student not found"), "Failed to fetch student")
	}
	return c.JSON(student)
}

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := req.Validate(); err != nil {
		return RespondError(c, h.log, err, "Failed to create student")
	}

	// Cek NIS sudah dipakai
	exists, err := h.repo.NISExists(c.UserContext(), req.NIS, 0)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to create student")
	}
	if exists {
		return RespondError(c, h.log, apperror.Conflict(msgNISExists), "")
	}

	var student model.Student
	req.Apply(&student)
	if err := h.repo.Create(c.UserContext(), &student); err != nil {
		return RespondError(c, h.log, duplicateAs(err, msgNISExists), "Failed to create student")
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	var req dto.StudentRequest
	if err := parseBody(c, &req); err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := req.Validate(); err != nil {
		return RespondError(c, h.log, err, "Failed to update student")
	}

	student, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Student not found"), "Failed to update student")
	}

	// NIS boleh sama dengan milik sendiri
	exists, err := h.repo.NISExists(c.UserContext(), req.NIS, id)
	if err != nil {
		return RespondError(c, h.log, err, "Failed to update student")
	}
	if exists {
		return RespondError(c, h.log, apperror.Conflict(msgNISExists), "")
	}

	req.Apply(student)
	if err := h.repo.Update(c.UserContext(), student); err != nil {
		return RespondError(c, h.log, duplicateAs(err, msgNISExists), "Failed to update student")
	}
	return c.JSON(student)
}

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return RespondError(c, h.log, err, "")
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		return RespondError(c, h.log, notFoundAs(err, "Student not found"), "Failed to delete student")
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
