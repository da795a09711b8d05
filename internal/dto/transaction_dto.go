package dto

import (
	"slices"
	"strings"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/model"
)

const (
	MsgTransactionRequired = "Kind, category, and amount are required"
	MsgTransactionKind     = "Kind must be either income or expense"
)

type TransactionRequest struct {
	Kind        string  `json:"kind" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
	Description *string `json:"description"`
	Amount      int64   `json:"amount" validate:"required,gt=0"`
	StudentID   *uint   `json:"studentId"`
}

func (r *TransactionRequest) Normalize() {
	r.Kind = strings.TrimSpace(r.Kind)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = trimPtr(r.Description)
	if r.StudentID != nil && *r.StudentID == 0 {
		r.StudentID = nil
	}
}

// Validate: field kosong dilaporkan lebih dulu, baru kind yang tidak dikenal.
func (r *TransactionRequest) Validate() error {
	r.Normalize()
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	tags, other := failedTags(err)
	if other != nil {
		return other
	}
	if slices.ContainsFunc(tags, func(tag string) bool { return tag != "oneof" }) {
		return apperror.Validation(MsgTransactionRequired)
	}
	return apperror.Validation(MsgTransactionKind)
}

func (r *TransactionRequest) Apply(t *model.Transaction) {
	t.Kind = model.TransactionKind(r.Kind)
	t.Category = r.Category
	t.Description = r.Description
	t.Amount = r.Amount
	t.StudentID = r.StudentID
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

const MsgLoginRequired = "Email and password are required"

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return requireAll(r, MsgLoginRequired)
}
