package dto

import (
	"strings"

	"kas-siswa-backend/internal/model"
)

const MsgStudentRequired = "NIS, name, and kelas are required"

type StudentRequest struct {
	NIS   string `json:"nis" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Kelas string `json:"kelas" validate:"required"`
}

func (r *StudentRequest) Normalize() {
	r.NIS = strings.TrimSpace(r.NIS)
	r.Name = strings.TrimSpace(r.Name)
	r.Kelas = strings.TrimSpace(r.Kelas)
}

func (r *StudentRequest) Validate() error {
	r.Normalize()
	return requireAll(r, MsgStudentRequired)
}

// Apply menimpa semua field yang bisa diubah (update penuh).
func (r *StudentRequest) Apply(s *model.Student) {
	s.NIS = r.NIS
	s.Name = r.Name
	s.Kelas = r.Kelas
}
