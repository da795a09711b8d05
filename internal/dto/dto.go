// Package dto berisi payload request beserta validasinya.
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"kas-siswa-backend/internal/apperror"
)

var validate = validator.New()

// failedTags mengembalikan tag validator yang gagal, atau error asli jika
// bukan ValidationErrors.
func failedTags(err error) ([]string, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	return tags, nil
}

// requireAll menjalankan validasi struct dan memetakan kegagalan apa pun
// ke satu pesan tetap.
func requireAll(s any, msg string) error {
	if err := validate.Struct(s); err != nil {
		if _, other := failedTags(err); other != nil {
			return other
		}
		return apperror.Validation(msg)
	}
	return nil
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

// ParseTime menerima RFC3339, datetime-local HTML, atau tanggal saja (UTC).
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.Validationf("Invalid date: %q", s)
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
