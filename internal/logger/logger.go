// Package logger menyiapkan slog untuk aplikasi dan adapter logger GORM.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New membuat logger teks ke stdout dengan level tertentu.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard dipakai di test.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
