package kas

import (
	"time"

	"kas-siswa-backend/internal/model"
)

// PeriodContains: batas awal dan akhir inklusif.
func PeriodContains(p model.KasPeriod, now time.Time) bool {
	return !now.Before(p.StartsAt) && !now.After(p.EndsAt)
}

// CurrentPeriod mencari periode yang sedang berjalan. Jika ada beberapa yang
// overlap, dipilih weekNo terbesar.
func CurrentPeriod(periods []model.KasPeriod, now time.Time) (model.KasPeriod, bool) {
	var (
		current model.KasPeriod
		found   bool
	)
	for _, p := range periods {
		if !PeriodContains(p, now) {
			continue
		}
		if !found || p.WeekNo > current.WeekNo {
			current = p
			found = true
		}
	}
	return current, found
}

// WeekBounds mengembalikan Senin 00:00 sampai Jumat 23:59:59 dari minggu t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Senin = 0
	monday := day.AddDate(0, 0, -offset)
	friday := monday.AddDate(0, 0, 5).Add(-time.Second)
	return monday, friday
}
