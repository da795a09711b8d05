package kas

import "strconv"

// FormatRupiah memformat nominal ke gaya "Rp 20.000".
func FormatRupiah(amount int64) string {
	neg := amount < 0
	digits := strconv.FormatInt(amount, 10)
	if neg {
		digits = digits[1:]
	}

	buf := make([]byte, 0, len(digits)+len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, digits[i])
	}

	if neg {
		return "-Rp " + string(buf)
	}
	return "Rp " + string(buf)
}
