package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSecondsToDuration merender hasil decode (detik) menjadi H:MM:SS.
func FormatSecondsToDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// FormatDurationDisplay menormalkan durasi tersimpan ke H:MM:SS.
// Recording lama menyimpan M:SS (menitnya bisa lebih dari 59); format baru
// yang sudah tiga bagian lolos tanpa perubahan. Nilai yang tidak bisa
// diparse jadi 0:00:00.
func FormatDurationDisplay(duration string) string {
	if duration == "" {
		return "0:00:00"
	}

	parts := strings.Split(duration, ":")

	if len(parts) == 3 {
		return duration
	}

	if len(parts) == 2 {
		totalMins, _ := strconv.Atoi(parts[0])
		secs, _ := strconv.Atoi(parts[1])
		h := totalMins / 60
		m := totalMins % 60
		return fmt.Sprintf("%d:%02d:%02d", h, m, secs)
	}

	return "0:00:00"
}
