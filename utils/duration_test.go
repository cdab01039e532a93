package utils

import "testing"

func TestFormatDurationDisplay(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     string
	}{
		{"kosong", "", "0:00:00"},
		{"sudah H:MM:SS", "1:15:03", "1:15:03"},
		{"H:MM:SS tidak berubah", "0:05:30", "0:05:30"},
		{"format lama M:SS", "5:30", "0:05:30"},
		{"format lama menit > 59", "75:03", "1:15:03"},
		{"format lama tepat satu jam", "60:00", "1:00:00"},
		{"tidak bisa diparse", "abc", "0:00:00"},
		{"satu bagian", "75", "0:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDurationDisplay(tt.duration); got != tt.want {
				t.Errorf("FormatDurationDisplay(%q) = %q, harusnya %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestFormatDurationDisplayIdempotent(t *testing.T) {
	inputs := []string{"", "1:15:03", "75:03", "5:30", "abc"}
	for _, in := range inputs {
		once := FormatDurationDisplay(in)
		twice := FormatDurationDisplay(once)
		if once != twice {
			t.Errorf("FormatDurationDisplay tidak idempoten untuk %q: %q != %q", in, once, twice)
		}
	}
}

func TestFormatSecondsToDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{75, "0:01:15"},
		{3599, "0:59:59"},
		{3723.9, "1:02:03"},
		{7265, "2:01:05"},
	}
	for _, tt := range tests {
		if got := FormatSecondsToDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatSecondsToDuration(%v) = %q, harusnya %q", tt.seconds, got, tt.want)
		}
	}
}
