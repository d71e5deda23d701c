package cli

import (
	"testing"
	"time"
)

func TestFormatKg(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 kg"},
		{35, "35 kg"},
		{12.5, "12.5 kg"},
		{99.9, "99.9 kg"},
		{1234.56, "1,235 kg"},
	}
	for _, tt := range tests {
		if got := FormatKg(tt.in); got != tt.want {
			t.Errorf("FormatKg(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(100.0 * 15 / 35); got != "42.9%" {
		t.Errorf("FormatRate = %q, want 42.9%%", got)
	}
}

func TestFormatDeltaPP(t *testing.T) {
	if got := FormatDeltaPP(42.9, 50); got != "-7.1pp" {
		t.Errorf("FormatDeltaPP(42.9, 50) = %q, want -7.1pp", got)
	}
	if got := FormatDeltaPP(62.5, 50); got != "+12.5pp" {
		t.Errorf("FormatDeltaPP(62.5, 50) = %q, want +12.5pp", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 3, 15, 23, 59, 0, 0, time.Local)
	if got := FormatDate(d); got != "2025-03-15" {
		t.Errorf("FormatDate = %q, want 2025-03-15", got)
	}
}
