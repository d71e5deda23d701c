// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatKg formats a mass in kilograms, dropping the fraction when whole.
// e.g., 35 -> "35 kg", 12.5 -> "12.5 kg", 1234.56 -> "1,235 kg"
func FormatKg(kg float64) string {
	var num string
	switch {
	case math.Abs(kg) >= 1000:
		num = FormatNumber(int64(math.Round(kg)))
	case kg == math.Trunc(kg):
		num = strconv.FormatFloat(kg, 'f', 0, 64)
	default:
		num = strconv.FormatFloat(kg, 'f', 1, 64)
	}
	return num + " kg"
}

// FormatRate formats a diversion rate given as a percentage value.
// e.g., 42.857 -> "42.9%"
func FormatRate(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDeltaPP formats a percentage-point delta with an explicit sign.
func FormatDeltaPP(currentPct, targetPct float64) string {
	return fmt.Sprintf("%+.1fpp", currentPct-targetPct)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDate renders a record date the way the log file stores it.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
