package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/ecotrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("compost-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))

	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want tallest card height %d", len(lines), tallLines)
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total int
		n     int
	}{
		{80, 3},
		{81, 3},
		{82, 3},
		{100, 4},
		{7, 2},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Errorf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
			continue
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d, want %d", tt.total, tt.n, sum, tt.total)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('d'); got != 0 {
		t.Errorf("TabIdxByKey('d') = %d, want 0", got)
	}
	if got := TabIdxByKey('x'); got != len(Tabs)-1 {
		t.Errorf("TabIdxByKey('x') = %d, want %d", got, len(Tabs)-1)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
