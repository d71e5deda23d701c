package tui

import (
	"testing"

	"github.com/theirongolddev/ecotrack/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i := 0; i < n; i++ {
			w := components.TabVisualWidth(components.Tabs[i], i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos += 2 // separator
			}
		}
	}
}

func TestTabAtXOutsideBar(t *testing.T) {
	a := App{}
	if got := a.tabAtX(0); got != -1 {
		t.Errorf("tabAtX(0) = %d, want -1 (leading space)", got)
	}
	if got := a.tabAtX(10000); got != -1 {
		t.Errorf("tabAtX(10000) = %d, want -1", got)
	}
}
