package metrics

import (
	"math"
	"testing"

	"github.com/theirongolddev/ecotrack/internal/model"
)

func rec(r, c, l float64) model.WasteRecord {
	return model.WasteRecord{RecyclingKg: r, CompostKg: c, LandfillKg: l}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate(t *testing.T) {
	records := []model.WasteRecord{rec(10, 5, 20), rec(0, 0, 0)}
	m := Aggregate(records)

	if m.TotalRecyclingKg != 10 || m.TotalCompostKg != 5 || m.TotalLandfillKg != 20 {
		t.Errorf("totals = (%v, %v, %v), want (10, 5, 20)",
			m.TotalRecyclingKg, m.TotalCompostKg, m.TotalLandfillKg)
	}
	if m.GrandTotalKg != 35 {
		t.Errorf("GrandTotalKg = %v, want 35", m.GrandTotalKg)
	}
	if !almostEqual(m.DiversionRatePct, 100.0*15/35) {
		t.Errorf("DiversionRatePct = %v, want ~42.857", m.DiversionRatePct)
	}
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil)
	if m.GrandTotalKg != 0 {
		t.Errorf("GrandTotalKg = %v, want 0", m.GrandTotalKg)
	}
	if m.DiversionRatePct != 0 {
		t.Errorf("DiversionRatePct = %v, want 0 (no division-by-zero fallout)", m.DiversionRatePct)
	}
}

func TestPeriodRates(t *testing.T) {
	records := []model.WasteRecord{
		rec(10, 10, 20), // 50%
		rec(0, 0, 0),    // zero denominator -> 0
		rec(30, 0, 10),  // 75%
	}

	series := PeriodRates(records)
	if len(series) != 3 {
		t.Fatalf("series len = %d, want 3", len(series))
	}

	want := []model.PeriodRate{{Period: 1, RatePct: 50}, {Period: 2, RatePct: 0}, {Period: 3, RatePct: 75}}
	for i, w := range want {
		if series[i].Period != w.Period || !almostEqual(series[i].RatePct, w.RatePct) {
			t.Errorf("series[%d] = %+v, want %+v", i, series[i], w)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		name         string
		records      []model.WasteRecord
		wantLevel    int
		wantProgress float64
	}{
		{"no data", nil, 1, 0.0},
		{"250 diverted", []model.WasteRecord{rec(200, 50, 0)}, 3, 0.5},
		{"just below a level", []model.WasteRecord{rec(99, 0.5, 100)}, 1, 0.995},
		{"spread across records", []model.WasteRecord{rec(60, 0, 10), rec(0, 60, 5)}, 2, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := LevelProgress(tt.records)
			if p.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", p.Level, tt.wantLevel)
			}
			if !almostEqual(p.ProgressFrac, tt.wantProgress) {
				t.Errorf("ProgressFrac = %v, want %v", p.ProgressFrac, tt.wantProgress)
			}
		})
	}
}

func TestBadges(t *testing.T) {
	tests := []struct {
		name    string
		records []model.WasteRecord
		wantIDs []string
	}{
		{"nothing diverted", nil, nil},
		{"exactly at threshold not earned", []model.WasteRecord{rec(10, 0, 0)}, nil},
		{"150 diverted", []model.WasteRecord{rec(100, 50, 300)}, []string{"beginner", "recycler"}},
		{"all badges", []model.WasteRecord{rec(400, 101, 0)}, []string{"beginner", "recycler", "guardian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earned := Badges(tt.records)
			if len(earned) != len(tt.wantIDs) {
				t.Fatalf("earned %d badges, want %d", len(earned), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if earned[i].ID != id {
					t.Errorf("badge[%d].ID = %q, want %q", i, earned[i].ID, id)
				}
			}
		})
	}
}

func TestComposition(t *testing.T) {
	c := Composition([]model.WasteRecord{rec(25, 25, 50)})
	if !almostEqual(c.RecyclingPct, 25) || !almostEqual(c.CompostPct, 25) || !almostEqual(c.LandfillPct, 50) {
		t.Errorf("Composition = %+v, want (25, 25, 50)", c)
	}

	empty := Composition(nil)
	if empty.RecyclingPct != 0 || empty.CompostPct != 0 || empty.LandfillPct != 0 {
		t.Errorf("empty Composition = %+v, want zeros", empty)
	}
}
