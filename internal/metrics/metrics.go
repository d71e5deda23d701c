// Package metrics computes derived statistics from the waste log. Every
// function is a pure function of the record slice it receives: no caching,
// no hidden state, always-fresh results.
package metrics

import (
	"math"

	"github.com/theirongolddev/ecotrack/internal/model"
)

// kg of diverted mass per gamification level.
const kgPerLevel = 100

// TargetRatePct is the diversion-rate target the dashboard compares against.
const TargetRatePct = 50.0

// AllBadges lists every earnable badge in ascending threshold order.
var AllBadges = []model.Badge{
	{ID: "beginner", Name: "The Beginner (Saved 10kg)", ThresholdKg: 10},
	{ID: "recycler", Name: "The Recycler (Saved 100kg)", ThresholdKg: 100},
	{ID: "guardian", Name: "The Guardian (Saved 500kg)", ThresholdKg: 500},
}

// Aggregate sums the three streams across all records and computes the
// overall diversion rate, guarding the empty dataset to a 0 rate.
func Aggregate(records []model.WasteRecord) model.AggregateMetrics {
	var m model.AggregateMetrics
	for _, r := range records {
		m.TotalRecyclingKg += r.RecyclingKg
		m.TotalCompostKg += r.CompostKg
		m.TotalLandfillKg += r.LandfillKg
	}

	m.DivertedKg = m.TotalRecyclingKg + m.TotalCompostKg
	m.GrandTotalKg = m.DivertedKg + m.TotalLandfillKg
	if m.GrandTotalKg > 0 {
		m.DiversionRatePct = m.DivertedKg / m.GrandTotalKg * 100
	}
	return m
}

// PeriodRates assigns each record a 1-based period index in insertion order
// and computes its diversion rate, with zero denominators guarded to 0.
func PeriodRates(records []model.WasteRecord) []model.PeriodRate {
	series := make([]model.PeriodRate, len(records))
	for i, r := range records {
		series[i] = model.PeriodRate{Period: i + 1, RatePct: r.RatePct()}
	}
	return series
}

// LevelProgress derives the gamification profile from cumulative diverted
// mass: 100 kg per level, starting at level 1.
func LevelProgress(records []model.WasteRecord) model.Profile {
	var diverted float64
	for _, r := range records {
		diverted += r.DivertedKg()
	}

	return model.Profile{
		Level:           int(diverted/kgPerLevel) + 1,
		ProgressFrac:    math.Mod(diverted, kgPerLevel) / kgPerLevel,
		TotalDivertedKg: diverted,
	}
}

// Badges returns the earned badges in threshold order. Thresholds are
// strict: exactly 10 kg diverted does not earn the 10 kg badge.
func Badges(records []model.WasteRecord) []model.Badge {
	diverted := LevelProgress(records).TotalDivertedKg

	var earned []model.Badge
	for _, b := range AllBadges {
		if diverted > b.ThresholdKg {
			earned = append(earned, b)
		}
	}
	return earned
}

// Composition splits the grand total into per-stream percentages for the
// composition chart. All zero when nothing is logged.
func Composition(records []model.WasteRecord) model.Composition {
	m := Aggregate(records)
	if m.GrandTotalKg <= 0 {
		return model.Composition{}
	}
	return model.Composition{
		RecyclingPct: m.TotalRecyclingKg / m.GrandTotalKg * 100,
		CompostPct:   m.TotalCompostKg / m.GrandTotalKg * 100,
		LandfillPct:  m.TotalLandfillKg / m.GrandTotalKg * 100,
	}
}
