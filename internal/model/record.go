// Package model defines domain types for ecotrack records and derived metrics.
package model

import "time"

// WasteRecord is one logged entry: how many kilograms went into each stream
// on a given day. Records are immutable once created; the dataset only grows
// by appending.
type WasteRecord struct {
	Date        time.Time
	RecyclingKg float64
	CompostKg   float64
	LandfillKg  float64
}

// DivertedKg returns the mass kept out of landfill for this record.
func (r WasteRecord) DivertedKg() float64 {
	return r.RecyclingKg + r.CompostKg
}

// TotalKg returns the full logged mass for this record.
func (r WasteRecord) TotalKg() float64 {
	return r.RecyclingKg + r.CompostKg + r.LandfillKg
}

// RatePct returns this record's diversion rate as a percentage.
// A record with nothing logged rates 0 rather than NaN.
func (r WasteRecord) RatePct() float64 {
	total := r.TotalKg()
	if total <= 0 {
		return 0
	}
	return r.DivertedKg() / total * 100
}
