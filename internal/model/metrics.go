package model

// AggregateMetrics holds the all-time totals shown on the dashboard.
// Derived from the full record set on every interaction, never stored.
type AggregateMetrics struct {
	TotalRecyclingKg float64
	TotalCompostKg   float64
	TotalLandfillKg  float64
	GrandTotalKg     float64
	DivertedKg       float64
	DiversionRatePct float64 // 0 when GrandTotalKg is 0
}

// PeriodRate is one point of the historical diversion-rate series.
// Period is 1-based and follows insertion order, not date order.
type PeriodRate struct {
	Period  int
	RatePct float64
}

// Projection is one forecast point. RatePct is the raw fitted value and is
// deliberately not clamped to [0,100].
type Projection struct {
	Period  int
	RatePct float64
}

// Profile holds the gamification state derived from cumulative diverted mass.
type Profile struct {
	Level           int     // floor(diverted/100) + 1
	ProgressFrac    float64 // progress toward the next level, in [0,1)
	TotalDivertedKg float64
}

// Badge is an achievement earned by strictly exceeding ThresholdKg of
// cumulative diverted mass.
type Badge struct {
	ID          string
	Name        string
	ThresholdKg float64
}

// Composition is the percentage split of the three streams, used by the
// dashboard's composition chart. All zero when nothing is logged.
type Composition struct {
	RecyclingPct float64
	CompostPct   float64
	LandfillPct  float64
}
