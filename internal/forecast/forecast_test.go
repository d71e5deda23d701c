package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/ecotrack/internal/model"
)

func series(rates ...float64) []model.PeriodRate {
	s := make([]model.PeriodRate, len(rates))
	for i, r := range rates {
		s[i] = model.PeriodRate{Period: i + 1, RatePct: r}
	}
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFitExactLine(t *testing.T) {
	line, err := Fit(series(50, 60, 70))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if !almostEqual(line.Slope, 10) {
		t.Errorf("Slope = %v, want 10", line.Slope)
	}
	if !almostEqual(line.Intercept, 40) {
		t.Errorf("Intercept = %v, want 40", line.Intercept)
	}
}

func TestFitAndProject(t *testing.T) {
	projections, err := FitAndProject(series(50, 60, 70), 1)
	if err != nil {
		t.Fatalf("FitAndProject: %v", err)
	}
	if len(projections) != 1 {
		t.Fatalf("projection count = %d, want 1", len(projections))
	}
	if projections[0].Period != 4 {
		t.Errorf("Period = %d, want 4", projections[0].Period)
	}
	if !almostEqual(projections[0].RatePct, 80) {
		t.Errorf("RatePct = %v, want 80", projections[0].RatePct)
	}
}

func TestFitAndProjectHorizon(t *testing.T) {
	projections, err := FitAndProject(series(50, 60, 70), 4)
	if err != nil {
		t.Fatalf("FitAndProject: %v", err)
	}
	if len(projections) != 4 {
		t.Fatalf("projection count = %d, want 4", len(projections))
	}
	for i, want := range []float64{80, 90, 100, 110} {
		if projections[i].Period != 4+i {
			t.Errorf("projection %d Period = %d, want %d", i, projections[i].Period, 4+i)
		}
		if !almostEqual(projections[i].RatePct, want) {
			t.Errorf("projection %d RatePct = %v, want %v", i, projections[i].RatePct, want)
		}
	}
}

func TestProjectionsNotClamped(t *testing.T) {
	// A steep downward trend must be allowed to go negative.
	projections, err := FitAndProject(series(40, 10), 2)
	if err != nil {
		t.Fatalf("FitAndProject: %v", err)
	}
	if !almostEqual(projections[0].RatePct, -20) {
		t.Errorf("first projection = %v, want -20 (no clamping)", projections[0].RatePct)
	}
	if !almostEqual(projections[1].RatePct, -50) {
		t.Errorf("second projection = %v, want -50 (no clamping)", projections[1].RatePct)
	}
}

func TestFitInsufficientData(t *testing.T) {
	for _, s := range [][]model.PeriodRate{nil, series(42)} {
		if _, err := Fit(s); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Fit with %d points err = %v, want ErrInsufficientData", len(s), err)
		}
	}
}

func TestFitDeterministic(t *testing.T) {
	in := series(33.3, 12.5, 78.1, 54.9, 61.2)
	first, err := Fit(in)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Fit(in)
		if err != nil {
			t.Fatalf("Fit (run %d): %v", i, err)
		}
		if again != first {
			t.Fatalf("run %d produced %+v, first run produced %+v", i, again, first)
		}
	}
}

func TestFitTreatsZeroRatesAsObservations(t *testing.T) {
	// Zero-denominator periods arrive as rate 0 and must pull the fit down,
	// not be skipped.
	line, err := Fit(series(0, 100))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if !almostEqual(line.Slope, 100) || !almostEqual(line.Intercept, -100) {
		t.Errorf("line = %+v, want slope 100 intercept -100", line)
	}
}
