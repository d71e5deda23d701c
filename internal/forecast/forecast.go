// Package forecast fits a trend line to the historical diversion-rate
// series and projects it forward. The fit is a closed-form ordinary least
// squares regression, so identical input always yields identical output.
//
// Projected rates are not clamped to [0,100]: the trend line is shown raw,
// matching the dashboard's illustrative (not production-grade) forecasting.
package forecast

import (
	"errors"

	"github.com/theirongolddev/ecotrack/internal/model"
)

// ErrInsufficientData is returned when the series has fewer than two points.
// Callers check it with errors.Is to render a "need more data" message
// instead of a generic failure.
var ErrInsufficientData = errors.New("need at least 2 data points to forecast")

// DefaultHorizon is the number of future periods projected by default.
const DefaultHorizon = 4

// Line is a fitted trend: rate = Slope*period + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// Fit computes the least-squares line through the (period, rate) pairs.
func Fit(series []model.PeriodRate) (Line, error) {
	n := float64(len(series))
	if n < 2 {
		return Line{}, ErrInsufficientData
	}

	var sumX, sumY, sumXY, sumXX float64
	for _, p := range series {
		x := float64(p.Period)
		sumX += x
		sumY += p.RatePct
		sumXY += x * p.RatePct
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All periods identical; cannot happen with 1-based indices from
		// the metrics engine, but degenerate input gets a flat line.
		return Line{Intercept: sumY / n}, nil
	}

	slope := (n*sumXY - sumX*sumY) / denom
	return Line{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / n,
	}, nil
}

// At evaluates the fitted line at the given period.
func (l Line) At(period int) float64 {
	return l.Slope*float64(period) + l.Intercept
}

// Project evaluates the line at periods from+1 through from+horizon.
func (l Line) Project(from, horizon int) []model.Projection {
	if horizon <= 0 {
		return nil
	}
	out := make([]model.Projection, horizon)
	for i := range out {
		period := from + i + 1
		out[i] = model.Projection{Period: period, RatePct: l.At(period)}
	}
	return out
}

// FitAndProject fits the series and projects horizon periods past its last
// observed period.
func FitAndProject(series []model.PeriodRate, horizon int) ([]model.Projection, error) {
	line, err := Fit(series)
	if err != nil {
		return nil, err
	}

	last := 0
	for _, p := range series {
		if p.Period > last {
			last = p.Period
		}
	}
	return line.Project(last, horizon), nil
}
