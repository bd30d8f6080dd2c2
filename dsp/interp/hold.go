package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/decimal"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
)

// holdNudge shifts zero-order-hold evaluation off the exact sample instants
// so a boundary belongs to exactly one hold interval.
const holdNudge = 0.001

// Hold selects a reconstruction kernel.
type Hold int

const (
	// HoldZeroOrder is the causal rectangular kernel h(τ) = 1 on [0, period].
	HoldZeroOrder Hold = iota
	// HoldFirstOrder is the triangular kernel h(τ) = max(0, 1-|τ|/period).
	HoldFirstOrder
)

func (h Hold) String() string {
	switch h {
	case HoldZeroOrder:
		return "zero-order"
	case HoldFirstOrder:
		return "first-order"
	default:
		return fmt.Sprintf("Hold(%d)", int(h))
	}
}

// ZeroOrderHold estimates the signal at time t as Σ y_i·h(t - x0 - i·period)
// with the rectangular kernel. The result is rounded to precision decimal
// places unless precision is negative. A non-positive period yields 0.
func ZeroOrderHold(samples []signal.Point, period, t float64, precision int) float64 {
	if period <= 0 || len(samples) == 0 {
		return 0
	}

	origin := samples[0].X
	tt := t + holdNudge

	var sum float64
	for i, s := range samples {
		tau := tt - origin - float64(i)*period
		if tau >= 0 && tau <= period {
			sum += s.Y
		}
	}
	return core.Round(sum, precision)
}

// FirstOrderHold estimates the signal at time t with the triangular kernel,
// which linearly interpolates between neighbouring samples.
func FirstOrderHold(samples []signal.Point, period, t float64, precision int) float64 {
	if period <= 0 || len(samples) == 0 {
		return 0
	}

	origin := samples[0].X

	var sum float64
	for i, s := range samples {
		tau := t - origin - float64(i)*period
		if w := 1 - math.Abs(tau)/period; w > 0 {
			sum += s.Y * w
		}
	}
	return core.Round(sum, precision)
}

// Reconstruct evaluates the chosen hold kernel at t = from, from+step, ...
// up to to, stepping exactly at the configured x precision.
func Reconstruct(samples []signal.Point, period, from, to, step float64, hold Hold, opts ...core.Option) ([]signal.Point, error) {
	cfg := core.ApplyOptions(opts...)

	if period <= 0 {
		return nil, fmt.Errorf("interp: period must be > 0: %v: %w", period, core.ErrInvalidArgument)
	}
	st, err := decimal.FromFloatE(step, cfg.XPrecision)
	if err != nil {
		return nil, fmt.Errorf("interp: step: %w", err)
	}
	if st.Sign() <= 0 {
		return nil, fmt.Errorf("interp: step must be > 0: %v: %w", step, core.ErrInvalidArgument)
	}

	var eval func([]signal.Point, float64, float64, int) float64
	switch hold {
	case HoldZeroOrder:
		eval = ZeroOrderHold
	case HoldFirstOrder:
		eval = FirstOrderHold
	default:
		return nil, fmt.Errorf("interp: unknown hold %v: %w", hold, core.ErrInvalidArgument)
	}

	lo, err := decimal.FromFloatE(from, cfg.XPrecision)
	if err != nil {
		return nil, fmt.Errorf("interp: from: %w", err)
	}
	hi, err := decimal.FromFloatE(to, cfg.XPrecision)
	if err != nil {
		return nil, fmt.Errorf("interp: to: %w", err)
	}
	var out []signal.Point
	for x := lo; x.Cmp(hi) <= 0; x = x.Add(st) {
		t := x.Float64()
		out = append(out, signal.Point{X: t, Y: eval(samples, period, t, cfg.YPrecision)})
	}
	return out, nil
}

// ZeroOrderHoldLine returns the staircase polyline of held samples:
// p0, (x1, y0), p1, (x2, y1), p2, ...
func ZeroOrderHoldLine(points []signal.Point) []signal.Point {
	if len(points) == 0 {
		return nil
	}

	out := make([]signal.Point, 0, 2*len(points)-1)
	for i, p := range points {
		out = append(out, p)
		if i+1 < len(points) {
			out = append(out, signal.Point{X: points[i+1].X, Y: p.Y})
		}
	}
	return out
}
