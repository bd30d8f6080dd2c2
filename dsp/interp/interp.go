package interp

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
)

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Upsample inserts factor-1 cubic Hermite points between each pair of
// uniformly spaced samples. Edge neighbours are clamped to the first and last
// sample. The result has (len(samples)-1)*factor+1 points.
func Upsample(samples []signal.Point, factor int) ([]signal.Point, error) {
	if factor < 1 {
		return nil, fmt.Errorf("interp: upsample factor must be >= 1: %d: %w", factor, core.ErrInvalidArgument)
	}
	if len(samples) < 2 {
		return nil, fmt.Errorf("interp: upsample needs at least 2 samples, got %d: %w", len(samples), core.ErrInsufficientData)
	}

	at := func(i int) float64 {
		return samples[min(max(i, 0), len(samples)-1)].Y
	}

	out := make([]signal.Point, 0, (len(samples)-1)*factor+1)
	for i := 0; i < len(samples)-1; i++ {
		x0, x1 := samples[i].X, samples[i+1].X
		for k := range factor {
			frac := float64(k) / float64(factor)
			out = append(out, signal.Point{
				X: x0 + frac*(x1-x0),
				Y: Hermite4(frac, at(i-1), at(i), at(i+1), at(i+2)),
			})
		}
	}
	return append(out, samples[len(samples)-1]), nil
}
