package signal

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
)

// Samples samples sig ideally at samplingRate ticks per unit of x.
//
// Ticks run t = xMin, xMin+1/samplingRate, ... up to xMax of the signal's
// domain, stepped exactly at the signal's x precision. Each tick yields the y
// of the point stored exactly at t, or 0 when there is none, so the result has
// one sample per tick regardless of how sparse the source is. An empty signal
// yields no samples.
func Samples(samplingRate float64, sig *Signal) ([]Point, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("signal: sampling rate must be > 0: %v: %w", samplingRate, core.ErrInvalidArgument)
	}
	if sig == nil || sig.Len() == 0 {
		return nil, nil
	}

	step, err := sig.fixedE(1 / samplingRate)
	if err != nil {
		return nil, fmt.Errorf("signal: sampling period 1/%v: %w", samplingRate, err)
	}
	if step.Sign() <= 0 {
		return nil, fmt.Errorf("signal: sampling period 1/%v rounds to zero at %d places: %w",
			samplingRate, sig.cfg.XPrecision, core.ErrInvalidArgument)
	}

	var out []Point
	for t := sig.xMin; t.Cmp(sig.xMax) <= 0; t = t.Add(step) {
		y := 0.0
		if i, ok := sig.search(t); ok {
			y = sig.values[i].y
		}
		out = append(out, Point{X: t.Float64(), Y: y})
	}
	return out, nil
}
