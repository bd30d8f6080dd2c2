// Package testutil holds deterministic fixtures shared by package tests.
package testutil

import (
	"math"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Pairs converts [x, y] literals to points.
func Pairs(pairs ...[2]float64) []signal.Point {
	out := make([]signal.Point, len(pairs))
	for i, p := range pairs {
		out[i] = signal.Point{X: p[0], Y: p[1]}
	}
	return out
}

// Ramp returns n points (i*step, i*slope+intercept) for i in [0, n).
func Ramp(n int, step, slope, intercept float64) []signal.Point {
	out := make([]signal.Point, n)
	for i := range out {
		x := core.Round(float64(i)*step, 6)
		out[i] = signal.Point{X: x, Y: x*slope + intercept}
	}
	return out
}

// DeterministicSine samples amplitude*sin(2*pi*freq*x) at n points spaced by step.
func DeterministicSine(freq, amplitude, step float64, n int) []signal.Point {
	out := make([]signal.Point, n)
	for i := range out {
		x := core.Round(float64(i)*step, 6)
		out[i] = signal.Point{X: x, Y: amplitude * math.Sin(2*math.Pi*freq*x)}
	}
	return out
}

// DeterministicNoise returns n points at integer x with y uniform in
// [-amplitude, amplitude], reproducible for a given seed.
func DeterministicNoise(seed uint64, amplitude float64, n int) []signal.Point {
	rng := core.NewRand(seed)
	out := make([]signal.Point, n)
	for i := range out {
		out[i] = signal.Point{X: float64(i), Y: (rng.Float64()*2 - 1) * amplitude}
	}
	return out
}

// Impulse returns n points at integer x with 1 at pos and 0 elsewhere.
func Impulse(n, pos int) []signal.Point {
	out := make([]signal.Point, n)
	for i := range out {
		out[i].X = float64(i)
		if i == pos {
			out[i].Y = 1
		}
	}
	return out
}

// ApproxPoints compares float fields of points within an absolute tolerance.
func ApproxPoints(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}
