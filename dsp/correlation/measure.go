package correlation

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-viz/dsp/conv"
	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/decimal"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/montanaflynn/stats"
)

// CrossCorrelate returns the full cross-correlation of the y values of a and
// b. The x of each output point is the lag in samples, from -(len(b)-1) to
// len(a)-1.
func CrossCorrelate(a, b []signal.Point) ([]signal.Point, error) {
	corr, err := conv.Correlate(signal.Ys(a), signal.Ys(b))
	if err != nil {
		return nil, fmt.Errorf("correlation: %w", err)
	}

	out := make([]signal.Point, len(corr))
	for i, v := range corr {
		out[i] = signal.Point{X: float64(conv.LagFromIndex(i, len(b))), Y: v}
	}
	return out, nil
}

// EstimateLag returns the lag in samples at which b best matches a, and the
// correlation value there.
func EstimateLag(a, b []signal.Point) (lag int, peak float64, err error) {
	corr, err := conv.Correlate(signal.Ys(a), signal.Ys(b))
	if err != nil {
		return 0, 0, fmt.Errorf("correlation: %w", err)
	}

	idx, peak := conv.FindPeak(corr)
	return conv.LagFromIndex(idx, len(b)), peak, nil
}

// PeakSimilarity returns the largest value of the cross-correlation of a and
// b after normalising by the product of their L2 norms. 1 means b matches a
// exactly at some lag; signals without energy give 0.
func PeakSimilarity(a, b []signal.Point) (float64, error) {
	corr, err := conv.CorrelateNormalized(signal.Ys(a), signal.Ys(b))
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}

	_, peak := conv.FindPeak(corr)
	return peak, nil
}

// Coefficient returns the Pearson correlation of the y values that a and b
// hold at the same x. x values are matched at the configured x precision.
func Coefficient(a, b []signal.Point, opts ...core.Option) (float64, error) {
	cfg := core.ApplyOptions(opts...)

	byX := make(map[decimal.Fixed]float64, len(b))
	for _, p := range b {
		byX[decimal.FromFloat(p.X, cfg.XPrecision)] = p.Y
	}

	var ya, yb []float64
	for _, p := range a {
		if y, ok := byX[decimal.FromFloat(p.X, cfg.XPrecision)]; ok {
			ya = append(ya, p.Y)
			yb = append(yb, y)
		}
	}
	if len(ya) < 2 {
		return 0, fmt.Errorf("correlation: %d shared x values, need 2: %w", len(ya), core.ErrInsufficientData)
	}

	for _, ys := range [][]float64{ya, yb} {
		sd, err := stats.StandardDeviationPopulation(ys)
		if err != nil {
			return 0, fmt.Errorf("correlation: %w", err)
		}
		if sd == 0 {
			return 0, fmt.Errorf("correlation: constant series: %w", core.ErrNumericDegeneracy)
		}
	}

	r, err := stats.Correlation(ya, yb)
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	return r, nil
}
