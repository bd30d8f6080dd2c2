package conv

import (
	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/decimal"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-vecmath"
)

// Convolution returns y[n] = Σ_k input[k]·kernel[n-k] for
// n in [0, len(input)+len(kernel)-1), always by direct summation. Terms
// outside either sequence are dropped. The x of each output point is its
// index n; the x values of the inputs are not read.
func Convolution(input, kernel []signal.Point) ([]signal.Point, error) {
	ys, err := Direct(signal.Ys(input), signal.Ys(kernel))
	if err != nil {
		return nil, err
	}

	out := make([]signal.Point, len(ys))
	for n, y := range ys {
		out[n] = signal.Point{X: float64(n), Y: y}
	}
	return out, nil
}

// ConvolutionStep pairs every kernel point with the point of timeReversed
// at the same x and returns their products at the kernel's x. Kernel points
// without a partner produce 0. x values are matched at the configured x
// precision.
func ConvolutionStep(timeReversed, kernel []signal.Point, opts ...core.Option) []signal.Point {
	if len(kernel) == 0 {
		return nil
	}
	cfg := core.ApplyOptions(opts...)

	byX := make(map[decimal.Fixed]float64, len(timeReversed))
	for _, p := range timeReversed {
		byX[decimal.FromFloat(p.X, cfg.XPrecision)] = p.Y
	}

	partner := make([]float64, len(kernel))
	for i, p := range kernel {
		partner[i] = byX[decimal.FromFloat(p.X, cfg.XPrecision)]
	}

	products := make([]float64, len(kernel))
	vecmath.MulBlock(products, signal.Ys(kernel), partner)
	return signal.Zip(signal.Xs(kernel), products)
}
