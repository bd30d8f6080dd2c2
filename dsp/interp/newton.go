package interp

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/poly"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
)

// divDiffPlaces is the rounding applied to every divided difference to keep
// floating noise out of the higher-order coefficients.
const divDiffPlaces = 7

// NewtonCoefficients returns the Newton-form coefficients f[x0], f[x0,x1], ...
// of the interpolation polynomial through points.
func NewtonCoefficients(points []signal.Point) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("interp: newton needs at least 2 points, got %d: %w", len(points), core.ErrInsufficientData)
	}

	xs := signal.Xs(points)
	seen := make(map[float64]struct{}, len(xs))
	for _, x := range xs {
		if _, dup := seen[x]; dup {
			return nil, fmt.Errorf("interp: duplicate knot x=%v: %w", x, core.ErrNumericDegeneracy)
		}
		seen[x] = struct{}{}
	}

	n := len(points)
	fx := signal.Ys(points)
	diff := make([]float64, n)
	diff[0] = fx[0]
	for i := 0; i < n-1; i++ {
		for j := 1; j < n-i; j++ {
			fx[j-1] = core.Round((fx[j]-fx[j-1])/(xs[j+i]-xs[j-1]), divDiffPlaces)
		}
		diff[i+1] = fx[0]
	}
	return diff, nil
}

// NewtonPolynomial returns the interpolation polynomial through points,
// expanded into monomial coefficients.
func NewtonPolynomial(points []signal.Point) (poly.Polynomial, error) {
	diff, err := NewtonCoefficients(points)
	if err != nil {
		return poly.Polynomial{}, err
	}

	result := poly.New(diff[0])
	basis := poly.New(1)
	for k := 1; k < len(diff); k++ {
		basis = basis.Mul(poly.Linear(points[k-1].X))
		result = result.Add(basis.Scale(diff[k]))
	}
	return result, nil
}

// Newton evaluates the interpolation polynomial through points at targets,
// or at the x values of points when no targets are given.
func Newton(points []signal.Point, targets ...float64) ([]signal.Point, error) {
	p, err := NewtonPolynomial(points)
	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		targets = signal.Xs(points)
	}
	return signal.Zip(targets, p.EvalAll(targets)), nil
}
