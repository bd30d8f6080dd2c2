// Package regression fits least-squares polynomials to point sequences.
//
// The fit of degree level solves the normal equations A·c = b with
//
//	A[i][j] = Σ x^(i+j)   (A[0][0] = number of points)
//	b[j]    = Σ y·x^j
//
// for i, j in [0, level]. A singular or ill-conditioned system, for example
// from duplicate x values or a degree at or above the number of distinct
// points, is reported as [core.ErrNumericDegeneracy] rather than returning
// meaningless coefficients.
package regression

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/poly"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"gonum.org/v1/gonum/mat"
)

// minPoints is the fewest points ApproximationPolynomial accepts.
const minPoints = 2

// Coefs returns the least-squares coefficients [c0..c_level] for points.
func Coefs(points []signal.Point, level int) ([]float64, error) {
	if level < 1 {
		return nil, fmt.Errorf("regression: level must be >= 1: %d: %w", level, core.ErrInvalidArgument)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("regression: no points: %w", core.ErrInsufficientData)
	}

	n := level + 1
	moments := make([]float64, 2*level+1)
	rhs := make([]float64, n)
	for _, p := range points {
		xk := 1.0
		for k := range moments {
			moments[k] += xk
			if k < n {
				rhs[k] += p.Y * xk
			}
			xk *= p.X
		}
	}
	moments[0] = float64(len(points))

	a := mat.NewDense(n, n, nil)
	for i := range n {
		for j := range n {
			a.Set(i, j, moments[i+j])
		}
	}

	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(n, rhs)); err != nil {
		return nil, fmt.Errorf("regression: level %d normal equations: %w: %v", level, core.ErrNumericDegeneracy, err)
	}

	out := make([]float64, n)
	for i := range out {
		v := c.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("regression: level %d coefficient %d is %v: %w", level, i, v, core.ErrNumericDegeneracy)
		}
		out[i] = v
	}
	return out, nil
}

// ApproximationPolynomial returns the fitted polynomial of degree level.
func ApproximationPolynomial(points []signal.Point, level int) (poly.Polynomial, error) {
	if len(points) < minPoints {
		return poly.Polynomial{}, fmt.Errorf("regression: need at least %d points, got %d: %w",
			minPoints, len(points), core.ErrInsufficientData)
	}

	c, err := Coefs(points, level)
	if err != nil {
		return poly.Polynomial{}, err
	}
	return poly.New(c...), nil
}

// PolynomialApproximation evaluates the fit at targets, or at the x values of
// points when no targets are given.
func PolynomialApproximation(points []signal.Point, level int, targets ...float64) ([]signal.Point, error) {
	p, err := ApproximationPolynomial(points, level)
	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		targets = signal.Xs(points)
	}
	return signal.Zip(targets, p.EvalAll(targets)), nil
}

// LeastSquaresSum returns Σ (y - fit(x))² of the degree-level fit.
func LeastSquaresSum(points []signal.Point, level int) (float64, error) {
	p, err := ApproximationPolynomial(points, level)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, pt := range points {
		r := pt.Y - p.Eval(pt.X)
		sum += r * r
	}
	return sum, nil
}

// BestLevel fits every level in [1, maxLevel] and returns the lowest level
// whose residual sum is not beaten by a higher one. Degenerate levels are
// skipped; if all are degenerate the last error is returned.
func BestLevel(points []signal.Point, maxLevel int) (level int, sum float64, err error) {
	if maxLevel < 1 {
		return 0, 0, fmt.Errorf("regression: max level must be >= 1: %d: %w", maxLevel, core.ErrInvalidArgument)
	}

	const relTol = 1e-9

	var lastErr error
	for l := 1; l <= maxLevel; l++ {
		s, e := LeastSquaresSum(points, l)
		if e != nil {
			lastErr = e
			continue
		}
		if level == 0 || (s < sum && !core.NearlyEqual(s, sum, relTol)) {
			level, sum = l, s
		}
	}

	if level == 0 {
		return 0, 0, lastErr
	}
	return level, sum, nil
}
