// Package poly provides a dense univariate polynomial with float64
// coefficients in ascending power order.
//
// Polynomials are values: every operation returns a new Polynomial and never
// modifies its receiver. Coefficients that are themselves polynomials (as
// produced while staging a Newton product) are accepted by [FromTerms] and
// flattened immediately, so evaluation is always a plain Horner loop.
package poly

import (
	"strconv"
	"strings"
)

// Polynomial is p(x) = c0 + c1*x + ... + cn*x^n.
type Polynomial struct {
	coeffs []float64
}

// Term is a coefficient that is either a [Scalar] or a nested [Polynomial].
type Term interface {
	asPolynomial() Polynomial
}

// Scalar is a plain numeric coefficient.
type Scalar float64

func (s Scalar) asPolynomial() Polynomial { return New(float64(s)) }

func (p Polynomial) asPolynomial() Polynomial { return p }

// New returns the polynomial with the given coefficients, lowest power first.
func New(coeffs ...float64) Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// FromTerms builds Σ terms[i]·x^i, flattening nested polynomial terms.
func FromTerms(terms ...Term) Polynomial {
	out := Polynomial{}
	for i, term := range terms {
		if term == nil {
			continue
		}
		out = out.Add(term.asPolynomial().Shift(i))
	}
	return out
}

// Linear returns the polynomial x - root.
func Linear(root float64) Polynomial {
	return New(-root, 1)
}

// Coeffs returns a copy of the coefficients.
func (p Polynomial) Coeffs() []float64 {
	return New(p.coeffs...).coeffs
}

// Len returns the number of stored coefficients.
func (p Polynomial) Len() int { return len(p.coeffs) }

// Degree returns Len()-1; the zero polynomial with no coefficients has degree -1.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of x^i, or 0 when i is out of range.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Eval evaluates p at x with Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	if len(p.coeffs) == 0 {
		return 0
	}

	v := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		v = v*x + p.coeffs[i]
	}
	return v
}

// EvalAll evaluates p at every x in xs.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}
	return out
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Coeff(i) + q.Coeff(i)
	}
	return Polynomial{coeffs: out}
}

// Scale returns k·p.
func (p Polynomial) Scale(k float64) Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * k
	}
	return Polynomial{coeffs: out}
}

// Mul returns p·q. The product of a polynomial with an empty one is empty.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{}
	}

	out := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}
	return Polynomial{coeffs: out}
}

// Shift returns p·x^k for k >= 0.
func (p Polynomial) Shift(k int) Polynomial {
	if k <= 0 || len(p.coeffs) == 0 {
		return New(p.coeffs...)
	}
	out := make([]float64, len(p.coeffs)+k)
	copy(out[k:], p.coeffs)
	return Polynomial{coeffs: out}
}

// Trim drops trailing zero coefficients.
func (p Polynomial) Trim() Polynomial {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1] == 0 {
		n--
	}
	return New(p.coeffs[:n]...)
}

// String formats p as "c0 + c1*x + c2*x^2", skipping zero terms.
func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.coeffs {
		if c == 0 && len(p.coeffs) > 1 {
			continue
		}
		if b.Len() > 0 {
			if c < 0 {
				b.WriteString(" - ")
				c = -c
			} else {
				b.WriteString(" + ")
			}
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		switch i {
		case 0:
		case 1:
			b.WriteString("*x")
		default:
			b.WriteString("*x^")
			b.WriteString(strconv.Itoa(i))
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
