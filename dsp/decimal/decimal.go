// Package decimal provides a fixed-point decimal number used for exact
// x-coordinate bookkeeping.
//
// A [Fixed] stores an integer count of units of 10^-places. Adding a step
// repeatedly therefore never drifts, and two coordinates computed along
// different paths compare equal with ==, which binary floating point cannot
// guarantee:
//
//	x := decimal.FromFloat(0, 2)
//	step := decimal.FromFloat(0.1, 2)
//	for range 30 {
//		x = x.Add(step)
//	}
//	x == decimal.FromFloat(3, 2) // true
package decimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/spf13/cast"
)

// MaxPlaces is the largest supported number of decimal places.
const MaxPlaces = 9

var pow10 = [MaxPlaces + 1]int64{
	1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Fixed is a decimal value with a fixed number of fractional digits.
// The zero value is 0 with zero places.
type Fixed struct {
	units  int64
	places int
}

func clampPlaces(places int) int {
	if places < 0 {
		return 0
	}
	if places > MaxPlaces {
		return MaxPlaces
	}
	return places
}

// MaxUnits bounds the unit count of a Fixed built from a float. The sum of
// two such values still fits in an int64.
const MaxUnits = 1_000_000_000_000_000_000

// ErrOutOfRange is returned for values that are not finite or whose unit
// count exceeds MaxUnits.
var ErrOutOfRange = fmt.Errorf("decimal: value out of range: %w", core.ErrInvalidArgument)

// FromFloatE rounds v half away from zero to the given number of places and
// fails with ErrOutOfRange when the result cannot be represented.
func FromFloatE(v float64, places int) (Fixed, error) {
	places = clampPlaces(places)
	u := math.Round(v * float64(pow10[places]))
	if math.IsNaN(u) || math.Abs(u) > MaxUnits {
		return Fixed{}, fmt.Errorf("%w: %v at %d places", ErrOutOfRange, v, places)
	}
	return Fixed{units: int64(u), places: places}, nil
}

// FromFloat rounds v half away from zero to the given number of places.
// Values beyond MaxUnits saturate at ±MaxUnits and NaN maps to 0; use
// FromFloatE or InRange when that matters.
func FromFloat(v float64, places int) Fixed {
	places = clampPlaces(places)
	u := math.Round(v * float64(pow10[places]))
	switch {
	case math.IsNaN(u):
		u = 0
	case u > MaxUnits:
		u = MaxUnits
	case u < -MaxUnits:
		u = -MaxUnits
	}
	return Fixed{units: int64(u), places: places}
}

// InRange reports whether FromFloatE accepts v at the given places.
func InRange(v float64, places int) bool {
	_, err := FromFloatE(v, places)
	return err == nil
}

// FromUnits builds a Fixed from a raw unit count.
func FromUnits(units int64, places int) Fixed {
	return Fixed{units: units, places: clampPlaces(places)}
}

// Parse converts a number or a decimal-parseable string to a Fixed. Errors
// wrap core.ErrInvalidArgument.
func Parse(v any, places int) (Fixed, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Fixed{}, fmt.Errorf("decimal: cannot parse %v: %w: %w", v, core.ErrInvalidArgument, err)
	}
	return FromFloatE(f, places)
}

// Places returns the number of fractional digits.
func (f Fixed) Places() int { return f.places }

// Units returns the raw unit count.
func (f Fixed) Units() int64 { return f.units }

// Float64 returns the nearest float64.
func (f Fixed) Float64() float64 {
	return float64(f.units) / float64(pow10[f.places])
}

// Rescale returns f expressed with the given number of places, rounding half
// away from zero when digits are dropped.
func (f Fixed) Rescale(places int) Fixed {
	places = clampPlaces(places)
	switch {
	case places == f.places:
		return f
	case places > f.places:
		return Fixed{units: f.units * pow10[places-f.places], places: places}
	default:
		div := pow10[f.places-places]
		q, r := f.units/div, f.units%div
		if 2*abs(r) >= div {
			if f.units < 0 {
				q--
			} else {
				q++
			}
		}
		return Fixed{units: q, places: places}
	}
}

// Add returns f+g in f's precision.
func (f Fixed) Add(g Fixed) Fixed {
	return Fixed{units: f.units + g.Rescale(f.places).units, places: f.places}
}

// Sub returns f-g in f's precision.
func (f Fixed) Sub(g Fixed) Fixed {
	return Fixed{units: f.units - g.Rescale(f.places).units, places: f.places}
}

// Neg returns -f.
func (f Fixed) Neg() Fixed {
	return Fixed{units: -f.units, places: f.places}
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fixed) Cmp(g Fixed) int {
	a, b := f, g
	switch {
	case a.places < b.places:
		a = a.Rescale(b.places)
	case a.places > b.places:
		b = b.Rescale(a.places)
	}

	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	default:
		return 0
	}
}

// Sign returns -1, 0 or +1.
func (f Fixed) Sign() int {
	switch {
	case f.units < 0:
		return -1
	case f.units > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether f is zero.
func (f Fixed) IsZero() bool { return f.units == 0 }

// Steps returns how many whole steps fit between from and to, that is
// floor((to-from)/step). It returns -1 when step is not positive or to < from.
func Steps(from, to, step Fixed) int64 {
	places := max(from.places, to.places, step.places)
	a, b, s := from.Rescale(places), to.Rescale(places), step.Rescale(places)
	if s.units <= 0 || b.units < a.units {
		return -1
	}
	return (b.units - a.units) / s.units
}

// String formats f with exactly Places() fractional digits.
func (f Fixed) String() string {
	if f.places == 0 {
		return strconv.FormatInt(f.units, 10)
	}

	sign := ""
	u := f.units
	if u < 0 {
		sign = "-"
		u = -u
	}

	div := pow10[f.places]
	return fmt.Sprintf("%s%d.%0*d", sign, u/div, f.places, u%div)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
