package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are within eps of each other, either
// absolutely or relative to the larger magnitude. A non-positive eps means 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	return floats.EqualWithinAbsOrRel(a, b, eps, eps)
}

// Round rounds value to the given number of decimal places, half away from zero.
// A negative places value returns value unchanged.
func Round(value float64, places int) float64 {
	if places < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	rounded := floats.Round(value, places)
	if rounded == 0 {
		// drop negative zero
		return 0
	}

	return rounded
}
