package conv

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Correlate computes the full cross-correlation of a and b.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	reversed := slices.Clone(b)
	slices.Reverse(reversed)
	return Convolve(a, reversed)
}

// CorrelateNormalized is Correlate divided by the product of the L2 norms of
// a and b, so every value lies in [-1, 1]. When either input has zero energy
// the raw correlation, all zeros, is returned.
func CorrelateNormalized(a, b []float64) ([]float64, error) {
	result, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	if norm := floats.Norm(a, 2) * floats.Norm(b, 2); norm != 0 {
		floats.Scale(1/norm, result)
	}
	return result, nil
}

// FindPeak finds the index and value of the maximum in a correlation result.
// The first index wins on ties. An empty input yields (-1, 0).
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i, v := range corr {
		if v > value {
			index, value = i, v
		}
	}
	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation of signals with lengths lenA and lenB,
// the lag at index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

