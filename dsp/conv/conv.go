package conv

import (
	"fmt"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = fmt.Errorf("conv: empty input: %w", core.ErrInsufficientData)
	ErrEmptyKernel = fmt.Errorf("conv: empty kernel: %w", core.ErrInsufficientData)
)

// directThreshold is the longest kernel Convolve handles without an FFT.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	clear(dst)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			dst[i+j] += av * bv
		}
	}
}

// Convolve performs linear convolution with automatic algorithm selection.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if min(len(a), len(b)) <= directThreshold {
		return Direct(a, b)
	}
	return FFT(a, b)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
