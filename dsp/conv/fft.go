package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT computes the full linear convolution of a and b by multiplying their
// spectra in a single zero-padded block.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aFreq, err := forward(plan, a, fftSize)
	if err != nil {
		return nil, err
	}
	bFreq, err := forward(plan, b, fftSize)
	if err != nil {
		return nil, err
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outLen)
	for i := range result {
		result[i] = real(timeDomain[i])
	}
	return result, nil
}

func forward(plan *algofft.Plan[complex128], x []float64, size int) ([]complex128, error) {
	padded := make([]complex128, size)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, size)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	return freq, nil
}
