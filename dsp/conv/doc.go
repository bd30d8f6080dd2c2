// Package conv provides discrete linear convolution and cross-correlation.
//
// Two layers are offered. The slice layer works on plain []float64:
//
//	result, err := conv.Convolve(signal, kernel)  // auto-selects direct or FFT
//	result, err := conv.Direct(signal, kernel)    // force direct convolution
//	result, err := conv.FFT(signal, kernel)       // force FFT convolution
//	result, err := conv.Correlate(a, b)           // cross-correlation
//
// The point layer works on [signal.Point] sequences the way the visualizer
// plots them:
//
//	out, err := conv.Convolution(input, kernel)          // direct sum, x = output index
//	step := conv.ConvolutionStep(reversedInput, kernel)  // one slide of the animation
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution for kernels up to 64 samples and a single
// zero-padded FFT block above that.
//
// # Correlation
//
// Cross-correlation computes how similar two signals are as a function of displacement:
//
//	corr, err := conv.Correlate(signal, template)
//	peakIdx, peakVal := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, len(template))
//
// [CorrelateNormalized] scales the result into [-1, 1].
package conv
