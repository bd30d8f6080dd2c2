package correlation

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// jitterScale weights the uniform jitter added by NoisifySignal.
const jitterScale = 0.01

// GenerateWhiteNoise returns a signal sampled at x = xMin, xMin+step, ... up
// to xMax whose y values are drawn uniformly from [minAmp, maxAmp].
func GenerateWhiteNoise(rng *rand.Rand, xMin, xMax, step, minAmp, maxAmp float64, opts ...core.Option) (*signal.Signal, error) {
	if minAmp > maxAmp {
		return nil, fmt.Errorf("correlation: min amplitude %v above max amplitude %v: %w", minAmp, maxAmp, core.ErrInvalidArgument)
	}
	rng = ensureRand(rng, opts)

	dist := distuv.Uniform{Min: minAmp, Max: maxAmp}
	noise := signal.New(opts...)
	err := noise.GenerateValues(xMin, xMax, step, func(float64) float64 {
		return dist.Quantile(rng.Float64())
	})
	if err != nil {
		return nil, fmt.Errorf("correlation: white noise: %w", err)
	}
	return noise, nil
}

// NoisifySignal shifts the points of sig by lag and accumulates them into a
// copy of noise: for every shifted point (x, y)
//
//	noise[x] += y·performance + U(noiseMin, noiseMax)·0.01·performance
//
// where [noiseMin, noiseMax] is the y range of noise before the call and a
// missing noise point counts as 0. It returns the updated noise and a fresh
// signal holding the same merged points. Neither sig nor noise is modified.
func NoisifySignal(rng *rand.Rand, sig, noise *signal.Signal, performance, lag float64) (updatedNoise, result *signal.Signal, err error) {
	if sig == nil {
		return nil, nil, fmt.Errorf("correlation: nil signal: %w", core.ErrInvalidArgument)
	}
	if noise == nil {
		noise = signal.New(core.WithConfig(sig.Config()))
	}
	cfg := noise.Config()
	rng = ensureRand(rng, []core.Option{core.WithSeed(cfg.Seed)})

	dist, err := jitterDistribution(noise)
	if err != nil {
		return nil, nil, err
	}

	updatedNoise = noise.Clone()
	for _, p := range sig.Values(signal.WithOffsetValue(lag)) {
		base := 0.0
		if existing, ok := updatedNoise.Point(p.X); ok {
			base = existing.Y
		}
		jitter := dist.Quantile(rng.Float64())
		updatedNoise.SetPoint(p.X, base+p.Y*performance+jitter*jitterScale*performance)
	}

	result = signal.FromPoints(updatedNoise.Values(), core.WithConfig(cfg))
	return updatedNoise, result, nil
}

func jitterDistribution(noise *signal.Signal) (distuv.Uniform, error) {
	if noise.Len() == 0 {
		return distuv.Uniform{}, nil
	}

	ys := signal.Ys(noise.Values())
	lo, err := stats.Min(ys)
	if err != nil {
		return distuv.Uniform{}, fmt.Errorf("correlation: noise range: %w", err)
	}
	hi, err := stats.Max(ys)
	if err != nil {
		return distuv.Uniform{}, fmt.Errorf("correlation: noise range: %w", err)
	}
	return distuv.Uniform{Min: lo, Max: hi}, nil
}

func ensureRand(rng *rand.Rand, opts []core.Option) *rand.Rand {
	if rng != nil {
		return rng
	}
	return core.NewRand(core.ApplyOptions(opts...).Seed)
}
