package session

import (
	"slices"

	"github.com/cwbudde/algo-dsp-viz/dsp/conv"
	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/correlation"
	"github.com/cwbudde/algo-dsp-viz/dsp/interp"
	"github.com/cwbudde/algo-dsp-viz/dsp/regression"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

// Fit is the outcome of a regression run.
type Fit struct {
	Level    int            `json:"level" yaml:"level"`
	Coefs    []float64      `json:"coefs" yaml:"coefs"`
	Points   []signal.Point `json:"points" yaml:"points"`
	Residual float64        `json:"residual" yaml:"residual"`
}

// Match summarises how two signals line up.
type Match struct {
	Lag         int     `json:"lag" yaml:"lag"`
	Peak        float64 `json:"peak" yaml:"peak"`
	Similarity  float64 `json:"similarity" yaml:"similarity"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

// cached returns the stored result for key or computes and stores it.
func (s *Session) cached(op, key string, compute func() ([]signal.Point, error)) ([]signal.Point, error) {
	if v, ok := s.results.Get(key); ok {
		s.logger.WithField("op", op).Debug("cache hit")
		return slices.Clone(v.([]signal.Point)), nil
	}

	out, err := compute()
	if err != nil {
		return nil, err
	}
	s.results.Set(key, slices.Clone(out), cache.DefaultExpiration)
	return out, nil
}

// CachedResults returns the number of live cache entries.
func (s *Session) CachedResults() int {
	return s.results.ItemCount()
}

// Samples samples the named signal at rate ticks per x unit.
func (s *Session) Samples(name string, rate float64) ([]signal.Point, error) {
	sig, err := s.Signal(name)
	if err != nil {
		return nil, err
	}

	key := digest("samples", []float64{rate}, sig.Values())
	return s.cached("samples", key, func() ([]signal.Point, error) {
		return signal.Samples(rate, sig)
	})
}

// Regression fits a polynomial of the given level to the named signal and
// evaluates it at targets, defaulting to the signal's own x values.
func (s *Session) Regression(name string, level int, targets ...float64) (Fit, error) {
	points, err := s.Points(name)
	if err != nil {
		return Fit{}, err
	}

	p, err := regression.ApproximationPolynomial(points, level)
	if err != nil {
		return Fit{}, err
	}
	residual, err := regression.LeastSquaresSum(points, level)
	if err != nil {
		return Fit{}, err
	}

	if len(targets) == 0 {
		targets = signal.Xs(points)
	}
	return Fit{
		Level:    level,
		Coefs:    p.Coeffs(),
		Points:   signal.Zip(targets, p.EvalAll(targets)),
		Residual: residual,
	}, nil
}

// BestFit runs regression for levels 1..maxLevel and returns the fit with
// the smallest residual.
func (s *Session) BestFit(name string, maxLevel int) (Fit, error) {
	points, err := s.Points(name)
	if err != nil {
		return Fit{}, err
	}

	level, _, err := regression.BestLevel(points, maxLevel)
	if err != nil {
		return Fit{}, err
	}
	return s.Regression(name, level)
}

// Newton interpolates the named signal's points at targets.
func (s *Session) Newton(name string, targets ...float64) ([]signal.Point, error) {
	points, err := s.Points(name)
	if err != nil {
		return nil, err
	}

	key := digest("newton", targets, points)
	return s.cached("newton", key, func() ([]signal.Point, error) {
		return interp.Newton(points, targets...)
	})
}

// Hold reconstructs the named signal's samples with a hold kernel over [from, to].
func (s *Session) Hold(name string, hold interp.Hold, period, from, to, step float64) ([]signal.Point, error) {
	points, err := s.Points(name)
	if err != nil {
		return nil, err
	}

	key := digest("hold", []float64{float64(hold), period, from, to, step}, points)
	return s.cached("hold", key, func() ([]signal.Point, error) {
		return interp.Reconstruct(points, period, from, to, step, hold, core.WithConfig(s.cfg))
	})
}

// Convolve convolves two named signals.
func (s *Session) Convolve(input, kernel string) ([]signal.Point, error) {
	in, err := s.Points(input)
	if err != nil {
		return nil, err
	}
	k, err := s.Points(kernel)
	if err != nil {
		return nil, err
	}

	key := digest("convolve", nil, in, k)
	return s.cached("convolve", key, func() ([]signal.Point, error) {
		return conv.Convolution(in, k)
	})
}

// ConvolutionStep returns the products of one slide position: the input is
// time-reversed, shifted by shift and multiplied point-wise with the kernel.
func (s *Session) ConvolutionStep(input, kernel string, shift float64) ([]signal.Point, error) {
	reversed, err := s.Points(input, signal.TimeReversed(), signal.WithOffsetValue(shift))
	if err != nil {
		return nil, err
	}
	k, err := s.Points(kernel)
	if err != nil {
		return nil, err
	}
	return conv.ConvolutionStep(reversed, k, core.WithConfig(s.cfg)), nil
}

// GenerateNoise stores uniform white noise under name.
func (s *Session) GenerateNoise(name string, xMin, xMax, step, minAmp, maxAmp float64) error {
	s.Lock()
	defer s.Unlock()

	noise, err := correlation.GenerateWhiteNoise(s.rng, xMin, xMax, step, minAmp, maxAmp, core.WithConfig(s.cfg))
	if err != nil {
		return err
	}
	s.signals[name] = noise

	s.logger.WithFields(log.Fields{"signal": name, "points": noise.Len()}).Info("noise generated")
	return nil
}

// Noisify mixes the named signal, shifted by lag, into the named noise. The
// noise signal is replaced by its updated version and the mix is stored
// under result. A missing noise signal starts empty.
func (s *Session) Noisify(name, noise, result string, performance, lag float64) error {
	s.Lock()
	defer s.Unlock()

	sig, err := s.lookup(name)
	if err != nil {
		return err
	}

	updated, mixed, err := correlation.NoisifySignal(s.rng, sig, s.signals[noise], performance, lag)
	if err != nil {
		return err
	}
	s.signals[noise] = updated
	s.signals[result] = mixed

	s.logger.WithFields(log.Fields{
		"signal": name,
		"noise":  noise,
		"result": result,
		"lag":    lag,
	}).Info("signal noisified")
	return nil
}

// Correlate estimates the lag between two named signals and their Pearson
// coefficient on shared x values.
func (s *Session) Correlate(a, b string) (Match, error) {
	pa, err := s.Points(a)
	if err != nil {
		return Match{}, err
	}
	pb, err := s.Points(b)
	if err != nil {
		return Match{}, err
	}

	lag, peak, err := correlation.EstimateLag(pa, pb)
	if err != nil {
		return Match{}, err
	}
	similarity, err := correlation.PeakSimilarity(pa, pb)
	if err != nil {
		return Match{}, err
	}
	r, err := correlation.Coefficient(pa, pb, core.WithConfig(s.cfg))
	if err != nil {
		return Match{}, err
	}
	return Match{Lag: lag, Peak: peak, Similarity: similarity, Coefficient: r}, nil
}
