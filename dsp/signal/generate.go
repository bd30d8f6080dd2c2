package signal

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
)

// Func maps an x coordinate to a y value.
type Func func(x float64) float64

// impulseTolerance decides whether x hits the impulse position.
const impulseTolerance = 1e-9

// Sine returns amplitude*sin(2*pi*freq*x + phase).
func Sine(freq, amplitude, phase float64) Func {
	return func(x float64) float64 {
		return amplitude * math.Sin(2*math.Pi*freq*x+phase)
	}
}

// Rectangle returns a square wave of the given period: +amplitude during the
// first half of each period and -amplitude during the second.
// A non-positive period yields a constant zero.
func Rectangle(period, amplitude float64) Func {
	if period <= 0 {
		return zero
	}
	return func(x float64) float64 {
		if phaseOf(x, period) < 0.5 {
			return amplitude
		}
		return -amplitude
	}
}

// Sawtooth returns a ramp from -amplitude to +amplitude repeating every period.
func Sawtooth(period, amplitude float64) Func {
	if period <= 0 {
		return zero
	}
	return func(x float64) float64 {
		return amplitude * (2*phaseOf(x, period) - 1)
	}
}

// Triangle returns a triangle wave with -amplitude at the period boundaries
// and +amplitude in the middle of each period.
func Triangle(period, amplitude float64) Func {
	if period <= 0 {
		return zero
	}
	return func(x float64) float64 {
		return amplitude * (1 - 4*math.Abs(phaseOf(x, period)-0.5))
	}
}

// Exponential returns the causal decay amplitude*exp(-rate*x) for x >= 0 and 0 before.
func Exponential(rate, amplitude float64) Func {
	return func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return amplitude * math.Exp(-rate*x)
	}
}

// Impulse returns amplitude at x == at and 0 elsewhere.
func Impulse(at, amplitude float64) Func {
	return func(x float64) float64 {
		if math.Abs(x-at) <= impulseTolerance {
			return amplitude
		}
		return 0
	}
}

func zero(float64) float64 { return 0 }

// phaseOf returns the position of x within its period, in [0, 1).
func phaseOf(x, period float64) float64 {
	p := x / period
	return p - math.Floor(p)
}

// PresetConfig describes a canned generator by name.
type PresetConfig struct {
	Name      string  `json:"name" yaml:"name"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Frequency float64 `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Phase     float64 `json:"phase,omitempty" yaml:"phase,omitempty"`
	Period    float64 `json:"period,omitempty" yaml:"period,omitempty"`
	Rate      float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	At        float64 `json:"at,omitempty" yaml:"at,omitempty"`
}

var presets = map[string]func(PresetConfig) (Func, error){
	"sine": func(p PresetConfig) (Func, error) {
		return Sine(p.Frequency, p.Amplitude, p.Phase), nil
	},
	"rectangle": func(p PresetConfig) (Func, error) {
		if err := validatePeriod(p); err != nil {
			return nil, err
		}
		return Rectangle(p.Period, p.Amplitude), nil
	},
	"sawtooth": func(p PresetConfig) (Func, error) {
		if err := validatePeriod(p); err != nil {
			return nil, err
		}
		return Sawtooth(p.Period, p.Amplitude), nil
	},
	"triangle": func(p PresetConfig) (Func, error) {
		if err := validatePeriod(p); err != nil {
			return nil, err
		}
		return Triangle(p.Period, p.Amplitude), nil
	},
	"exponential": func(p PresetConfig) (Func, error) {
		return Exponential(p.Rate, p.Amplitude), nil
	},
	"impulse": func(p PresetConfig) (Func, error) {
		return Impulse(p.At, p.Amplitude), nil
	},
}

func validatePeriod(p PresetConfig) error {
	if p.Period <= 0 {
		return fmt.Errorf("signal: %s period must be > 0: %v: %w", p.Name, p.Period, core.ErrInvalidArgument)
	}
	return nil
}

// Preset resolves a generator by name (case-insensitive).
func Preset(p PresetConfig) (Func, error) {
	build, ok := presets[strings.ToLower(p.Name)]
	if !ok {
		return nil, fmt.Errorf("signal: unknown preset %q: %w", p.Name, core.ErrInvalidArgument)
	}
	return build(p)
}

// PresetNames lists the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalize scales the y values of points to the target peak amplitude and
// returns a new slice. x is copied unchanged.
func Normalize(points []Point, targetPeak float64) ([]Point, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f: %w", targetPeak, core.ErrInvalidArgument)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty: %w", core.ErrInsufficientData)
	}

	maxAbs := 0.0
	for _, p := range points {
		maxAbs = max(maxAbs, math.Abs(p.Y))
	}

	out := make([]Point, len(points))
	scale := 0.0
	if maxAbs != 0 {
		scale = targetPeak / maxAbs
	}
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y * scale}
	}
	return out, nil
}
