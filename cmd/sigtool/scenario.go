package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-dsp-viz/dsp/interp"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-dsp-viz/internal/session"
	"gopkg.in/yaml.v3"
)

var errScenario = errors.New("sigtool: invalid scenario")

// Scenario is a YAML file describing signals and the engine calls to run on them.
type Scenario struct {
	Signals []SignalDef `yaml:"signals"`
	Steps   []StepDef   `yaml:"steps"`
}

// SignalDef creates one named signal. Exactly one source is used, checked
// in the order points, preset, noise, load.
type SignalDef struct {
	Name   string               `yaml:"name"`
	Points []signal.Point       `yaml:"points,omitempty"`
	Preset *signal.PresetConfig `yaml:"preset,omitempty"`
	Noise  *NoiseDef            `yaml:"noise,omitempty"`
	Load   bool                 `yaml:"load,omitempty"`
	From   float64              `yaml:"from,omitempty"`
	To     float64              `yaml:"to,omitempty"`
	Step   float64              `yaml:"step,omitempty"`
	Offset float64              `yaml:"offset,omitempty"`
}

// NoiseDef bounds uniform white noise.
type NoiseDef struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// StepDef is one engine call. Only the fields of the chosen op are read.
type StepDef struct {
	Op          string    `yaml:"op"`
	Signal      string    `yaml:"signal"`
	With        string    `yaml:"with,omitempty"`
	Result      string    `yaml:"result,omitempty"`
	Rate        float64   `yaml:"rate,omitempty"`
	Level       int       `yaml:"level,omitempty"`
	Targets     []float64 `yaml:"targets,omitempty"`
	Hold        string    `yaml:"hold,omitempty"`
	Period      float64   `yaml:"period,omitempty"`
	From        float64   `yaml:"from,omitempty"`
	To          float64   `yaml:"to,omitempty"`
	Step        float64   `yaml:"step,omitempty"`
	Shift       float64   `yaml:"shift,omitempty"`
	Performance float64   `yaml:"performance,omitempty"`
	Lag         float64   `yaml:"lag,omitempty"`
}

// Result is the printable outcome of one step.
type Result struct {
	Index   int
	Op      string
	Signal  string
	Summary string
	Points  []signal.Point
}

func loadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("sigtool: read scenario: %w", err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("sigtool: parse scenario: %w", err)
	}
	for i, s := range sc.Signals {
		if s.Name == "" {
			return Scenario{}, fmt.Errorf("%w: signal %d has no name", errScenario, i)
		}
	}
	for i, st := range sc.Steps {
		if st.Op == "" {
			return Scenario{}, fmt.Errorf("%w: step %d has no op", errScenario, i)
		}
	}
	return sc, nil
}

func parseHold(name string) (interp.Hold, error) {
	switch strings.ToLower(name) {
	case "", "zoh", "zero-order":
		return interp.HoldZeroOrder, nil
	case "foh", "first-order":
		return interp.HoldFirstOrder, nil
	default:
		return 0, fmt.Errorf("%w: unknown hold %q", errScenario, name)
	}
}

// run builds the scenario's signals in sess and executes its steps in order.
// The first failing step aborts the run.
func run(sess *session.Session, sc Scenario) ([]Result, error) {
	for _, def := range sc.Signals {
		if err := buildSignal(sess, def); err != nil {
			return nil, fmt.Errorf("sigtool: signal %q: %w", def.Name, err)
		}
	}

	results := make([]Result, 0, len(sc.Steps))
	for i, st := range sc.Steps {
		res, err := runStep(sess, st)
		if err != nil {
			return results, fmt.Errorf("sigtool: step %d (%s): %w", i, st.Op, err)
		}
		res.Index, res.Op, res.Signal = i, st.Op, st.Signal
		results = append(results, res)
	}
	return results, nil
}

func buildSignal(sess *session.Session, def SignalDef) error {
	var err error
	switch {
	case def.Points != nil:
		sess.SetPoints(def.Name, def.Points)
	case def.Preset != nil:
		err = sess.Generate(def.Name, *def.Preset, def.From, def.To, def.Step)
	case def.Noise != nil:
		err = sess.GenerateNoise(def.Name, def.From, def.To, def.Step, def.Noise.Min, def.Noise.Max)
	case def.Load:
		err = sess.Load(def.Name)
	default:
		return fmt.Errorf("%w: no source", errScenario)
	}
	if err != nil {
		return err
	}

	if def.Offset != 0 {
		return sess.SetTimeOffset(def.Name, def.Offset)
	}
	return nil
}

func runStep(sess *session.Session, st StepDef) (Result, error) {
	switch strings.ToLower(st.Op) {
	case "points":
		pts, err := sess.Points(st.Signal)
		return pointsResult(pts, err)
	case "samples":
		pts, err := sess.Samples(st.Signal, st.Rate)
		return pointsResult(pts, err)
	case "regression":
		fit, err := sess.Regression(st.Signal, st.Level, st.Targets...)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Summary: fmt.Sprintf("coefs=%s residual=%.6g", formatFloats(fit.Coefs), fit.Residual),
			Points:  fit.Points,
		}, nil
	case "best-fit":
		fit, err := sess.BestFit(st.Signal, st.Level)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Summary: fmt.Sprintf("level=%d coefs=%s residual=%.6g", fit.Level, formatFloats(fit.Coefs), fit.Residual),
			Points:  fit.Points,
		}, nil
	case "newton":
		pts, err := sess.Newton(st.Signal, st.Targets...)
		return pointsResult(pts, err)
	case "hold":
		hold, err := parseHold(st.Hold)
		if err != nil {
			return Result{}, err
		}
		pts, err := sess.Hold(st.Signal, hold, st.Period, st.From, st.To, st.Step)
		return pointsResult(pts, err)
	case "convolve":
		pts, err := sess.Convolve(st.Signal, st.With)
		return pointsResult(pts, err)
	case "convolution-step":
		pts, err := sess.ConvolutionStep(st.Signal, st.With, st.Shift)
		return pointsResult(pts, err)
	case "noisify":
		if err := sess.Noisify(st.Signal, st.With, st.Result, st.Performance, st.Lag); err != nil {
			return Result{}, err
		}
		pts, err := sess.Points(st.Result)
		return pointsResult(pts, err)
	case "correlate":
		m, err := sess.Correlate(st.Signal, st.With)
		if err != nil {
			return Result{}, err
		}
		return Result{Summary: fmt.Sprintf("lag=%d peak=%.6g similarity=%.6f r=%.6f", m.Lag, m.Peak, m.Similarity, m.Coefficient)}, nil
	case "save":
		if err := sess.Save(st.Signal); err != nil {
			return Result{}, err
		}
		return Result{Summary: "saved"}, nil
	default:
		return Result{}, fmt.Errorf("%w: unknown op %q", errScenario, st.Op)
	}
}

func pointsResult(pts []signal.Point, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{Summary: fmt.Sprintf("%d points", len(pts)), Points: pts}, nil
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%.6g", f)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
