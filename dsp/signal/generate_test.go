package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
)

func TestPresetShapes(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		x    float64
		want float64
	}{
		{name: "sine quarter", fn: Sine(1, 2, 0), x: 0.25, want: 2},
		{name: "rectangle high", fn: Rectangle(2, 1), x: 0.5, want: 1},
		{name: "rectangle low", fn: Rectangle(2, 1), x: 1.5, want: -1},
		{name: "rectangle negative x", fn: Rectangle(2, 1), x: -0.5, want: -1},
		{name: "sawtooth start", fn: Sawtooth(1, 1), x: 0, want: -1},
		{name: "sawtooth middle", fn: Sawtooth(1, 1), x: 2.5, want: 0},
		{name: "triangle edge", fn: Triangle(1, 3), x: 0, want: -3},
		{name: "triangle peak", fn: Triangle(1, 3), x: 0.5, want: 3},
		{name: "exponential origin", fn: Exponential(2, 4), x: 0, want: 4},
		{name: "exponential before", fn: Exponential(2, 4), x: -1, want: 0},
		{name: "impulse hit", fn: Impulse(1.5, 7), x: 1.5, want: 7},
		{name: "impulse miss", fn: Impulse(1.5, 7), x: 1.51, want: 0},
		{name: "bad period", fn: Triangle(0, 3), x: 0.5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("f(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	if got := Exponential(1, 1)(1); math.Abs(got-math.Exp(-1)) > 1e-15 {
		t.Fatalf("Exponential(1,1)(1) = %v", got)
	}
}

func TestPresetLookup(t *testing.T) {
	fn, err := Preset(PresetConfig{Name: "Sawtooth", Period: 2, Amplitude: 1})
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if got := fn(1); got != 0 {
		t.Fatalf("sawtooth(1) = %v, want 0", got)
	}

	if _, err := Preset(PresetConfig{Name: "rectangle"}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero period, got %v", err)
	}
	if _, err := Preset(PresetConfig{Name: "chirp"}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown preset, got %v", err)
	}

	names := PresetNames()
	if len(names) != 6 || names[0] != "exponential" {
		t.Fatalf("PresetNames() = %v", names)
	}
}

func TestImpulseOnGeneratedGrid(t *testing.T) {
	s := New()
	if err := s.GenerateValues(-1, 1, 0.01, Impulse(0.37, 1)); err != nil {
		t.Fatalf("GenerateValues() error = %v", err)
	}

	hits := 0
	for _, p := range s.Values() {
		if p.Y != 0 {
			hits++
			if p.X != 0.37 {
				t.Fatalf("impulse at %v, want 0.37", p.X)
			}
		}
	}
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize(pts([2]float64{0, -0.5}, [2]float64{1, 0.25}, [2]float64{2, 1}), 0.8)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := []float64{-0.4, 0.2, 0.8}
	for i, p := range got {
		if math.Abs(p.Y-want[i]) > 1e-12 || p.X != float64(i) {
			t.Fatalf("got[%d] = %+v, want y %v", i, p, want[i])
		}
	}

	zero, err := Normalize(pts([2]float64{0, 0}), 1)
	if err != nil || zero[0].Y != 0 {
		t.Fatalf("silent input: %v, %v", zero, err)
	}

	if _, err := Normalize(nil, 1); !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if _, err := Normalize(pts([2]float64{0, 1}), -1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
