package correlation

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-dsp-viz/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateWhiteNoiseBounds(t *testing.T) {
	noise, err := GenerateWhiteNoise(core.NewRand(3), 0, 10, 0.5, -2, 3)
	if err != nil {
		t.Fatalf("GenerateWhiteNoise() error = %v", err)
	}
	if noise.Len() != 21 {
		t.Fatalf("Len() = %d, want 21", noise.Len())
	}
	for _, p := range noise.Values() {
		if p.Y < -2 || p.Y > 3 {
			t.Fatalf("y = %v outside [-2, 3]", p.Y)
		}
	}
	testutil.RequireAscendingX(t, noise.Values())
}

func TestGenerateWhiteNoiseReproducible(t *testing.T) {
	a, err := GenerateWhiteNoise(core.NewRand(11), 0, 5, 1, 0, 1)
	if err != nil {
		t.Fatalf("GenerateWhiteNoise() error = %v", err)
	}
	b, _ := GenerateWhiteNoise(core.NewRand(11), 0, 5, 1, 0, 1)
	if diff := cmp.Diff(a.Values(), b.Values()); diff != "" {
		t.Fatalf("same seed differs (-a +b):\n%s", diff)
	}

	c, _ := GenerateWhiteNoise(core.NewRand(12), 0, 5, 1, 0, 1)
	if cmp.Equal(a.Values(), c.Values()) {
		t.Fatal("different seeds produced identical noise")
	}

	d, _ := GenerateWhiteNoise(nil, 0, 5, 1, 0, 1, core.WithSeed(11))
	e, _ := GenerateWhiteNoise(nil, 0, 5, 1, 0, 1, core.WithSeed(11))
	if diff := cmp.Diff(d.Values(), e.Values()); diff != "" {
		t.Fatalf("nil generator with equal seeds differs:\n%s", diff)
	}
}

func TestGenerateWhiteNoiseDegenerateRange(t *testing.T) {
	noise, err := GenerateWhiteNoise(core.NewRand(1), 0, 2, 1, 0.5, 0.5)
	if err != nil {
		t.Fatalf("GenerateWhiteNoise() error = %v", err)
	}
	for _, p := range noise.Values() {
		if p.Y != 0.5 {
			t.Fatalf("y = %v, want 0.5", p.Y)
		}
	}
}

func TestGenerateWhiteNoiseErrors(t *testing.T) {
	if _, err := GenerateWhiteNoise(nil, 0, 1, 0.1, 2, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("min > max error = %v", err)
	}
	if _, err := GenerateWhiteNoise(nil, 0, 1, 0, 0, 1); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("zero step error = %v", err)
	}
}

func TestNoisifySignalAccumulates(t *testing.T) {
	sig := signal.FromPoints(testutil.Pairs([2]float64{0, 1}, [2]float64{1, 2}))
	noise := signal.FromPoints(testutil.Pairs([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0}))
	before := noise.Values()

	updated, result, err := NoisifySignal(core.NewRand(5), sig, noise, 2, 1)
	if err != nil {
		t.Fatalf("NoisifySignal() error = %v", err)
	}

	want := testutil.Pairs([2]float64{0, 0}, [2]float64{1, 2}, [2]float64{2, 4})
	if diff := cmp.Diff(want, updated.Values()); diff != "" {
		t.Fatalf("updated noise mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, result.Values()); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, noise.Values()); diff != "" {
		t.Fatalf("noise argument was modified:\n%s", diff)
	}
}

func TestNoisifySignalInsertsMissingX(t *testing.T) {
	sig := signal.FromPoints(testutil.Pairs([2]float64{0, 1}, [2]float64{1, 2}))
	noise := signal.FromPoints(testutil.Pairs([2]float64{0, 0}, [2]float64{1, 0}))

	updated, _, err := NoisifySignal(core.NewRand(5), sig, noise, 1, 3)
	if err != nil {
		t.Fatalf("NoisifySignal() error = %v", err)
	}
	want := testutil.Pairs([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{3, 1}, [2]float64{4, 2})
	if diff := cmp.Diff(want, updated.Values()); diff != "" {
		t.Fatalf("updated noise mismatch (-want +got):\n%s", diff)
	}
}

func TestNoisifySignalJitterBounds(t *testing.T) {
	noise, err := GenerateWhiteNoise(core.NewRand(8), 0, 20, 1, -1, 1)
	if err != nil {
		t.Fatalf("GenerateWhiteNoise() error = %v", err)
	}
	sig := signal.FromPoints(testutil.Ramp(21, 1, 0, 0))

	updated, _, err := NoisifySignal(core.NewRand(9), sig, noise, 1, 0)
	if err != nil {
		t.Fatalf("NoisifySignal() error = %v", err)
	}
	yMin, yMax, _ := noise.YDomain()
	for _, p := range updated.Values() {
		base, _ := noise.Point(p.X)
		jitter := p.Y - base.Y
		if jitter < yMin*jitterScale-1e-4 || jitter > yMax*jitterScale+1e-4 {
			t.Fatalf("x=%v: jitter %v outside [%v, %v]", p.X, jitter, yMin*jitterScale, yMax*jitterScale)
		}
	}
}

func TestNoisifySignalNilNoise(t *testing.T) {
	sig := signal.FromPoints(testutil.Pairs([2]float64{0, 1}))

	updated, result, err := NoisifySignal(nil, sig, nil, 1, 0)
	if err != nil {
		t.Fatalf("NoisifySignal() error = %v", err)
	}
	want := testutil.Pairs([2]float64{0, 1})
	if diff := cmp.Diff(want, updated.Values()); diff != "" {
		t.Fatalf("updated mismatch:\n%s", diff)
	}
	if result.Len() != 1 {
		t.Fatalf("result Len() = %d, want 1", result.Len())
	}
}

func TestNoisifySignalNilSignal(t *testing.T) {
	if _, _, err := NoisifySignal(nil, nil, nil, 1, 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("nil signal error = %v", err)
	}
}
