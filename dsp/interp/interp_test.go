package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/cwbudde/algo-dsp-viz/internal/testutil"
)

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestUpsample(t *testing.T) {
	in := testutil.Ramp(4, 1, 1, 0)
	got, err := Upsample(in, 2)
	if err != nil {
		t.Fatalf("Upsample() error = %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	testutil.RequireAscendingX(t, got)

	for i, want := range []signal.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1.5, Y: 1.5}, {X: 3, Y: 3}} {
		idx := []int{0, 2, 3, 6}[i]
		if math.Abs(got[idx].X-want.X) > 1e-12 || math.Abs(got[idx].Y-want.Y) > 1e-12 {
			t.Fatalf("got[%d] = %v, want %v", idx, got[idx], want)
		}
	}
}

func TestUpsampleErrors(t *testing.T) {
	if _, err := Upsample(testutil.Ramp(4, 1, 1, 0), 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("factor 0 error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Upsample(testutil.Ramp(1, 1, 1, 0), 2); !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("one sample error = %v, want ErrInsufficientData", err)
	}
}
