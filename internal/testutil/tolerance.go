package testutil

import (
	"testing"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"github.com/google/go-cmp/cmp"
)

// RequirePointsNearlyEqual fails t if got and want differ in length or if any
// coordinate pair differs by more than eps.
func RequirePointsNearlyEqual(t testing.TB, got, want []signal.Point, eps float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, ApproxPoints(eps)); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not within eps as judged by core.NearlyEqual.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireAscendingX fails t unless the x coordinates are strictly increasing.
func RequireAscendingX(t testing.TB, points []signal.Point) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Fatalf("x not strictly increasing at %d: %v after %v", i, points[i].X, points[i-1].X)
		}
	}
}
