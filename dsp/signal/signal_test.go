package signal

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/decimal"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func pts(pairs ...[2]float64) []Point {
	out := make([]Point, len(pairs))
	for i, p := range pairs {
		out[i] = Point{X: p[0], Y: p[1]}
	}
	return out
}

func requireAscending(t *testing.T, points []Point) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Fatalf("x not strictly increasing at %d: %v", i, points)
		}
	}
}

func TestGenerateValuesSpacing(t *testing.T) {
	tests := []struct {
		xMin, xMax, step float64
	}{
		{xMin: 0, xMax: 1, step: 0.1},
		{xMin: -5, xMax: 5, step: 0.01},
		{xMin: 0, xMax: 1, step: 0.3},
		{xMin: 1.5, xMax: 1.5, step: 1},
		{xMin: -0.07, xMax: 12.34, step: 0.05},
	}

	for _, tt := range tests {
		s := New()
		if err := s.GenerateValues(tt.xMin, tt.xMax, tt.step, Sine(1, 1, 0)); err != nil {
			t.Fatalf("GenerateValues() error = %v", err)
		}

		lo, hi, st := decimal.FromFloat(tt.xMin, 2), decimal.FromFloat(tt.xMax, 2), decimal.FromFloat(tt.step, 2)
		want := int(decimal.Steps(lo, hi, st)) + 1

		values := s.Values()
		if len(values) != want {
			t.Fatalf("[%v,%v] step %v: len = %d, want %d", tt.xMin, tt.xMax, tt.step, len(values), want)
		}
		if values[0].X != tt.xMin {
			t.Fatalf("first x = %v, want %v", values[0].X, tt.xMin)
		}

		last := decimal.FromFloat(values[len(values)-1].X, 2)
		if last.Cmp(hi) > 0 || last.Cmp(hi.Sub(st)) <= 0 {
			t.Fatalf("last x = %s outside (%s, %s]", last, hi.Sub(st), hi)
		}

		for i := 1; i < len(values); i++ {
			d := decimal.FromFloat(values[i].X, 2).Sub(decimal.FromFloat(values[i-1].X, 2))
			if d != st {
				t.Fatalf("spacing at %d = %s, want %s", i, d, st)
			}
		}
	}
}

func TestGenerateValuesManySteps(t *testing.T) {
	s := New()
	if err := s.GenerateValues(0, 100, 0.01, func(x float64) float64 { return x }); err != nil {
		t.Fatalf("GenerateValues() error = %v", err)
	}
	if s.Len() != 10001 {
		t.Fatalf("len = %d, want 10001", s.Len())
	}
	p, ok := s.Point(73.37)
	if !ok || p.Y != 73.37 {
		t.Fatalf("Point(73.37) = %+v, %v", p, ok)
	}
	if s.Step() != 0.01 {
		t.Fatalf("Step() = %v, want 0.01", s.Step())
	}
	if s.Func() == nil {
		t.Fatal("expected generator to be kept")
	}
}

func TestGenerateValuesInvalidStep(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 1}))

	for _, step := range []float64{0, -1, 0.001} {
		err := s.GenerateValues(0, 1, step, Sine(1, 1, 0))
		if !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("step %v: expected ErrInvalidArgument, got %v", step, err)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("signal modified by failed generation: %v", s.Values())
	}

	if err := s.GenerateValues(0, 1, 0.1, nil); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("nil func: expected ErrInvalidArgument, got %v", err)
	}
}

func TestGenerateValuesReversedBoundsIsEmpty(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 1}))
	if err := s.GenerateValues(1, 0, 0.1, Sine(1, 1, 0)); err != nil {
		t.Fatalf("GenerateValues() error = %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
	if _, _, ok := s.Domain(); ok {
		t.Fatal("expected empty domain")
	}
}

func TestSetPointGetPoint(t *testing.T) {
	s := New()
	rng := core.NewRand(3)

	for i := range 500 {
		x := float64(rng.IntN(2000)-1000) / 100
		y := float64(rng.IntN(10000)) / 100
		s.SetPoint(x, y)

		p, ok := s.Point(x)
		if !ok {
			t.Fatalf("step %d: Point(%v) missing", i, x)
		}
		if p.Y != y {
			t.Fatalf("step %d: Point(%v).Y = %v, want %v", i, x, p.Y, y)
		}
		requireAscending(t, s.Values())
	}

	values := s.Values()
	xMin, xMax, ok := s.Domain()
	if !ok || xMin != values[0].X || xMax != values[len(values)-1].X {
		t.Fatalf("Domain() = %v, %v, %v; values span %v..%v", xMin, xMax, ok, values[0].X, values[len(values)-1].X)
	}
}

func TestPointNormalisesX(t *testing.T) {
	s := New()
	s.SetPoint(0.1+0.2, 5)

	if p, ok := s.Point(0.3); !ok || p.X != 0.3 || p.Y != 5 {
		t.Fatalf("Point(0.3) = %+v, %v", p, ok)
	}
	if _, ok := s.Point(0.31); ok {
		t.Fatal("unexpected hit at 0.31")
	}
}

func TestSetPointsLaterWins(t *testing.T) {
	s := New()
	s.SetPoints(pts([2]float64{2, 1}, [2]float64{0, 3}, [2]float64{2, 7}))

	want := pts([2]float64{0, 3}, [2]float64{2, 7})
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatalf("SetPoints mismatch (-want +got):\n%s", diff)
	}
}

func TestRemovePoint(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 4}))

	if s.RemovePoint(5) {
		t.Fatal("RemovePoint reported success for missing x")
	}
	if !s.RemovePoint(2) {
		t.Fatal("RemovePoint(2) = false, want true")
	}
	if _, xMax, _ := s.Domain(); xMax != 1 {
		t.Fatalf("xMax = %v, want 1 after removing the last point", xMax)
	}
	if _, ok := s.Point(2); ok {
		t.Fatal("point still present after removal")
	}
}

func TestSetValuesRoundTrip(t *testing.T) {
	s := FromPoints(pts([2]float64{3, 1.23456}, [2]float64{-1.005, 2}, [2]float64{0.5, -7}))
	first := s.Values()

	s.SetValues(first)
	if diff := cmp.Diff(first, s.Values()); diff != "" {
		t.Fatalf("round trip mismatch (-first +second):\n%s", diff)
	}

	requireAscending(t, first)
	if first[2].Y != 1.2346 {
		t.Fatalf("y rounding: got %v, want 1.2346", first[2].Y)
	}
}

func TestSetValuesDuplicateX(t *testing.T) {
	s := FromPoints(pts([2]float64{1, 1}, [2]float64{1.001, 2}, [2]float64{0, 0}))
	want := pts([2]float64{0, 0}, [2]float64{1, 2})
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSetRawValues(t *testing.T) {
	s := New()
	err := s.SetRawValues([][2]any{{"1.5", "2"}, {0, 1}, {"-0.25", 3.5}})
	if err != nil {
		t.Fatalf("SetRawValues() error = %v", err)
	}

	want := pts([2]float64{-0.25, 3.5}, [2]float64{0, 1}, [2]float64{1.5, 2})
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	err = s.SetRawValues([][2]any{{"x", 1}})
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if s.Len() != 3 {
		t.Fatal("failed parse modified the signal")
	}
}

func TestValuesOffsetAndReverse(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 1}, [2]float64{1, 2}, [2]float64{2, 3}))
	s.SetTimeOffset(0.5)

	tests := []struct {
		name string
		opts []ReadOption
		want []Point
	}{
		{
			name: "plain",
			want: pts([2]float64{0, 1}, [2]float64{1, 2}, [2]float64{2, 3}),
		},
		{
			name: "own offset",
			opts: []ReadOption{WithOffset()},
			want: pts([2]float64{0.5, 1}, [2]float64{1.5, 2}, [2]float64{2.5, 3}),
		},
		{
			name: "override offset",
			opts: []ReadOption{WithOffsetValue(-1)},
			want: pts([2]float64{-1, 1}, [2]float64{0, 2}, [2]float64{1, 3}),
		},
		{
			name: "reversed",
			opts: []ReadOption{TimeReversed()},
			want: pts([2]float64{-2, 3}, [2]float64{-1, 2}, [2]float64{0, 1}),
		},
		{
			name: "reversed then shifted",
			opts: []ReadOption{TimeReversed(), WithOffsetValue(1)},
			want: pts([2]float64{-1, 3}, [2]float64{0, 2}, [2]float64{1, 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Values(tt.opts...)); diff != "" {
				t.Fatalf("Values mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if p, _ := s.Point(0); p.X != 0 {
		t.Fatal("offset was persisted into stored points")
	}
	if s.TimeOffset() != 0.5 {
		t.Fatalf("TimeOffset() = %v, want 0.5", s.TimeOffset())
	}
}

func TestPointsInRange(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3}, [2]float64{4, 4}))

	tests := []struct {
		name       string
		xMin, xMax float64
		want       []Point
	}{
		{name: "inner", xMin: 1, xMax: 3, want: pts([2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3})},
		{name: "reversed", xMin: 3, xMax: 1, want: pts([2]float64{1, 1}, [2]float64{2, 2}, [2]float64{3, 3})},
		{name: "clamped", xMin: -10, xMax: 1.5, want: pts([2]float64{0, 0}, [2]float64{1, 1})},
		{name: "between points", xMin: 1.2, xMax: 1.8, want: []Point{}},
		{name: "outside", xMin: 10, xMax: 20, want: []Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.PointsInRange(tt.xMin, tt.xMax), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("PointsInRange mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if got := New().PointsInRange(0, 1); got != nil {
		t.Fatalf("empty signal range = %v, want nil", got)
	}
}

func TestMergeValues(t *testing.T) {
	base := pts([2]float64{0, 1}, [2]float64{2, 1})
	incoming := pts([2]float64{1, 5}, [2]float64{2, 9}, [2]float64{-1, 5})

	keep := FromPoints(base)
	keep.MergeValues(incoming, false)
	want := pts([2]float64{-1, 5}, [2]float64{0, 1}, [2]float64{1, 5}, [2]float64{2, 1})
	if diff := cmp.Diff(want, keep.Values()); diff != "" {
		t.Fatalf("merge without override (-want +got):\n%s", diff)
	}

	over := FromPoints(base)
	over.MergeValues(incoming, true)
	want[3].Y = 9
	if diff := cmp.Diff(want, over.Values()); diff != "" {
		t.Fatalf("merge with override (-want +got):\n%s", diff)
	}
	if xMin, xMax, _ := over.Domain(); xMin != -1 || xMax != 2 {
		t.Fatalf("Domain() = %v, %v, want -1, 2", xMin, xMax)
	}
}

func TestEmptySignal(t *testing.T) {
	s := New()
	if _, _, ok := s.Domain(); ok {
		t.Fatal("empty signal reported a domain")
	}
	if _, _, ok := s.YDomain(); ok {
		t.Fatal("empty signal reported a y domain")
	}
	if got := s.Values(TimeReversed(), WithOffset()); len(got) != 0 {
		t.Fatalf("Values() = %v, want empty", got)
	}

	s.MergeValues(nil, true)
	if s.Len() != 0 {
		t.Fatal("merge of nothing added points")
	}

	s.SetValues(nil)
	s.MergeValues(pts([2]float64{1, 2}), false)
	if xMin, xMax, ok := s.Domain(); !ok || xMin != 1 || xMax != 1 {
		t.Fatalf("Domain() = %v, %v, %v", xMin, xMax, ok)
	}
}

func TestYDomain(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 3}, [2]float64{1, -2}, [2]float64{2, 8}))
	yMin, yMax, ok := s.YDomain()
	if !ok || yMin != -2 || yMax != 8 {
		t.Fatalf("YDomain() = %v, %v, %v", yMin, yMax, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 1}))
	c := s.Clone()
	c.SetPoint(0, 5)
	c.SetPoint(1, 1)

	if p, _ := s.Point(0); p.Y != 1 || s.Len() != 1 {
		t.Fatal("clone shares storage with the original")
	}
}

func TestPrecisionOption(t *testing.T) {
	s := New(core.WithXPrecision(0))
	s.SetPoint(1.4, 1)
	s.SetPoint(0.6, 2)

	want := pts([2]float64{1, 2})
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPrecisionAccessor(t *testing.T) {
	xp, yp := New(core.WithXPrecision(3), core.WithYPrecision(1)).Precision()
	if xp != 3 || yp != 1 {
		t.Fatalf("Precision() = (%d, %d), want (3, 1)", xp, yp)
	}
}

func TestOutOfRangeX(t *testing.T) {
	s := FromPoints(pts([2]float64{0, 1}, [2]float64{1e17, 5}))
	s.SetPoint(-1e17, 5)
	s.MergeValues(pts([2]float64{2e17, 5}), true)

	if diff := cmp.Diff(pts([2]float64{0, 1}), s.Values()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if _, ok := s.Point(1e17); ok {
		t.Fatal("Point() found an unrepresentable x")
	}
	if s.RemovePoint(1e17) {
		t.Fatal("RemovePoint() removed an unrepresentable x")
	}

	if err := s.GenerateValues(0, 1e17, 1, func(float64) float64 { return 0 }); !errors.Is(err, decimal.ErrOutOfRange) {
		t.Fatalf("GenerateValues() error = %v, want ErrOutOfRange", err)
	}
	if err := s.SetRawValues([][2]any{{"1e17", 1}}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("SetRawValues() error = %v, want ErrInvalidArgument", err)
	}
	if s.Len() != 1 {
		t.Fatalf("failed calls changed the signal: %v", s.Values())
	}
}
