package signal

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/decimal"
	"github.com/spf13/cast"
)

type sample struct {
	x decimal.Fixed
	y float64
}

// Signal is an x-sorted, x-unique sequence of points with a cached domain,
// a generation step, a read-time offset and an optional generator.
//
// x coordinates must be representable at the signal's x precision (see
// decimal.InRange). Setters without an error return skip points whose x is
// not; lookups of such an x report no point.
//
// A Signal is not safe for concurrent mutation.
type Signal struct {
	cfg    core.Config
	values []sample

	xMin, xMax decimal.Fixed
	step       decimal.Fixed
	offset     float64
	fn         Func
}

// New returns an empty signal.
func New(opts ...core.Option) *Signal {
	return &Signal{cfg: core.ApplyOptions(opts...)}
}

// FromPoints returns a signal holding points; the domain is inferred from the data.
func FromPoints(points []Point, opts ...core.Option) *Signal {
	s := New(opts...)
	s.SetValues(points)
	return s
}

// Config returns the precision settings of the signal.
func (s *Signal) Config() core.Config { return s.cfg }

// Precision returns the decimal places used for x and y.
func (s *Signal) Precision() (x, y int) { return s.cfg.XPrecision, s.cfg.YPrecision }

// Len returns the number of stored points.
func (s *Signal) Len() int { return len(s.values) }

// Step returns the step of the last GenerateValues call, or 0.
func (s *Signal) Step() float64 { return s.step.Float64() }

// Func returns the generator of the last GenerateValues call, or nil.
func (s *Signal) Func() Func { return s.fn }

// TimeOffset returns the read-time x shift.
func (s *Signal) TimeOffset() float64 { return s.offset }

// SetTimeOffset sets the read-time x shift.
func (s *Signal) SetTimeOffset(offset float64) { s.offset = offset }

// Domain returns the cached [xMin, xMax]. ok is false for an empty signal.
func (s *Signal) Domain() (xMin, xMax float64, ok bool) {
	if len(s.values) == 0 {
		return 0, 0, false
	}
	return s.xMin.Float64(), s.xMax.Float64(), true
}

// YDomain returns the smallest and largest y. ok is false for an empty signal.
func (s *Signal) YDomain() (yMin, yMax float64, ok bool) {
	if len(s.values) == 0 {
		return 0, 0, false
	}

	yMin, yMax = s.values[0].y, s.values[0].y
	for _, v := range s.values[1:] {
		yMin = min(yMin, v.y)
		yMax = max(yMax, v.y)
	}
	return yMin, yMax, true
}

// Clone returns a deep copy of s.
func (s *Signal) Clone() *Signal {
	c := *s
	c.values = slices.Clone(s.values)
	return &c
}

// GenerateValues replaces the stored points with (x, fn(x)) for
// x = xMin, xMin+step, ... up to and including xMax, walking the axis in exact
// decimal steps. The previous points are discarded. A step that is not
// positive at the signal's precision leaves the signal unchanged.
func (s *Signal) GenerateValues(xMin, xMax, step float64, fn Func) error {
	st, err := s.fixedE(step)
	if err != nil {
		return fmt.Errorf("signal: step: %w", err)
	}
	if st.Sign() <= 0 {
		return fmt.Errorf("signal: step must be > 0 at %d places: %v: %w", s.cfg.XPrecision, step, core.ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("signal: nil generator: %w", core.ErrInvalidArgument)
	}

	lo, err := s.fixedE(xMin)
	if err != nil {
		return fmt.Errorf("signal: xMin: %w", err)
	}
	hi, err := s.fixedE(xMax)
	if err != nil {
		return fmt.Errorf("signal: xMax: %w", err)
	}
	values := make([]sample, 0, max(decimal.Steps(lo, hi, st)+1, 0))
	for x := lo; x.Cmp(hi) <= 0; x = x.Add(st) {
		values = append(values, sample{x: x, y: s.roundY(fn(x.Float64()))})
	}

	s.values = values
	s.step = st
	s.fn = fn
	s.updateDomain()
	return nil
}

type readConfig struct {
	applyOffset bool
	offset      *float64
	reverse     bool
}

// ReadOption configures Values.
type ReadOption func(*readConfig)

// WithOffset adds the signal's own time offset to every returned x.
func WithOffset() ReadOption {
	return func(rc *readConfig) {
		rc.applyOffset = true
	}
}

// WithOffsetValue adds offset instead of the signal's own time offset.
func WithOffsetValue(offset float64) ReadOption {
	return func(rc *readConfig) {
		rc.applyOffset = true
		rc.offset = &offset
	}
}

// TimeReversed mirrors the signal around x = 0 before any offset is applied.
func TimeReversed() ReadOption {
	return func(rc *readConfig) {
		rc.reverse = true
	}
}

// Values returns a copy of the stored points, optionally time-reversed
// (x -> -x, still ascending) and shifted by a time offset. The stored points
// are never modified.
func (s *Signal) Values(opts ...ReadOption) []Point {
	var rc readConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&rc)
		}
	}

	var shift decimal.Fixed
	if rc.applyOffset {
		off := s.offset
		if rc.offset != nil {
			off = *rc.offset
		}
		shift = s.fixed(off)
	}

	n := len(s.values)
	out := make([]Point, n)
	for i := range s.values {
		v := s.values[i]
		if rc.reverse {
			v = s.values[n-1-i]
			v.x = v.x.Neg()
		}
		if rc.applyOffset {
			v.x = v.x.Add(shift)
		}
		out[i] = Point{X: v.x.Float64(), Y: v.y}
	}
	return out
}

// SetValues replaces the stored points. Coordinates are normalised to the
// signal's precision; when x values collide after rounding the later point wins.
// Points with an unrepresentable x are dropped. The domain is recomputed from
// the new points.
func (s *Signal) SetValues(points []Point) {
	values := make([]sample, 0, len(points))
	for _, p := range points {
		if x, err := s.fixedE(p.X); err == nil {
			values = append(values, sample{x: x, y: s.roundY(p.Y)})
		}
	}
	s.replace(values)
}

// SetRawValues is SetValues for coordinates given as numbers or
// decimal-parseable strings.
func (s *Signal) SetRawValues(pairs [][2]any) error {
	values := make([]sample, len(pairs))
	for i, pair := range pairs {
		x, err := decimal.Parse(pair[0], s.cfg.XPrecision)
		if err != nil {
			return fmt.Errorf("signal: point %d: %w: %w", i, core.ErrInvalidArgument, err)
		}

		y, err := cast.ToFloat64E(pair[1])
		if err != nil {
			return fmt.Errorf("signal: point %d: %w: %w", i, core.ErrInvalidArgument, err)
		}

		values[i] = sample{x: x, y: s.roundY(y)}
	}

	s.replace(values)
	return nil
}

func (s *Signal) replace(values []sample) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].x.Cmp(values[j].x) < 0
	})

	// keep the last of each run of equal x
	out := values[:0]
	for i, v := range values {
		if i+1 < len(values) && values[i+1].x == v.x {
			continue
		}
		out = append(out, v)
	}

	s.values = out
	s.updateDomain()
}

// Point returns the point stored at x, if any.
func (s *Signal) Point(x float64) (Point, bool) {
	fx, err := s.fixedE(x)
	if err != nil {
		return Point{}, false
	}
	i, ok := s.search(fx)
	if !ok {
		return Point{}, false
	}
	v := s.values[i]
	return Point{X: v.x.Float64(), Y: v.y}, true
}

// SetPoint overwrites the y stored at x or inserts a new point in sorted
// position. An unrepresentable x leaves the signal unchanged.
func (s *Signal) SetPoint(x, y float64) {
	s.SetPoints([]Point{{X: x, Y: y}})
}

// SetPoints calls SetPoint for every point in order.
func (s *Signal) SetPoints(points []Point) {
	s.MergeValues(points, true)
}

// RemovePoint deletes the point at x and reports whether one existed.
func (s *Signal) RemovePoint(x float64) bool {
	fx, err := s.fixedE(x)
	if err != nil {
		return false
	}
	i, ok := s.search(fx)
	if !ok {
		return false
	}
	s.values = slices.Delete(s.values, i, i+1)
	s.updateDomain()
	return true
}

// MergeValues inserts every point whose x is not stored yet. Existing points
// get the incoming y only when override is true. Points with an
// unrepresentable x are skipped.
func (s *Signal) MergeValues(points []Point, override bool) {
	for _, p := range points {
		if x, err := s.fixedE(p.X); err == nil {
			s.set(x, s.roundY(p.Y), override)
		}
	}
	s.updateDomain()
}

// PointsInRange returns the stored points with x in [xMin, xMax] after
// clamping the bounds to the signal's domain. Reversed bounds are swapped.
func (s *Signal) PointsInRange(xMin, xMax float64) []Point {
	if len(s.values) == 0 {
		return nil
	}

	lo, hi := s.fixed(xMin), s.fixed(xMax)
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	if lo.Cmp(s.xMin) < 0 {
		lo = s.xMin
	}
	if hi.Cmp(s.xMax) > 0 {
		hi = s.xMax
	}

	start := sort.Search(len(s.values), func(i int) bool {
		return s.values[i].x.Cmp(lo) >= 0
	})
	end := sort.Search(len(s.values), func(i int) bool {
		return s.values[i].x.Cmp(hi) > 0
	})
	if start >= end {
		return []Point{}
	}

	out := make([]Point, 0, end-start)
	for _, v := range s.values[start:end] {
		out = append(out, Point{X: v.x.Float64(), Y: v.y})
	}
	return out
}

func (s *Signal) set(x decimal.Fixed, y float64, overwrite bool) {
	i, ok := s.search(x)
	if ok {
		if overwrite {
			s.values[i].y = y
		}
		return
	}
	s.values = slices.Insert(s.values, i, sample{x: x, y: y})
}

// search returns the index of x, or its insertion index when absent.
func (s *Signal) search(x decimal.Fixed) (int, bool) {
	i := sort.Search(len(s.values), func(i int) bool {
		return s.values[i].x.Cmp(x) >= 0
	})
	return i, i < len(s.values) && s.values[i].x == x
}

func (s *Signal) updateDomain() {
	if len(s.values) == 0 {
		s.xMin, s.xMax = decimal.Fixed{}, decimal.Fixed{}
		return
	}
	s.xMin = s.values[0].x
	s.xMax = s.values[len(s.values)-1].x
}

// fixed saturates out-of-range x at ±decimal.MaxUnits.
func (s *Signal) fixed(x float64) decimal.Fixed {
	return decimal.FromFloat(x, s.cfg.XPrecision)
}

func (s *Signal) fixedE(x float64) (decimal.Fixed, error) {
	return decimal.FromFloatE(x, s.cfg.XPrecision)
}

func (s *Signal) roundY(y float64) float64 {
	return core.Round(y, s.cfg.YPrecision)
}
