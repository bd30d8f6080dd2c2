// Package signal models sampled and drawn waveforms as ordered point
// sequences on an exact decimal x-axis.
//
// A [Signal] keeps its points sorted by x with no duplicate x. Coordinates are
// normalised on the way in: x is rounded to the configured number of decimal
// places (see [core.WithXPrecision]) and held as a [decimal.Fixed], so lookups
// by x are exact even after thousands of step increments. Stored y values are
// rounded to [core.Config.YPrecision] places.
//
// The time offset of a signal is a read-time shift. It is applied by
// [Signal.Values] when requested and never written back into the stored
// points.
//
// Generators for the canned waveforms of the visualizer (sine, rectangle,
// sawtooth, triangle, exponential, impulse) are provided as [Func] values for
// use with [Signal.GenerateValues].
package signal
