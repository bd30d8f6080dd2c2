// Package correlation builds the noisy-signal scenarios of the correlation
// lesson and measures how well two point sequences line up.
//
// Randomness is always injected as a *rand.Rand so a scenario can be replayed.
// Functions accept a nil generator and fall back to one seeded from
// [core.Config.Seed].
package correlation
