// Package interp reconstructs curves from point sequences.
//
// Available methods:
//
//   - [Newton]:             polynomial through every knot, from divided differences
//   - [ZeroOrderHold]:      rectangular hold kernel, evaluated at one instant
//   - [FirstOrderHold]:     triangular (linear) hold kernel, evaluated at one instant
//   - [Reconstruct]:        either hold kernel swept across a decimal grid
//   - [ZeroOrderHoldLine]:  staircase polyline for plotting held samples
//   - [Upsample]:           4-point cubic Hermite upsampling of uniform samples
//
// Hold reconstructions treat samples as uniformly spaced by period starting
// at the x of the first sample; the x values of later samples are not read.
package interp
