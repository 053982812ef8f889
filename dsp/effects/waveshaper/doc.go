// Package waveshaper implements a per-sample nonlinear distortion unit for
// real-time audio chains.
//
// A WaveShaper drives each input sample into one of a closed set of transfer
// curves and crossfades the result with the dry input:
//
//	out = (1-mix)*x + mix*curve(x*drive)
//
// Processing has zero latency and keeps one scalar of state per channel. The
// per-sample and per-block paths never allocate, lock or perform I/O.
// Configuration is not synchronized against processing; hosts change
// parameters between blocks.
//
// Preconditions (valid channel index, a positive sample rate and channel
// count at Prepare, matching block dimensions) are programming errors. They
// panic with a *contract.Violation unless built with the dspnoassert tag, in
// which case they are not checked.
package waveshaper
