// Package effects groups real-time effect kernels.
//
// Subpackages:
//   - github.com/cwbudde/algo-waveshaper/dsp/effects/waveshaper
//
// Effects have zero-allocation hot paths and support both single-sample
// and block-based processing.
package effects
