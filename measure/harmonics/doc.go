// Package harmonics measures the harmonic distortion a per-sample processor
// adds to a sine.
//
// A bin-centred test tone is driven through the processor, windowed and
// transformed; the levels at integer multiples of the fundamental bin are
// reported relative to the fundamental.
package harmonics
