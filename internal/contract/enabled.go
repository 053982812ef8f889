//go:build !dspnoassert

package contract

// Enabled reports whether checks are compiled in.
const Enabled = true
