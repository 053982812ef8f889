// Package fastmath provides fast approximations for transcendental functions
// used by waveshaping curves.
//
// These approximations trade a small amount of accuracy for speed in
// per-sample loops. For IEEE 754 precision use the standard library math
// package instead.
//
// # Accuracy Characteristics
//
// Tanh: built on approx.FastExp, absolute error below 2e-3 on [-20, 20],
// exact saturation to ±1 outside that range.
package fastmath
