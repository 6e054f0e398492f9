// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package does not implement an FFT itself. It operates on complex
// bins produced by an FFT backend and provides magnitude, power, frequency
// axis and level-crossing helpers.
package spectrum
