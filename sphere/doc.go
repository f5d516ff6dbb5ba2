// Package sphere defines the pixelization and harmonic-coefficient
// conventions consumed by the realization pipeline, and the Transformer
// interface through which an external spherical-harmonic transform engine
// is plugged in.
//
// 🚀 What does sphere provide?
//
//   - Npix — HEALPix-style pixel count for a resolution parameter nside
//   - AlmSize / AlmIndex — packed coefficient count and (l, m) index arrays
//     for a band-limit lmax under the half-coefficient (m ≥ 0) convention
//   - Alm — a packed complex coefficient vector for one band-limited map
//   - Transformer — the external analysis/synthesis engine contract
//
// Storage convention:
//
//	Coefficients are packed m-major: for m = 0..lmax, l = m..lmax, matching
//	the common HEALPix ordering. For a real field only m ≥ 0 is stored; the
//	negative orders follow from conjugate symmetry and are the engine's
//	concern, not this package's.
//
// No transform engine ships here. The analysis and synthesis transforms are
// external collaborators with no hidden state; any implementation satisfying
// Transformer (a HEALPix binding, a Driscoll–Healy grid, a test double) slots
// in unchanged.
package sphere
