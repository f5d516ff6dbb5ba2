package realize

import "golang.org/x/exp/rand"

// jitterEps is the relative diagonal loading applied to every per-multipole
// covariance matrix before factorization, guarding against borderline
// positive semi-definiteness from floating-point integration error.
const jitterEps = 1e-14

// Options configures a synthesis call.
//
// Fields:
//   - Rand  — seedable source for the white-noise draw. nil falls back to a
//     time-seeded source; pass an explicit source for reproducible output.
//   - Noise — precomputed white-noise table reused verbatim instead of
//     drawing. Its shape must match the covariance tensors. Reusing one
//     table across calls (or across the tensors of a Multi call) is how
//     correlated realizations share their randomness.
//
// Noise takes precedence over Rand when both are set.
type Options struct {
	Rand  rand.Source
	Noise *NoiseTable
}

// DefaultOptions returns the default synthesis settings: draw fresh noise
// from a time-seeded source.
func DefaultOptions() Options {
	return Options{}
}
