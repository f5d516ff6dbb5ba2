// Package realize draws correlated Gaussian sky realizations from covariance
// tensors, with optional spatial derivatives and constrained variants.
//
// 🚀 What does realize do?
//
//	Given a covariance tensor C_l(z, z') from package spectrum and an
//	external spherical-harmonic engine (sphere.Transformer), it produces
//	per-coordinate sky maps whose harmonic coefficients carry exactly the
//	prescribed covariance:
//	  • SynthesizeAlms / Synthesize            — coefficients or pixel maps
//	  • SynthesizeAlmsMulti / SynthesizeMulti  — correlated multi-tracer
//	    realizations sharing one white-noise table
//	  • SynthesizeDeriv / SynthesizeDerivMulti — maps plus angular and
//	    radial derivatives on the comoving-distance grid
//	  • Constrained                            — realizations pinned to
//	    supplied maps on chosen coordinate slices via leading eigenmodes
//
// Statistical contract:
//
//	Per multipole l the covariance matrix is diagonally loaded (1e-14 of its
//	largest diagonal entry), factorized with a rank-preserving fixed-sign
//	square root (package modes), and applied to a numz × (l+1) table of
//	standard complex normal variates. Averaging a_lm(z)·a*_lm(z') over many
//	draws recovers C_l(z, z'). Rank-deficient multipoles yield exactly zero
//	power along their null directions.
//
// Randomness is explicit: every draw flows through a seedable rand.Source
// (Options.Rand), or a caller-built NoiseTable reused verbatim — the
// mechanism behind correlated tracers. No global state is consulted beyond
// the time-seeded fallback when neither is given.
//
// The pipeline is synchronous and purely computational; all validation is
// fail-fast with package-prefixed sentinel errors and no partial results.
package realize
