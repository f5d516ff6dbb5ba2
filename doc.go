// Package skysim generates statistically correlated Gaussian random fields
// on the sphere, indexed by an auxiliary coordinate (redshift or frequency),
// for synthetic sky-map realizations in large-scale structure simulation.
//
// 🚀 What is skysim?
//
//	A pure, in-memory numeric library that turns an angular power spectrum
//	C_l(z, z') into pixelized sky realizations with exactly that covariance:
//	  • spectrum/ — Romberg-integrated covariance tensors from analytic spectra
//	  • modes/    — rank-preserving symmetric matrix square roots (eigenbasis)
//	  • sphere/   — HEALPix-style pixel counts, a_lm packing, SHT interfaces
//	  • realize/  — correlated realizations, derivatives, constrained maps
//
// ✨ Why choose skysim?
//
//   - Exact statistics — the factorized transform reproduces the prescribed
//     covariance per multipole, rank-deficient matrices included
//   - Deterministic — explicit seedable random sources, no global state
//   - Fail-fast — strict validation, package-prefixed sentinel errors
//   - Pure Go on gonum — no cgo, no hidden transforms, SHT engine pluggable
//
// Typical flow:
//
//	cl, _   := spectrum.Clarray(aps, lmax, zarr, nil)   // C_l(z, z') tensor
//	maps, _ := realize.Synthesize(cl, sht, nside, nil)  // correlated sky maps
//
// The spherical-harmonic transform engine is an external collaborator,
// consumed through the sphere.Transformer interface; callers pass and receive
// in-memory numeric arrays only. See each package's doc.go for details.
package skysim
