// Package spectrum discretizes an angular power spectrum C_l(z, z') into the
// covariance tensor consumed by the realization pipeline.
//
// 🚀 What does spectrum do?
//
//	Given a pure spectrum function aps(l, z1, z2), a band-limit lmax and an
//	array of auxiliary-coordinate bin centres (redshifts or frequencies),
//	Clarray produces the tensor C[l][i][j] of covariances between every pair
//	of coordinate slices at every multipole.
//
// Two evaluation modes:
//
//   - ZRomb = 0 — point sampling: C[l][i][j] = aps(l, z_i, z_j) exactly,
//     no channel smoothing.
//   - ZRomb = k > 0 — bin averaging: each coordinate is the centre of a
//     finite channel of width ZWidth (default: the gap between the two
//     closest-sorted bin centres); the spectrum is integrated over both
//     channels with 2^k+1-point Romberg quadrature and normalized by the
//     squared channel width.
//
// Memory stays bounded regardless of lmax: the quadrature scratch covers a
// single (i, j) channel pair at a time, never the full multipole ×
// sub-point cross-product.
//
// Complexity: O(lmax · numz² · 4^ZRomb) spectrum evaluations,
// O(numz² · lmax) output, O(4^ZRomb) scratch.
package spectrum
