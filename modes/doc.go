// Package modes factorizes symmetric covariance matrices into the real
// transforms that drive correlated Gaussian synthesis.
//
// 🚀 What does modes provide?
//
//   - Root — a symmetric square-root-style factorization T with T·Tᵀ ≈ M
//     that keeps null and negative eigendirections as exact-zero columns
//     instead of dropping them, so rank-deficient covariances (common at
//     high multipole with few coordinate slices) stay shape-compatible and
//     map noise along dead directions to exactly zero variance.
//   - Jitter — diagonal loading against borderline positive
//     semi-definiteness caused by floating-point integration error.
//   - Eigenbasis — the leading eigenvectors of a covariance matrix, used by
//     the constrained projector to span its low-rank mode subspace.
//
// Options:
//
//   - Truncate  — drop near-null columns instead of zeroing them (reduced
//     column count; off by default to preserve the coordinate-axis shape).
//   - FixedSign — deterministic eigenvector sign convention; required when
//     one white-noise draw is reapplied to several related covariance
//     tensors and the outputs must be consistently signed.
//   - Threshold — relative eigenvalue cutoff below which a direction counts
//     as null (default 1e-16 of the largest eigenvalue).
//
// Negative eigenvalues are clamped to zero, never propagated as NaN: an
// indefinite input yields the square root of its positive part.
//
// Built on gonum's dense symmetric eigendecomposition (mat.EigenSym).
package modes
