package modes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/skysim/modes"
)

// reconstruct returns T·Tᵀ as a dense matrix.
func reconstruct(tr *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(tr, tr.T())

	return &out
}

// assertReconstructs checks T·Tᵀ ≈ want element-wise.
func assertReconstructs(t *testing.T, want mat.Matrix, tr *mat.Dense, tol float64) {
	t.Helper()
	got := reconstruct(tr)
	r, c := want.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), tol, "element (%d,%d)", i, j)
		}
	}
}

// TestRoot_FullRank verifies T·Tᵀ = M for a well-conditioned covariance.
func TestRoot_FullRank(t *testing.T) {
	m := mat.NewSymDense(3, []float64{
		4.0, 1.2, 0.5,
		1.2, 3.0, 0.8,
		0.5, 0.8, 2.0,
	})

	tr, err := modes.Root(m, nil)
	require.NoError(t, err)

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c, "non-truncating root keeps the coordinate-axis shape")
	assertReconstructs(t, m, tr, 1e-12)
}

// TestRoot_RankDeficient checks that an exactly singular matrix (a rank-one
// outer product) still reconstructs, with the null directions mapped to
// exact-zero columns rather than dropped.
func TestRoot_RankDeficient(t *testing.T) {
	// vvᵀ with v = (1, 2, 3): rank one.
	v := []float64{1, 2, 3}
	m := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			m.SetSym(i, j, v[i]*v[j])
		}
	}

	tr, err := modes.Root(m, &modes.Options{Threshold: 1e-12})
	require.NoError(t, err)
	assertReconstructs(t, m, tr, 1e-10)

	// Exactly one non-zero column: the other two must be identically zero.
	nonzero := 0
	for j := 0; j < 3; j++ {
		norm := 0.0
		for i := 0; i < 3; i++ {
			norm += tr.At(i, j) * tr.At(i, j)
		}
		if norm > 0 {
			nonzero++
		}
	}
	assert.Equal(t, 1, nonzero, "null directions contribute exact-zero columns")
}

// TestRoot_OneByOne covers the numz = 1 degenerate shape: the root of a 1×1
// matrix is its non-negative square root.
func TestRoot_OneByOne(t *testing.T) {
	m := mat.NewSymDense(1, []float64{2.25})

	tr, err := modes.Root(m, nil)
	require.NoError(t, err)

	r, c := tr.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.InDelta(t, 1.5, math.Abs(tr.At(0, 0)), 1e-14)
}

// TestRoot_Truncate verifies that truncation removes null columns, reducing
// the column count to the numerical rank.
func TestRoot_Truncate(t *testing.T) {
	v := []float64{1, -1, 2}
	m := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			m.SetSym(i, j, v[i]*v[j])
		}
	}

	tr, err := modes.Root(m, &modes.Options{Truncate: true, Threshold: 1e-12})
	require.NoError(t, err)

	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c, "truncation keeps only the retained modes")
	assertReconstructs(t, m, tr, 1e-10)
}

// TestRoot_NegativeEigenvalueClamped pins down the indefinite-input
// behavior: negative directions are clamped to zero, never NaN. For
// M = [[1,2],[2,1]] (eigenvalues 3 and -1) the root must reconstruct the
// positive part, the constant matrix 1.5.
func TestRoot_NegativeEigenvalueClamped(t *testing.T) {
	m := mat.NewSymDense(2, []float64{1, 2, 2, 1})

	tr, err := modes.Root(m, nil)
	require.NoError(t, err)

	got := reconstruct(tr)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.False(t, math.IsNaN(got.At(i, j)), "no NaN from negative eigenvalues")
			assert.InDelta(t, 1.5, got.At(i, j), 1e-12, "positive part of the indefinite input")
		}
	}
}

// TestRoot_FixedSignDeterministic verifies the deterministic sign
// convention: repeated factorizations agree element-wise and each column's
// largest-magnitude entry is non-negative.
func TestRoot_FixedSignDeterministic(t *testing.T) {
	m := mat.NewSymDense(3, []float64{
		2.0, -0.3, 0.1,
		-0.3, 1.5, 0.4,
		0.1, 0.4, 1.0,
	})
	o := &modes.Options{FixedSign: true}

	a, err := modes.Root(m, o)
	require.NoError(t, err)
	b, err := modes.Root(m, o)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j), b.At(i, j), "fixed-sign root must be reproducible")
		}
	}

	for j := 0; j < 3; j++ {
		pivot, best := 0.0, 0.0
		for i := 0; i < 3; i++ {
			if v := math.Abs(a.At(i, j)); v > best {
				pivot, best = a.At(i, j), v
			}
		}
		if best > 0 {
			assert.GreaterOrEqual(t, pivot, 0.0, "column %d pivot sign", j)
		}
	}
}

// TestRoot_Validation covers the fail-fast checks.
func TestRoot_Validation(t *testing.T) {
	_, err := modes.Root(nil, nil)
	assert.ErrorIs(t, err, modes.ErrNilMatrix)

	m := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	_, err = modes.Root(m, &modes.Options{Threshold: -1})
	assert.ErrorIs(t, err, modes.ErrBadThreshold)
}

// TestJitter verifies the diagonal loading used ahead of factorization.
func TestJitter(t *testing.T) {
	m := mat.NewSymDense(2, []float64{4, 1, 1, 2})
	modes.Jitter(m, 1e-14)

	assert.InDelta(t, 4+4e-14, m.At(0, 0), 1e-28)
	assert.InDelta(t, 2+4e-14, m.At(1, 1), 1e-28)
	assert.Equal(t, 1.0, m.At(0, 1), "off-diagonal untouched")

	modes.Jitter(nil, 1e-14) // no-op, must not panic
}

// TestEigenbasis verifies that the leading eigenvectors come back in
// ascending eigenvalue order with unit norm.
func TestEigenbasis(t *testing.T) {
	// diag(1, 5, 3): leading two modes belong to eigenvalues 3 and 5.
	m := mat.NewSymDense(3, []float64{1, 0, 0, 0, 5, 0, 0, 0, 3})

	basis, err := modes.Eigenbasis(m, 2)
	require.NoError(t, err)

	r, c := basis.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	// Column 0 ↔ eigenvalue 3 ↔ axis 2; column 1 ↔ eigenvalue 5 ↔ axis 1.
	assert.InDelta(t, 1.0, math.Abs(basis.At(2, 0)), 1e-12)
	assert.InDelta(t, 1.0, math.Abs(basis.At(1, 1)), 1e-12)

	_, err = modes.Eigenbasis(m, 0)
	assert.ErrorIs(t, err, modes.ErrBadModes)
	_, err = modes.Eigenbasis(m, 4)
	assert.ErrorIs(t, err, modes.ErrBadModes)
	_, err = modes.Eigenbasis(nil, 1)
	assert.ErrorIs(t, err, modes.ErrNilMatrix)
}
