package modes

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultThreshold is the relative eigenvalue cutoff below which a direction
// is treated as null.
const DefaultThreshold = 1e-16

// Options configures the square-root factorization.
//
// Fields:
//   - Threshold — relative eigenvalue cutoff: eigenvalues below
//     Threshold × |largest| count as null. 0 means DefaultThreshold.
//   - Truncate  — drop null columns instead of zeroing them; the result then
//     has one column per retained mode rather than per coordinate.
//   - FixedSign — normalize each eigenvector so its largest-magnitude
//     component is non-negative, making the factorization deterministic
//     across calls. Required when one noise draw is shared between several
//     related covariance tensors.
type Options struct {
	Threshold float64
	Truncate  bool
	FixedSign bool
}

// DefaultOptions returns the non-truncating, free-sign defaults with
// DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Root computes a real factor T of the symmetric matrix m with T·Tᵀ ≈ m.
//
// The factorization diagonalizes m and scales each eigenvector by the square
// root of its eigenvalue. Eigenvalues below the threshold — including any
// negative ones — contribute exact-zero columns, so applying T to a noise
// vector yields zero variance along those directions rather than an
// undefined value. With Truncate the null columns are removed instead and T
// has shape dim × rank; by default T is square (dim × dim).
//
// Errors: ErrNilMatrix, ErrBadThreshold, ErrNotDecomposable.
func Root(m *mat.SymDense, opts *Options) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Threshold < 0 {
		return nil, ErrBadThreshold
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}

	n := m.SymmetricDim()
	var eig mat.EigenSym
	if !eig.Factorize(m, true) {
		return nil, ErrNotDecomposable
	}
	vals := eig.Values(nil) // ascending order
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	if o.FixedSign {
		fixSigns(&vecs, n)
	}

	// Null directions: everything below the relative cutoff, negative
	// eigenvalues included. The bound follows the largest eigenvalue.
	bound := o.Threshold * math.Abs(vals[n-1])
	kept := make([]int, 0, n)
	for j, v := range vals {
		if v > bound {
			kept = append(kept, j)
		}
	}

	if o.Truncate {
		tr := mat.NewDense(n, len(kept), nil)
		for c, j := range kept {
			s := math.Sqrt(vals[j])
			for i := 0; i < n; i++ {
				tr.Set(i, c, s*vecs.At(i, j))
			}
		}

		return tr, nil
	}

	tr := mat.NewDense(n, n, nil)
	for _, j := range kept {
		s := math.Sqrt(vals[j])
		for i := 0; i < n; i++ {
			tr.Set(i, j, s*vecs.At(i, j))
		}
	}

	return tr, nil
}

// Jitter adds eps × max(diagonal) to the diagonal of m in place, nudging a
// borderline positive semi-definite matrix away from numerically negative
// eigenvalues before factorization.
func Jitter(m *mat.SymDense, eps float64) {
	if m == nil {
		return
	}
	n := m.SymmetricDim()
	maxd := math.Inf(-1)
	for i := 0; i < n; i++ {
		if d := m.At(i, i); d > maxd {
			maxd = d
		}
	}
	load := eps * maxd
	for i := 0; i < n; i++ {
		m.SetSym(i, i, m.At(i, i)+load)
	}
}

// Eigenbasis returns the nmodes eigenvectors of m with the largest
// eigenvalues as the columns of a dim × nmodes matrix, in ascending
// eigenvalue order.
//
// Errors: ErrNilMatrix, ErrBadModes, ErrNotDecomposable.
func Eigenbasis(m *mat.SymDense, nmodes int) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.SymmetricDim()
	if nmodes < 1 || nmodes > n {
		return nil, ErrBadModes
	}

	var eig mat.EigenSym
	if !eig.Factorize(m, true) {
		return nil, ErrNotDecomposable
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	basis := mat.NewDense(n, nmodes, nil)
	for c := 0; c < nmodes; c++ {
		j := n - nmodes + c // largest eigenvalues sit at the end
		for i := 0; i < n; i++ {
			basis.Set(i, c, vecs.At(i, j))
		}
	}

	return basis, nil
}

// fixSigns flips each eigenvector so its largest-magnitude component is
// non-negative. Ties resolve to the lowest row index, keeping the
// convention deterministic.
func fixSigns(vecs *mat.Dense, n int) {
	for j := 0; j < n; j++ {
		pivot, best := 0, 0.0
		for i := 0; i < n; i++ {
			if a := math.Abs(vecs.At(i, j)); a > best {
				pivot, best = i, a
			}
		}
		if vecs.At(pivot, j) < 0 {
			for i := 0; i < n; i++ {
				vecs.Set(i, j, -vecs.At(i, j))
			}
		}
	}
}
