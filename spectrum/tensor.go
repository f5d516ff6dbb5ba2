package spectrum

import "gonum.org/v1/gonum/mat"

// PowerSpectrum is a pure angular power spectrum: the covariance between the
// harmonic coefficients of two coordinate slices z1 and z2 at multipole l.
// It must be stateless and symmetric in (z1, z2); the caller owns it.
type PowerSpectrum func(l int, z1, z2 float64) float64

// Tensor is the discretized covariance tensor C[l][i][j] for
// l = 0..Lmax, i, j indexing the coordinate array. Values are stored dense
// in double precision; each per-multipole slice is symmetric in (i, j).
// Construct with NewTensor or Clarray.
type Tensor struct {
	lmax int
	numz int
	data []float64
}

// NewTensor allocates a zero-filled covariance tensor of shape
// (lmax+1) × numz × numz. Returns ErrBadShape for a negative lmax or a
// non-positive numz.
func NewTensor(lmax, numz int) (*Tensor, error) {
	if lmax < 0 || numz < 1 {
		return nil, ErrBadShape
	}

	return &Tensor{
		lmax: lmax,
		numz: numz,
		data: make([]float64, (lmax+1)*numz*numz),
	}, nil
}

// Lmax returns the maximum multipole of the tensor.
func (t *Tensor) Lmax() int { return t.lmax }

// NumZ returns the number of coordinate slices.
func (t *Tensor) NumZ() int { return t.numz }

// At returns C[l][i][j]. Returns ErrOutOfRange for indices outside the
// stored shape.
func (t *Tensor) At(l, i, j int) (float64, error) {
	if l < 0 || l > t.lmax || i < 0 || i >= t.numz || j < 0 || j >= t.numz {
		return 0, ErrOutOfRange
	}

	return t.data[(l*t.numz+i)*t.numz+j], nil
}

// Set stores v at C[l][i][j] and, to preserve symmetry, at C[l][j][i].
// Returns ErrOutOfRange for indices outside the stored shape.
func (t *Tensor) Set(l, i, j int, v float64) error {
	if l < 0 || l > t.lmax || i < 0 || i >= t.numz || j < 0 || j >= t.numz {
		return ErrOutOfRange
	}
	t.data[(l*t.numz+i)*t.numz+j] = v
	t.data[(l*t.numz+j)*t.numz+i] = v

	return nil
}

// Sym returns a fresh copy of the multipole-l covariance matrix as a gonum
// symmetric matrix, ready for factorization. Returns ErrOutOfRange when l is
// outside 0..Lmax.
func (t *Tensor) Sym(l int) (*mat.SymDense, error) {
	if l < 0 || l > t.lmax {
		return nil, ErrOutOfRange
	}
	s := mat.NewSymDense(t.numz, nil)
	base := l * t.numz * t.numz
	for i := 0; i < t.numz; i++ {
		for j := i; j < t.numz; j++ {
			s.SetSym(i, j, t.data[base+i*t.numz+j])
		}
	}

	return s, nil
}
