package sphere

// AlmSize returns the number of packed coefficients stored for a field
// band-limited at lmax: one complex value per (l, m) with 0 ≤ m ≤ l ≤ lmax,
// i.e. (lmax+1)(lmax+2)/2. Returns 0 for negative lmax.
func AlmSize(lmax int) int {
	if lmax < 0 {
		return 0
	}

	return (lmax + 1) * (lmax + 2) / 2
}

// AlmIndex returns the degree and order of every packed coefficient, in
// storage order: ls[i] and ms[i] give the (l, m) pair of coefficient i.
// The ordering is m-major (for m = 0..lmax, l = m..lmax).
func AlmIndex(lmax int) (ls, ms []int) {
	size := AlmSize(lmax)
	ls = make([]int, 0, size)
	ms = make([]int, 0, size)
	for m := 0; m <= lmax; m++ {
		for l := m; l <= lmax; l++ {
			ls = append(ls, l)
			ms = append(ms, m)
		}
	}

	return ls, ms
}

// Alm holds the packed spherical-harmonic coefficients of one band-limited
// real field, m-major, m ≥ 0 only. The zero value is not usable; construct
// with NewAlm.
type Alm struct {
	lmax int
	data []complex128
}

// NewAlm allocates a zero-filled coefficient vector for band-limit lmax.
// Returns ErrBadLmax if lmax is negative.
func NewAlm(lmax int) (*Alm, error) {
	if lmax < 0 {
		return nil, ErrBadLmax
	}

	return &Alm{lmax: lmax, data: make([]complex128, AlmSize(lmax))}, nil
}

// Lmax returns the band-limit of the coefficient vector.
func (a *Alm) Lmax() int { return a.lmax }

// Len returns the number of packed coefficients.
func (a *Alm) Len() int { return len(a.data) }

// Index returns the packed position of coefficient (l, m), or -1 when the
// pair lies outside the stored triangle. The layout is m-major, so
// Index(l, m) = m(2·lmax+1−m)/2 + l.
func (a *Alm) Index(l, m int) int {
	if m < 0 || l < m || l > a.lmax {
		return -1
	}

	return m*(2*a.lmax+1-m)/2 + l
}

// At returns the coefficient at (l, m). Returns ErrOutOfRange for indices
// outside the stored triangle; it never panics on user input.
func (a *Alm) At(l, m int) (complex128, error) {
	i := a.Index(l, m)
	if i < 0 {
		return 0, ErrOutOfRange
	}

	return a.data[i], nil
}

// SetAt stores v at (l, m). Returns ErrOutOfRange for indices outside the
// stored triangle.
func (a *Alm) SetAt(l, m int, v complex128) error {
	i := a.Index(l, m)
	if i < 0 {
		return ErrOutOfRange
	}
	a.data[i] = v

	return nil
}

// Data returns the backing coefficient slice in storage order. The slice is
// shared, not copied; transform engines use it for bulk access together with
// Index or AlmIndex.
func (a *Alm) Data() []complex128 { return a.data }
