package sphere

import "errors"

var (
	// ErrBadLmax indicates a negative band-limit.
	ErrBadLmax = errors.New("sphere: band-limit lmax must be non-negative")
	// ErrBadNside indicates a resolution parameter that is not a positive power of two.
	ErrBadNside = errors.New("sphere: nside must be a positive power of two")
	// ErrOutOfRange indicates an (l, m) pair outside the stored triangle.
	ErrOutOfRange = errors.New("sphere: (l, m) index out of range")
)
