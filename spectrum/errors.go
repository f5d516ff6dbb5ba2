package spectrum

import "errors"

var (
	// ErrNilSpectrum indicates a nil angular power spectrum function.
	ErrNilSpectrum = errors.New("spectrum: power spectrum function must not be nil")
	// ErrBadShape indicates a negative band-limit or an empty coordinate array.
	ErrBadShape = errors.New("spectrum: lmax must be non-negative and zarr non-empty")
	// ErrDegenerateGrid indicates that a channel width must be inferred but the
	// coordinate array has fewer than two distinct values.
	ErrDegenerateGrid = errors.New("spectrum: cannot infer channel width from fewer than two distinct coordinates")
	// ErrBadOrder indicates a negative Romberg refinement level.
	ErrBadOrder = errors.New("spectrum: Romberg order must be non-negative")
	// ErrBadWidth indicates a negative explicit channel width.
	ErrBadWidth = errors.New("spectrum: channel width must be positive")
	// ErrOutOfRange indicates a tensor index outside the stored shape.
	ErrOutOfRange = errors.New("spectrum: tensor index out of range")
)
