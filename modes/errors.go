package modes

import "errors"

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("modes: input matrix must not be nil")
	// ErrBadThreshold indicates a negative eigenvalue cutoff.
	ErrBadThreshold = errors.New("modes: threshold must be non-negative")
	// ErrBadModes indicates a requested mode count outside 1..dim.
	ErrBadModes = errors.New("modes: mode count must be between 1 and the matrix dimension")
	// ErrNotDecomposable indicates that the symmetric eigendecomposition
	// failed to converge even after regularization.
	ErrNotDecomposable = errors.New("modes: eigendecomposition failed to converge")
)
