package realize

import "errors"

var (
	// ErrNoTensors indicates an empty or nil covariance tensor list.
	ErrNoTensors = errors.New("realize: at least one covariance tensor is required")
	// ErrShapeMismatch indicates covariance tensors (or a supplied noise
	// table) that disagree on band-limit or coordinate count.
	ErrShapeMismatch = errors.New("realize: covariance tensor shapes disagree")
	// ErrNilTransformer indicates a nil spherical-harmonic engine.
	ErrNilTransformer = errors.New("realize: transformer must not be nil")
	// ErrBadDistances indicates a comoving-distance array that does not match
	// the coordinate count, has fewer than two slices, or non-positive entries.
	ErrBadDistances = errors.New("realize: comoving distances must be positive, one per coordinate slice, at least two")
	// ErrNoConstraints indicates an empty constraint set.
	ErrNoConstraints = errors.New("realize: at least one constraint is required")
	// ErrTooManyConstraints indicates more constraints than coordinate slices.
	ErrTooManyConstraints = errors.New("realize: constraint count exceeds coordinate count")
	// ErrConstraintIndex indicates a constrained slice index outside the
	// coordinate range.
	ErrConstraintIndex = errors.New("realize: constraint slice index out of range")
	// ErrSingularConstraints indicates a degenerate constraint placement: the
	// per-multipole constraint system is singular and no least-squares
	// fallback exists by design.
	ErrSingularConstraints = errors.New("realize: constraint system is singular")
)
