package realize

import "github.com/katalvlaran/skysim/sphere"

// MapStack is a pixel-map stack: one real-valued sky map per coordinate
// slice, MapStack[z][pixel].
type MapStack [][]float64

// AlmStack is a harmonic-coefficient stack: one packed coefficient vector
// per coordinate slice.
type AlmStack []*sphere.Alm

// DerivStack bundles a realization with its spatial derivatives, each a
// per-coordinate pixel-map stack:
//
//   - Value   — the field itself
//   - DTheta  — polar-angle derivative, scaled by 1/r for the slice's
//     comoving distance r
//   - DPhi    — azimuthal derivative, scaled the same way
//   - DRadial — finite-difference derivative along the comoving-distance axis
type DerivStack struct {
	Value   MapStack
	DTheta  MapStack
	DPhi    MapStack
	DRadial MapStack
}

// Constraint pins one coordinate slice of a constrained realization to a
// fixed pixel map. The map is harmonic-analyzed before use, so it binds the
// output only up to the band-limit.
type Constraint struct {
	Slice int
	Map   []float64
}
