package realize

// Private hooks re-exported for white-box tests only.

// RadialGradient exposes the non-uniform finite-difference kernel.
var RadialGradient = radialGradient

// At exposes a single noise-table variate.
func (t *NoiseTable) At(l, z, m int) complex128 { return t.at(l, z, m) }
