package sphere

// Transformer is the external spherical-harmonic transform engine consumed
// by the realization pipeline. Implementations are pure: no hidden state, no
// I/O, deterministic output for a given input.
//
// All pixel maps are real-valued slices of length Npix(nside) in the
// engine's own pixel ordering; the pipeline never inspects individual
// pixels, it only moves maps between the engine and the caller.
type Transformer interface {
	// Synthesize evaluates the band-limited field described by alm on the
	// pixelized sphere at resolution nside.
	Synthesize(alm *Alm, nside int) ([]float64, error)

	// SynthesizeDeriv evaluates the field together with its two angular
	// derivatives on the unit sphere: value, ∂/∂θ and (1/sin θ)·∂/∂φ.
	SynthesizeDeriv(alm *Alm, nside int) (val, dtheta, dphi []float64, err error)

	// Analyze computes the packed harmonic coefficients of a pixel map up to
	// band-limit lmax.
	Analyze(pixmap []float64, lmax int) (*Alm, error)
}
