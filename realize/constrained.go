package realize

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/skysim/modes"
	"github.com/katalvlaran/skysim/spectrum"
	"github.com/katalvlaran/skysim/sphere"
)

// Constrained builds a full pixel-map stack whose constrained coordinate
// slices reproduce the supplied fixed maps (up to the band-limit) while the
// remaining slices carry the statistically consistent projection.
//
// Per multipole l the covariance matrix contributes its len(cons) leading
// eigenvectors; restricting them to the constrained slices gives a square
// system whose exact solution fixes the mode amplitudes, and projecting the
// amplitudes back across every slice extends the constraints over the whole
// coordinate range. The subspace is sized exactly to the constraint count,
// so a singular system (degenerate constraint placement) is fatal — there is
// no least-squares fallback. The monopole is forced to zero amplitude
// unconditionally, a zero-mean-field convention independent of the
// constraint data.
//
// Errors: ErrNoTensors, ErrNilTransformer, ErrNoConstraints,
// ErrTooManyConstraints, ErrConstraintIndex, ErrSingularConstraints, plus
// wrapped analysis/synthesis failures from the engine.
func Constrained(corr *spectrum.Tensor, cons []Constraint, tr sphere.Transformer, nside int) (MapStack, error) {
	if corr == nil {
		return nil, ErrNoTensors
	}
	if tr == nil {
		return nil, ErrNilTransformer
	}
	nmodes := len(cons)
	if nmodes == 0 {
		return nil, ErrNoConstraints
	}
	lmax, numz := corr.Lmax(), corr.NumZ()
	if nmodes > numz {
		return nil, ErrTooManyConstraints
	}
	for _, c := range cons {
		if c.Slice < 0 || c.Slice >= numz {
			return nil, ErrConstraintIndex
		}
	}

	// Switch the constraint maps into harmonic space.
	calm := make([]*sphere.Alm, nmodes)
	for k, c := range cons {
		alm, err := tr.Analyze(c.Map, lmax)
		if err != nil {
			return nil, fmt.Errorf("realize: constraint %d analysis: %w", k, err)
		}
		calm[k] = alm
	}

	alms := make(AlmStack, numz)
	for z := range alms {
		alm, err := sphere.NewAlm(lmax)
		if err != nil {
			return nil, err
		}
		alms[z] = alm
	}

	bre := mat.NewVecDense(nmodes, nil)
	bim := mat.NewVecDense(nmodes, nil)
	xre := mat.NewVecDense(nmodes, nil)
	xim := mat.NewVecDense(nmodes, nil)
	sys := mat.NewDense(nmodes, nmodes, nil)

	// Multipole zero is skipped: its amplitudes stay at zero regardless of
	// the constraint content.
	for l := 1; l <= lmax; l++ {
		sym, err := corr.Sym(l)
		if err != nil {
			return nil, err
		}
		basis, err := modes.Eigenbasis(sym, nmodes)
		if err != nil {
			return nil, fmt.Errorf("realize: eigenmodes at l=%d: %w", l, err)
		}

		// sys·a = c with sys[k][mode] = basis[constrained slice k][mode].
		for k, c := range cons {
			for mode := 0; mode < nmodes; mode++ {
				sys.Set(k, mode, basis.At(c.Slice, mode))
			}
		}
		var lu mat.LU
		lu.Factorize(sys)

		for m := 0; m <= l; m++ {
			for k := range calm {
				v, err := calm[k].At(l, m)
				if err != nil {
					return nil, err
				}
				bre.SetVec(k, real(v))
				bim.SetVec(k, imag(v))
			}
			if err := lu.SolveVecTo(xre, false, bre); err != nil {
				return nil, fmt.Errorf("realize: constraint system at l=%d: %w", l, ErrSingularConstraints)
			}
			if err := lu.SolveVecTo(xim, false, bim); err != nil {
				return nil, fmt.Errorf("realize: constraint system at l=%d: %w", l, ErrSingularConstraints)
			}

			for z := 0; z < numz; z++ {
				var re, im float64
				for mode := 0; mode < nmodes; mode++ {
					re += basis.At(z, mode) * xre.AtVec(mode)
					im += basis.At(z, mode) * xim.AtVec(mode)
				}
				alms[z].Data()[alms[z].Index(l, m)] = complex(re, im)
			}
		}
	}

	maps := make(MapStack, numz)
	for z, alm := range alms {
		pix, err := tr.Synthesize(alm, nside)
		if err != nil {
			return nil, fmt.Errorf("realize: synthesis at slice %d: %w", z, err)
		}
		maps[z] = pix
	}

	return maps, nil
}
