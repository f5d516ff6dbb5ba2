package realize

import (
	"fmt"

	"github.com/katalvlaran/skysim/modes"
	"github.com/katalvlaran/skysim/spectrum"
	"github.com/katalvlaran/skysim/sphere"
)

// SynthesizeAlms draws one Gaussian realization of the covariance tensor
// corr and returns its harmonic coefficients, one packed vector per
// coordinate slice. No pixelization takes place.
func SynthesizeAlms(corr *spectrum.Tensor, opts *Options) (AlmStack, error) {
	stacks, err := SynthesizeAlmsMulti([]*spectrum.Tensor{corr}, opts)
	if err != nil {
		return nil, err
	}

	return stacks[0], nil
}

// SynthesizeAlmsMulti draws correlated realizations of several covariance
// tensors from a single white-noise table and returns their harmonic
// coefficients, one stack per tensor in input order. Sharing the draw is
// what correlates the outputs; the tensors must agree on band-limit and
// coordinate count.
//
// Per multipole the covariance matrix is diagonally loaded, factorized with
// a rank-preserving fixed-sign square root, and applied to the noise table.
//
// Errors: ErrNoTensors, ErrShapeMismatch, and factorization failures from
// package modes.
func SynthesizeAlmsMulti(corrs []*spectrum.Tensor, opts *Options) ([]AlmStack, error) {
	if len(corrs) == 0 {
		return nil, ErrNoTensors
	}
	for _, c := range corrs {
		if c == nil {
			return nil, ErrNoTensors
		}
	}
	lmax, numz := corrs[0].Lmax(), corrs[0].NumZ()
	for _, c := range corrs[1:] {
		if c.Lmax() != lmax || c.NumZ() != numz {
			return nil, ErrShapeMismatch
		}
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	noise := o.Noise
	if noise == nil {
		var err error
		if noise, err = NewNoiseTable(lmax, numz, o.Rand); err != nil {
			return nil, err
		}
	} else if noise.Lmax() != lmax || noise.NumZ() != numz {
		return nil, ErrShapeMismatch
	}

	stacks := make([]AlmStack, len(corrs))
	for ii := range stacks {
		st := make(AlmStack, numz)
		for z := range st {
			alm, err := sphere.NewAlm(lmax)
			if err != nil {
				return nil, err
			}
			st[z] = alm
		}
		stacks[ii] = st
	}

	// The same noise block drives every tensor at a given multipole; the
	// fixed eigenvector sign convention keeps the correlated outputs
	// consistently signed across tensors.
	rootOpts := modes.Options{FixedSign: true}

	for l := 0; l <= lmax; l++ {
		for ii, c := range corrs {
			s, err := c.Sym(l)
			if err != nil {
				return nil, err
			}
			modes.Jitter(s, jitterEps)
			tr, err := modes.Root(s, &rootOpts)
			if err != nil {
				return nil, fmt.Errorf("realize: factorization at l=%d: %w", l, err)
			}

			st := stacks[ii]
			for z := 0; z < numz; z++ {
				data := st[z].Data()
				for m := 0; m <= l; m++ {
					var re, im float64
					for k := 0; k < numz; k++ {
						t := tr.At(z, k)
						g := noise.at(l, k, m)
						re += t * real(g)
						im += t * imag(g)
					}
					data[st[z].Index(l, m)] = complex(re, im)
				}
			}
		}
	}

	return stacks, nil
}

// Synthesize draws one Gaussian realization of corr and synthesizes it onto
// the pixelized sphere at resolution nside, one map per coordinate slice.
func Synthesize(corr *spectrum.Tensor, tr sphere.Transformer, nside int, opts *Options) (MapStack, error) {
	stacks, err := SynthesizeMulti([]*spectrum.Tensor{corr}, tr, nside, opts)
	if err != nil {
		return nil, err
	}

	return stacks[0], nil
}

// SynthesizeMulti draws correlated realizations of several covariance
// tensors from one shared white-noise table and synthesizes each onto the
// pixelized sphere, returning one map stack per tensor in input order.
//
// Errors: ErrNilTransformer plus everything SynthesizeAlmsMulti returns;
// transform failures are wrapped with their coordinate slice.
func SynthesizeMulti(corrs []*spectrum.Tensor, tr sphere.Transformer, nside int, opts *Options) ([]MapStack, error) {
	if tr == nil {
		return nil, ErrNilTransformer
	}
	stacks, err := SynthesizeAlmsMulti(corrs, opts)
	if err != nil {
		return nil, err
	}

	out := make([]MapStack, len(stacks))
	for ii, st := range stacks {
		ms := make(MapStack, len(st))
		for z, alm := range st {
			pix, err := tr.Synthesize(alm, nside)
			if err != nil {
				return nil, fmt.Errorf("realize: synthesis at slice %d: %w", z, err)
			}
			ms[z] = pix
		}
		out[ii] = ms
	}

	return out, nil
}
