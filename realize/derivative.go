package realize

import (
	"fmt"

	"github.com/katalvlaran/skysim/spectrum"
	"github.com/katalvlaran/skysim/sphere"
)

// SynthesizeDeriv draws one Gaussian realization of corr and returns, per
// coordinate slice, the pixelized field together with its three spatial
// derivatives on the comoving-distance grid comovd.
func SynthesizeDeriv(corr *spectrum.Tensor, tr sphere.Transformer, comovd []float64, nside int, opts *Options) (*DerivStack, error) {
	stacks, err := SynthesizeDerivMulti([]*spectrum.Tensor{corr}, tr, comovd, nside, opts)
	if err != nil {
		return nil, err
	}

	return stacks[0], nil
}

// SynthesizeDerivMulti is the correlated multi-tracer variant of
// SynthesizeDeriv: one shared white-noise table, one DerivStack per tensor
// in input order.
//
// The engine supplies the field and its two angular derivatives per slice;
// the angular derivatives are divided by the slice's comoving distance
// (the 1/r metric factor of a sphere at radius r) and the radial derivative
// is a second-order finite difference of the field stack against comovd.
//
// Requires at least two slices and positive distances, one per coordinate
// slice (ErrBadDistances); other errors as for SynthesizeMulti.
func SynthesizeDerivMulti(corrs []*spectrum.Tensor, tr sphere.Transformer, comovd []float64, nside int, opts *Options) ([]*DerivStack, error) {
	if tr == nil {
		return nil, ErrNilTransformer
	}
	if len(corrs) == 0 || corrs[0] == nil {
		return nil, ErrNoTensors
	}
	numz := corrs[0].NumZ()
	if numz < 2 || len(comovd) != numz {
		return nil, ErrBadDistances
	}
	for _, r := range comovd {
		if !(r > 0) {
			return nil, ErrBadDistances
		}
	}

	stacks, err := SynthesizeAlmsMulti(corrs, opts)
	if err != nil {
		return nil, err
	}

	out := make([]*DerivStack, len(stacks))
	for ii, st := range stacks {
		ds := &DerivStack{
			Value:  make(MapStack, numz),
			DTheta: make(MapStack, numz),
			DPhi:   make(MapStack, numz),
		}
		for z, alm := range st {
			val, dth, dph, err := tr.SynthesizeDeriv(alm, nside)
			if err != nil {
				return nil, fmt.Errorf("realize: derivative synthesis at slice %d: %w", z, err)
			}
			inv := 1 / comovd[z]
			for p := range dth {
				dth[p] *= inv
			}
			for p := range dph {
				dph[p] *= inv
			}
			ds.Value[z] = val
			ds.DTheta[z] = dth
			ds.DPhi[z] = dph
		}
		ds.DRadial = radialGradient(ds.Value, comovd)
		out[ii] = ds
	}

	return out, nil
}

// radialGradient differentiates a map stack along the coordinate axis with
// second-order finite differences on the (possibly non-uniform) grid x,
// falling back to one-sided first-order differences at the two ends.
// Callers guarantee len(maps) == len(x) ≥ 2.
func radialGradient(maps MapStack, x []float64) MapStack {
	n := len(maps)
	out := make(MapStack, n)
	for i := range out {
		out[i] = make([]float64, len(maps[i]))
	}

	for p := range maps[0] {
		out[0][p] = (maps[1][p] - maps[0][p]) / (x[1] - x[0])
		out[n-1][p] = (maps[n-1][p] - maps[n-2][p]) / (x[n-1] - x[n-2])
	}

	for i := 1; i < n-1; i++ {
		hd := x[i] - x[i-1]
		hs := x[i+1] - x[i]
		wm := -hs / (hd * (hd + hs))
		w0 := (hs - hd) / (hd * hs)
		wp := hd / (hs * (hd + hs))
		for p := range maps[i] {
			out[i][p] = wm*maps[i-1][p] + w0*maps[i][p] + wp*maps[i+1][p]
		}
	}

	return out
}
