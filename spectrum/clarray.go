package spectrum

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// Options configures the covariance-tensor integration.
//
// Fields:
//   - ZRomb  — Romberg refinement level for the per-channel integration.
//     0 disables integration entirely: the spectrum is point-sampled at the
//     bin centres. Level k uses 2^k+1 uniformly spaced sub-points per channel.
//   - ZWidth — full width of one coordinate channel. 0 (the default) infers
//     the width from the gap between the two closest sorted bin centres;
//     inference requires at least two distinct coordinates.
type Options struct {
	ZRomb  int
	ZWidth float64
}

// DefaultOptions returns the default integration settings: Romberg level 3
// (9 sub-points per channel) with inferred channel width.
func DefaultOptions() Options {
	return Options{ZRomb: 3}
}

// Clarray computes the covariance tensor C[l][i][j] = ⟨a_lm(z_i) a*_lm(z_j)⟩
// for l = 0..lmax over the coordinate array zarr, either point-sampled or
// channel-averaged depending on opts (nil means DefaultOptions).
//
// With ZRomb > 0 every bin centre becomes a finite channel of half-width
// ZWidth/2; the spectrum is integrated over both channels by one-dimensional
// Romberg quadrature (inner coordinate first, then outer) and divided by the
// squared channel width, turning the double integral into a channel-averaged
// covariance.
//
// Errors: ErrNilSpectrum, ErrBadShape, ErrBadOrder, ErrBadWidth, and
// ErrDegenerateGrid when the width must be inferred from fewer than two
// distinct coordinates.
func Clarray(aps PowerSpectrum, lmax int, zarr []float64, opts *Options) (*Tensor, error) {
	if aps == nil {
		return nil, ErrNilSpectrum
	}
	if lmax < 0 || len(zarr) == 0 {
		return nil, ErrBadShape
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ZRomb < 0 {
		return nil, ErrBadOrder
	}
	if o.ZWidth < 0 {
		return nil, ErrBadWidth
	}

	numz := len(zarr)
	cl, err := NewTensor(lmax, numz)
	if err != nil {
		return nil, err
	}

	// Point sampling: evaluate directly at the bin centres, no smoothing.
	if o.ZRomb == 0 {
		for l := 0; l <= lmax; l++ {
			for i := 0; i < numz; i++ {
				for j := 0; j < numz; j++ {
					cl.data[(l*numz+i)*numz+j] = aps(l, zarr[i], zarr[j])
				}
			}
		}

		return cl, nil
	}

	zhalf := o.ZWidth / 2
	if o.ZWidth == 0 {
		zhalf, err = inferHalfWidth(zarr)
		if err != nil {
			return nil, err
		}
	}

	zint := 1<<o.ZRomb + 1
	dz := 2 * zhalf / float64(int(1)<<o.ZRomb)
	off := make([]float64, zint)
	for a := range off {
		off[a] = -zhalf + dz*float64(a)
	}

	// Channel-pair scratch: the only quadrature buffer, so peak memory never
	// grows with lmax or numz.
	inner := make([]float64, zint)
	outer := make([]float64, zint)
	norm := (2 * zhalf) * (2 * zhalf)

	for l := 0; l <= lmax; l++ {
		for i := 0; i < numz; i++ {
			for j := 0; j < numz; j++ {
				for a := 0; a < zint; a++ {
					z1 := zarr[i] + off[a]
					for b := 0; b < zint; b++ {
						inner[b] = aps(l, z1, zarr[j]+off[b])
					}
					outer[a] = integrate.Romberg(inner, dz)
				}
				cl.data[(l*numz+i)*numz+j] = integrate.Romberg(outer, dz) / norm
			}
		}
	}

	return cl, nil
}

// inferHalfWidth derives the channel half-width from the spacing of the two
// smallest sorted coordinates. Fails when the array holds fewer than two
// distinct values, since the channel width is then undefined.
func inferHalfWidth(zarr []float64) (float64, error) {
	if len(zarr) < 2 {
		return 0, ErrDegenerateGrid
	}
	zsort := make([]float64, len(zarr))
	copy(zsort, zarr)
	sort.Float64s(zsort)

	half := math.Abs(zsort[1]-zsort[0]) / 2
	if half == 0 {
		return 0, ErrDegenerateGrid
	}

	return half, nil
}
