package realize_test

import (
	"errors"

	"github.com/katalvlaran/skysim/spectrum"
	"github.com/katalvlaran/skysim/sphere"
)

// packedTransformer is a linear, exactly invertible stand-in for the
// external SHT engine: synthesis packs the coefficient vector into the
// leading pixels (real, imaginary interleaved) and analysis reads it back,
// so Analyze(Synthesize(alm)) == alm up to the band-limit. The derivative
// variant returns constant unit angular derivatives, making the 1/r scaling
// of the pipeline directly observable.
type packedTransformer struct{}

var errMapTooSmall = errors.New("packed transformer: pixel map cannot hold the coefficients")

func (packedTransformer) Synthesize(alm *sphere.Alm, nside int) ([]float64, error) {
	npix, err := sphere.Npix(nside)
	if err != nil {
		return nil, err
	}
	data := alm.Data()
	if 2*len(data) > npix {
		return nil, errMapTooSmall
	}
	pix := make([]float64, npix)
	for i, v := range data {
		pix[2*i] = real(v)
		pix[2*i+1] = imag(v)
	}

	return pix, nil
}

func (p packedTransformer) SynthesizeDeriv(alm *sphere.Alm, nside int) (val, dtheta, dphi []float64, err error) {
	val, err = p.Synthesize(alm, nside)
	if err != nil {
		return nil, nil, nil, err
	}
	dtheta = make([]float64, len(val))
	dphi = make([]float64, len(val))
	for i := range val {
		dtheta[i] = 1
		dphi[i] = 1
	}

	return val, dtheta, dphi, nil
}

func (packedTransformer) Analyze(pixmap []float64, lmax int) (*sphere.Alm, error) {
	alm, err := sphere.NewAlm(lmax)
	if err != nil {
		return nil, err
	}
	data := alm.Data()
	if 2*len(data) > len(pixmap) {
		return nil, errMapTooSmall
	}
	for i := range data {
		data[i] = complex(pixmap[2*i], pixmap[2*i+1])
	}

	return alm, nil
}

// uniformTensor builds a covariance tensor with the same numz × numz matrix
// at every multipole: diag on the diagonal, off elsewhere.
func uniformTensor(lmax, numz int, diag, off float64) *spectrum.Tensor {
	cl, err := spectrum.NewTensor(lmax, numz)
	if err != nil {
		panic(err)
	}
	for l := 0; l <= lmax; l++ {
		for i := 0; i < numz; i++ {
			for j := i; j < numz; j++ {
				v := off
				if i == j {
					v = diag
				}
				if err := cl.Set(l, i, j, v); err != nil {
					panic(err)
				}
			}
		}
	}

	return cl
}
