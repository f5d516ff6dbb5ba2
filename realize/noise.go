package realize

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseTable holds one full white-noise draw for a realization: per
// multipole l a numz × (l+1) matrix of standard complex normal variates,
// one per coordinate slice and non-negative order. Draws are independent
// across multipoles.
//
// A table built once and passed to several synthesis calls (or shared by the
// tensors of a Multi call) makes their outputs correlated by construction:
// same randomness, different transforms.
type NoiseTable struct {
	lmax int
	numz int
	rows [][]complex128 // rows[l] is numz×(l+1), row-major [z][m]
}

// NewNoiseTable draws a complete white-noise table for band-limit lmax and
// numz coordinate slices from src. Each variate is standard complex normal:
// real and imaginary parts independent N(0, 1/2), unit total variance. A nil
// src falls back to a time-seeded source.
//
// Returns ErrShapeMismatch for a negative lmax or non-positive numz.
func NewNoiseTable(lmax, numz int, src rand.Source) (*NoiseTable, error) {
	if lmax < 0 || numz < 1 {
		return nil, ErrShapeMismatch
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1 / math.Sqrt2, Src: src}

	rows := make([][]complex128, lmax+1)
	for l := 0; l <= lmax; l++ {
		row := make([]complex128, numz*(l+1))
		for i := range row {
			row[i] = complex(norm.Rand(), norm.Rand())
		}
		rows[l] = row
	}

	return &NoiseTable{lmax: lmax, numz: numz, rows: rows}, nil
}

// Lmax returns the band-limit the table was drawn for.
func (t *NoiseTable) Lmax() int { return t.lmax }

// NumZ returns the number of coordinate slices the table was drawn for.
func (t *NoiseTable) NumZ() int { return t.numz }

// at returns the variate for multipole l, coordinate slice z, order m.
func (t *NoiseTable) at(l, z, m int) complex128 {
	return t.rows[l][z*(l+1)+m]
}
