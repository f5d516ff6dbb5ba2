package sphere

// Npix returns the number of pixels of a HEALPix-style sphere subdivision at
// resolution nside: 12·nside². Returns ErrBadNside unless nside is a
// positive power of two.
func Npix(nside int) (int, error) {
	if nside < 1 || nside&(nside-1) != 0 {
		return 0, ErrBadNside
	}

	return 12 * nside * nside, nil
}
