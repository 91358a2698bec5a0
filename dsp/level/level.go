// Package level reduces magnitude spectra to the scalar volumes used for
// framing and scaling effects.
package level

// Volume returns the sum of the spectrum bins divided by inputSize, the
// per-channel scalar the renderer scales effects with. It is computed after
// equalization so it reflects perceptually weighted energy. A non-positive
// inputSize yields 0.
func Volume(bins []float64, inputSize int) float64 {
	if inputSize <= 0 {
		return 0
	}

	sum := 0.0
	for _, v := range bins {
		sum += v
	}

	return sum / float64(inputSize)
}

// Peak returns the index and value of the largest bin, or (-1, 0) for an
// empty spectrum.
func Peak(bins []float64) (int, float64) {
	if len(bins) == 0 {
		return -1, 0
	}

	idx := 0
	peak := bins[0]
	for i, v := range bins[1:] {
		if v > peak {
			idx = i + 1
			peak = v
		}
	}

	return idx, peak
}
