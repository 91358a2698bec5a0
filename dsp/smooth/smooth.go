// Package smooth resamples the equalized half-spectrum down to the display
// resolution with a Gaussian kernel, replacing separate resize and smooth
// passes with one variable-width weighted sum.
//
// The kernel steepness is derived once at construction from the smoothing
// level and the input/output sizes. Weights below 5% of the kernel peak are
// treated as negligible, which bounds each output bin's source window to a
// fixed radius. Windows near the spectrum edges truncate naturally; the
// per-window weight normalization keeps the output unbiased there.
package smooth

import (
	"fmt"
	"math"
)

// cutoff is the relative kernel weight below which contributions are
// ignored when deriving the window radius.
const cutoff = 0.05

// Smoother resamples spectra of length inputSize/2 to outputSize values.
type Smoother struct {
	half       int
	outputSize int

	// factor is the Gaussian steepness; NaN marks smoothing as disabled
	// (smoothingLevel == 0).
	factor float64
	radius float64
}

// New returns a Smoother for the given sizes. level controls the kernel
// width; 0 disables smoothing entirely, in which case Process degrades to
// a nearest-index resample. inputSize must be even and at least 2,
// outputSize at least 1, level a finite value >= 0.
func New(inputSize, outputSize int, level float64) (*Smoother, error) {
	if inputSize < 2 || inputSize%2 != 0 {
		return nil, fmt.Errorf("smooth: input size must be even and >= 2: %d", inputSize)
	}
	if outputSize < 1 {
		return nil, fmt.Errorf("smooth: output size must be >= 1: %d", outputSize)
	}
	if level < 0 || math.IsNaN(level) || math.IsInf(level, 0) {
		return nil, fmt.Errorf("smooth: smoothing level must be finite and >= 0: %v", level)
	}

	s := &Smoother{
		half:       inputSize / 2,
		outputSize: outputSize,
		factor:     math.NaN(),
	}

	if level > 0 {
		in := float64(inputSize)
		out := float64(outputSize)
		s.factor = in * in * 0.125 / (level * level * out * out)
		s.radius = math.Sqrt(-math.Log(cutoff)/s.factor) * float64(s.half) / out
	}

	return s, nil
}

// Enabled reports whether a smoothing pass will actually run; it is false
// when the configured level was 0.
func (s *Smoother) Enabled() bool {
	return !math.IsNaN(s.factor)
}

// Factor returns the Gaussian steepness parameter, NaN when disabled.
func (s *Smoother) Factor() float64 {
	return s.factor
}

// Radius returns the source-index distance at which kernel weights decay
// to 5% of the peak, 0 when disabled.
func (s *Smoother) Radius() float64 {
	return s.radius
}

// OutputSize returns the display resolution the smoother was built for.
func (s *Smoother) OutputSize() int {
	return s.outputSize
}

// Process writes the smoothed resample of src into dst. src must have
// length inputSize/2 and dst length outputSize. When smoothing is disabled
// or a window's weight sum degenerates to zero (extreme configurations
// collapse every weight below the representable range), the affected
// output falls back to the nearest source bin so the render path never
// sees a non-finite value.
func (s *Smoother) Process(dst, src []float64) {
	if !s.Enabled() {
		Nearest(dst, src)
		return
	}

	old := float64(s.half)
	out := float64(s.outputSize)

	for i := range dst {
		center := float64(i) * old / out

		lo := int(center - s.radius)
		if lo < 0 {
			lo = 0
		}
		hi := int(center + s.radius)
		if hi > s.half {
			hi = s.half
		}

		acc := 0.0
		sum := 0.0
		for j := lo; j < hi; j++ {
			distance := float64(i) - float64(j)*out/old
			weight := math.Exp(-distance * distance * s.factor)
			acc += src[j] * weight
			sum += weight
		}

		if sum > 0 {
			dst[i] = acc / sum
			continue
		}

		nearest := int(center)
		if nearest >= s.half {
			nearest = s.half - 1
		}
		dst[i] = src[nearest]
	}
}

// Nearest resamples src into dst by nearest (floor) source index, with no
// kernel. It is the bypass path used when smoothing is disabled.
func Nearest(dst, src []float64) {
	if len(src) == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	for i := range dst {
		j := i * len(src) / len(dst)
		if j >= len(src) {
			j = len(src) - 1
		}
		dst[i] = src[j]
	}
}
