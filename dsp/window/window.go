// Package window provides the raised-cosine analysis taper applied to each
// audio frame before the spectral transform.
//
// The visualizer uses a single fixed shape, sin^2(pi*n/(size-1)), which is
// the symmetric Hann window. Coefficients are computed once at construction
// and applied in place every frame, for either the real (mono) or the
// complex-packed (stereo) view of the frame.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Window holds precomputed sin^2 taper coefficients for one frame length.
type Window struct {
	coeffs []float64
}

// New returns a Window of the given length. size must be at least 2 so the
// taper has a defined denominator.
func New(size int) (*Window, error) {
	if size < 2 {
		return nil, fmt.Errorf("window: size must be >= 2: %d", size)
	}

	coeffs := make([]float64, size)
	coeff := math.Pi / float64(size-1)
	for n := range coeffs {
		s := math.Sin(coeff * float64(n))
		coeffs[n] = s * s
	}

	return &Window{coeffs: coeffs}, nil
}

// Size returns the frame length the window was built for.
func (w *Window) Size() int {
	return len(w.coeffs)
}

// Coefficients returns a copy of the taper coefficients.
func (w *Window) Coefficients() []float64 {
	out := make([]float64, len(w.coeffs))
	copy(out, w.coeffs)
	return out
}

// Apply multiplies buf in place by the taper. len(buf) must equal Size();
// mismatched buffers are left untouched.
func (w *Window) Apply(buf []float64) {
	if len(buf) != len(w.coeffs) {
		return
	}

	vecmath.MulBlockInPlace(buf, w.coeffs)
}

// ApplyComplex multiplies buf in place by the taper, treating each complex
// element as one sample position. len(buf) must equal Size(); mismatched
// buffers are left untouched.
func (w *Window) ApplyComplex(buf []complex128) {
	if len(buf) != len(w.coeffs) {
		return
	}

	for n := range buf {
		c := w.coeffs[n]
		buf[n] = complex(real(buf[n])*c, imag(buf[n])*c)
	}
}
