// Package demux recovers two real magnitude spectra from one complex FFT
// of an interleaved or packed audio frame.
//
// Mono frames pack two real samples into each complex value before a
// half-size transform; the Weaver single-sideband reconstruction then
// rebuilds the analytic spectrum from conjugate-symmetry algebra. Stereo
// frames pack the left channel into the real parts and the right channel
// into the imaginary parts of a full-size transform, which the same
// conjugate-symmetry algebra separates back into two independent spectra.
//
// Bin 0 carries no directionally separable information under either scheme
// and is copied from bin 1 (mono) or from bin 1 of the opposite channel
// (stereo) by convention.
package demux

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Demuxer separates the transform of one audio frame into left and right
// magnitude spectra of length inputSize/2. All scratch memory is allocated
// at construction; Mono and Stereo allocate nothing.
type Demuxer struct {
	inputSize int
	half      int

	// Weaver sideband twiddles exp(-2*pi*i*r/inputSize), mono path only.
	twiddles []complex128

	lre, lim []float64
	rre, rim []float64
}

// New returns a Demuxer for frames of inputSize samples. inputSize must be
// even and at least 4 so both spectra have a bin 1 to seed bin 0 from.
func New(inputSize int) (*Demuxer, error) {
	if inputSize < 4 || inputSize%2 != 0 {
		return nil, fmt.Errorf("demux: input size must be even and >= 4: %d", inputSize)
	}

	half := inputSize / 2

	twiddles := make([]complex128, half)
	for r := 1; r < half; r++ {
		twiddles[r] = cmplx.Exp(complex(0, -2*math.Pi*float64(r)/float64(inputSize)))
	}

	return &Demuxer{
		inputSize: inputSize,
		half:      half,
		twiddles:  twiddles,
		lre:       make([]float64, half),
		lim:       make([]float64, half),
		rre:       make([]float64, half),
		rim:       make([]float64, half),
	}, nil
}

// InputSize returns the frame length the demuxer was built for.
func (d *Demuxer) InputSize() int {
	return d.inputSize
}

// SpectrumLen returns the length of each output spectrum, inputSize/2.
func (d *Demuxer) SpectrumLen() int {
	return d.half
}

// Mono reconstructs the single-sideband analytic spectrum from the
// half-size transform of a packed mono frame and writes its magnitude to
// both channels.
//
// spec must have length inputSize/2 and hold the transform output; left
// and right must have length inputSize/2.
func (d *Demuxer) Mono(spec []complex128, left, right []float64) {
	n := d.half

	for r := 1; r < n; r++ {
		x := spec[r]
		xc := complex(real(spec[n-r]), -imag(spec[n-r]))

		f := complex(0.5, 0) * (x + xc)
		g := complex(0, 0.5) * (xc - x)

		v := f + d.twiddles[r]*g
		d.lre[r] = real(v)
		d.lim[r] = imag(v)
	}

	// Bin 0: copy bin 1, see package comment.
	d.lre[0] = d.lre[1]
	d.lim[0] = d.lim[1]

	vecmath.Magnitude(left, d.lre, d.lim)
	copy(right, left)
}

// Stereo separates the full-size transform of an interleaved stereo frame
// into independent left and right magnitude spectra.
//
// spec must have length inputSize and hold the transform output; left and
// right must have length inputSize/2.
func (d *Demuxer) Stereo(spec []complex128, left, right []float64) {
	n := d.inputSize

	for i := 1; i < d.half; i++ {
		x := spec[i]
		xc := complex(real(spec[n-i]), -imag(spec[n-i]))

		l := complex(0.5, 0) * (x + xc)
		r := complex(0, 0.5) * (xc - x)

		d.lre[i] = real(l)
		d.lim[i] = imag(l)
		d.rre[i] = real(r)
		d.rim[i] = imag(r)
	}

	// Bin 0 of each channel: copy bin 1 of the other, see package comment.
	d.lre[0] = d.rre[1]
	d.lim[0] = d.rim[1]
	d.rre[0] = d.lre[1]
	d.rim[0] = d.lim[1]

	vecmath.Magnitude(left, d.lre, d.lim)
	vecmath.Magnitude(right, d.rre, d.rim)
}
