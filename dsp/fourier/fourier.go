package fourier

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// Transform computes the discrete Fourier transform of buf in place.
//
// The algorithm is iterative radix-2 decimation in time: buf is first
// permuted into bit-reversed order, then combined over log2(n) butterfly
// stages with twiddle factors exp(-2*pi*i*k/m) for stage width m.
//
// len(buf) must be a power of two; the result is undefined otherwise.
func Transform(buf []complex128) {
	n := len(buf)
	if n < 2 {
		return
	}

	bitReverseShuffle(buf)

	for m := 2; m <= n; m <<= 1 {
		wm := cmplx.Exp(complex(0, -2*math.Pi/float64(m)))
		half := m >> 1

		for k := 0; k < n; k += m {
			w := complex(1, 0)
			for j := 0; j < half; j++ {
				t := w * buf[k+j+half]
				u := buf[k+j]
				buf[k+j] = u + t
				buf[k+j+half] = u - t
				w *= wm
			}
		}
	}
}

// Inverse computes the normalized inverse transform of buf in place using
// the conjugate trick: conjugate, forward transform, conjugate, scale by
// 1/n. Transform followed by Inverse reconstructs the original buffer up
// to floating-point error.
//
// len(buf) must be a power of two; the result is undefined otherwise.
func Inverse(buf []complex128) {
	n := len(buf)
	if n < 2 {
		return
	}

	for i := range buf {
		buf[i] = cmplx.Conj(buf[i])
	}

	Transform(buf)

	scale := 1 / float64(n)
	for i := range buf {
		buf[i] = complex(real(buf[i])*scale, -imag(buf[i])*scale)
	}
}

// bitReverseShuffle permutes buf into bit-reversed index order.
func bitReverseShuffle(buf []complex128) {
	n := len(buf)
	shift := bits.UintSize - bits.TrailingZeros(uint(n))

	for i := range n {
		j := int(bits.Reverse(uint(i)) >> shift)
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
