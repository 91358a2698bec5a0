package fourier

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
)

func randomComplex(seed int64, n int) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

func TestTransformInverseRoundTrip(t *testing.T) {
	for n := 4; n <= 1024; n <<= 1 {
		buf := randomComplex(int64(n), n)
		want := append([]complex128(nil), buf...)

		Transform(buf)
		Inverse(buf)

		for i := range buf {
			if cmplx.Abs(buf[i]-want[i]) > 1e-9 {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, buf[i], want[i])
			}
		}
	}
}

func TestTransformBinAlignedSine(t *testing.T) {
	const (
		n   = 64
		bin = 5
	)

	buf := make([]complex128, n)
	for i := range buf {
		buf[i] = complex(math.Sin(2*math.Pi*bin*float64(i)/n), 0)
	}

	Transform(buf)

	for k := range buf {
		mag := cmplx.Abs(buf[k])
		switch k {
		case bin, n - bin:
			if math.Abs(mag-n/2) > 1e-9 {
				t.Fatalf("bin %d: got magnitude %v, want %v", k, mag, float64(n)/2)
			}
		default:
			if mag > 1e-9 {
				t.Fatalf("bin %d: expected near-zero magnitude, got %v", k, mag)
			}
		}
	}
}

func TestTransformImpulse(t *testing.T) {
	buf := make([]complex128, 16)
	buf[0] = 1

	Transform(buf)

	for k := range buf {
		if cmplx.Abs(buf[k]-1) > 1e-12 {
			t.Fatalf("bin %d: impulse spectrum must be flat, got %v", k, buf[k])
		}
	}
}

func TestTransformMatchesReferenceFFT(t *testing.T) {
	const n = 256

	src := randomComplex(99, n)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	want := make([]complex128, n)
	if err := plan.Forward(want, src); err != nil {
		t.Fatalf("reference forward FFT: %v", err)
	}

	got := append([]complex128(nil), src...)
	Transform(got)

	for k := range got {
		if cmplx.Abs(got[k]-want[k]) > 1e-8 {
			t.Fatalf("bin %d: got %v, reference %v", k, got[k], want[k])
		}
	}
}

func TestTransformShortBuffersAreNoOps(t *testing.T) {
	one := []complex128{3 + 4i}
	Transform(one)
	if one[0] != 3+4i {
		t.Fatalf("length-1 transform must be identity, got %v", one[0])
	}

	Transform(nil)
	Inverse(nil)
}
