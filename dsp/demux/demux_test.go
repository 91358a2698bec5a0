package demux

import (
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/jjYBdx4IL/Vkav/dsp/fourier"
)

func TestNewRejectsBadSizes(t *testing.T) {
	for _, size := range []int{-2, 0, 2, 7} {
		if _, err := New(size); err == nil {
			t.Fatalf("size %d: expected error", size)
		}
	}
}

func TestStereoSeparatesIndependentChannels(t *testing.T) {
	const inputSize = 64
	const half = inputSize / 2

	// Left channel is a unit impulse, right channel is silence. The joint
	// transform mixes them into one complex spectrum; the demuxer must pull
	// them back apart.
	spec := make([]complex128, inputSize)
	spec[0] = complex(1, 0)
	fourier.Transform(spec)

	d, err := New(inputSize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	left := make([]float64, half)
	right := make([]float64, half)
	d.Stereo(spec, left, right)

	for i := 1; i < half; i++ {
		if math.Abs(left[i]-1) > 1e-9 {
			t.Fatalf("left[%d]: impulse spectrum must be flat, got %v", i, left[i])
		}
		if right[i] > 1e-9 {
			t.Fatalf("right[%d]: silent channel must stay near zero, got %v", i, right[i])
		}
	}

	// Bin 0 is seeded from bin 1 of the opposite channel.
	if math.Abs(left[0]-right[1]) > 1e-12 {
		t.Fatalf("left[0]=%v, want right[1]=%v", left[0], right[1])
	}
	if math.Abs(right[0]-left[1]) > 1e-12 {
		t.Fatalf("right[0]=%v, want left[1]=%v", right[0], left[1])
	}
}

func TestMonoRecoversFullResolutionSpectrum(t *testing.T) {
	const (
		inputSize = 128
		half      = inputSize / 2
		bin       = 11
	)

	samples := make([]float64, inputSize)
	for n := range samples {
		samples[n] = math.Sin(2 * math.Pi * bin * float64(n) / inputSize)
	}

	// Pack sample pairs into half as many complex values, as the pipeline
	// does for mono frames, and run the half-size transform.
	spec := make([]complex128, half)
	for i := range spec {
		spec[i] = complex(samples[2*i], samples[2*i+1])
	}
	fourier.Transform(spec)

	d, err := New(inputSize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	left := make([]float64, half)
	right := make([]float64, half)
	d.Mono(spec, left, right)

	for i := 1; i < half; i++ {
		want := 0.0
		if i == bin {
			want = inputSize / 2
		}
		if math.Abs(left[i]-want) > 1e-8 {
			t.Fatalf("left[%d]: got %v, want %v", i, left[i], want)
		}
	}

	for i := range left {
		if left[i] != right[i] {
			t.Fatalf("index %d: mono channels must be equal copies (%v != %v)", i, left[i], right[i])
		}
		if left[i] < 0 {
			t.Fatalf("index %d: magnitudes must be non-negative, got %v", i, left[i])
		}
	}

	if left[0] != left[1] {
		t.Fatalf("bin 0 must copy bin 1: %v != %v", left[0], left[1])
	}
}

func TestMonoMatchesFullSizeReferenceTransform(t *testing.T) {
	const (
		inputSize = 64
		half      = inputSize / 2
	)

	// An arbitrary deterministic waveform; the Weaver path through the
	// half-size transform must agree with a full-size reference DFT.
	samples := make([]float64, inputSize)
	for n := range samples {
		samples[n] = math.Sin(0.3*float64(n)) + 0.25*math.Cos(1.7*float64(n))
	}

	plan, err := algofft.NewPlan64(inputSize)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	full := make([]complex128, inputSize)
	for n := range samples {
		full[n] = complex(samples[n], 0)
	}
	ref := make([]complex128, inputSize)
	if err := plan.Forward(ref, full); err != nil {
		t.Fatalf("reference forward FFT: %v", err)
	}

	spec := make([]complex128, half)
	for i := range spec {
		spec[i] = complex(samples[2*i], samples[2*i+1])
	}
	fourier.Transform(spec)

	d, err := New(inputSize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	left := make([]float64, half)
	right := make([]float64, half)
	d.Mono(spec, left, right)

	for i := 1; i < half; i++ {
		want := cmplx.Abs(ref[i])
		if math.Abs(left[i]-want) > 1e-8 {
			t.Fatalf("bin %d: got %v, reference %v", i, left[i], want)
		}
	}
}
