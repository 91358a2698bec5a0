// Package equalize applies the perceptual gain curve that compensates for
// the low-frequency bias of the raw transform.
//
// Each bin n of both channels is scaled by
//
//	weight(n) = 0.08 * amplitude * log10(2n/inputSize + 1.05)
//
// The log argument is always >= 1.05, so weights are positive and strictly
// increasing with bin index. The curve depends only on construction
// parameters and is precomputed once.
package equalize

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Equalizer holds the precomputed per-bin weight curve.
type Equalizer struct {
	weights []float64
}

// New returns an Equalizer for spectra of length inputSize/2. inputSize
// must be even and at least 2; amplitude is a user gain and must be a
// finite value >= 0.
func New(inputSize int, amplitude float64) (*Equalizer, error) {
	if inputSize < 2 || inputSize%2 != 0 {
		return nil, fmt.Errorf("equalize: input size must be even and >= 2: %d", inputSize)
	}
	if amplitude < 0 || math.IsNaN(amplitude) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("equalize: amplitude must be finite and >= 0: %v", amplitude)
	}

	weights := make([]float64, inputSize/2)
	for n := range weights {
		weights[n] = 0.08 * amplitude * math.Log10(2*float64(n)/float64(inputSize)+1.05)
	}

	return &Equalizer{weights: weights}, nil
}

// Weights returns a copy of the per-bin gain curve.
func (e *Equalizer) Weights() []float64 {
	out := make([]float64, len(e.weights))
	copy(out, e.weights)
	return out
}

// SpectrumLen returns the spectrum length the equalizer was built for.
func (e *Equalizer) SpectrumLen() int {
	return len(e.weights)
}

// Process scales both channels in place by the weight curve. Each slice
// must have length SpectrumLen(); mismatched slices are left untouched.
func (e *Equalizer) Process(left, right []float64) {
	if len(left) == len(e.weights) {
		vecmath.MulBlockInPlace(left, e.weights)
	}
	if len(right) == len(e.weights) {
		vecmath.MulBlockInPlace(right, e.weights)
	}
}
