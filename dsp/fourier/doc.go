// Package fourier implements the in-place radix-2 FFT that drives the
// visualizer's spectral analysis.
//
// The transform is an iterative decimation-in-time Cooley-Tukey FFT: a
// bit-reverse permutation followed by log2(n) butterfly stages. It is
// deliberately minimal; the pipeline calls it once per audio frame on a
// preallocated buffer, so there are no plans, options, or allocations.
//
// Buffer lengths must be powers of two. This is a documented precondition
// of every function in the package, not a runtime-checked error; callers
// fix the transform size at construction time and are responsible for it.
package fourier
