// Package buffer provides reusable float64 buffers and the owned buffer
// pair the pipeline flips between spectrum input and smoothed output each
// frame. DSP functions accept raw []float64; use Samples() to bridge.
package buffer
