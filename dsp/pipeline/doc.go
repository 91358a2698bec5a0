// Package pipeline sequences the visualizer's signal-processing stages
// once per audio frame: windowing, the spectral transform, channel
// demultiplexing, perceptual equalization, volume reduction, and kernel
// smoothing.
//
// A Pipeline is built once from an immutable Config and then invoked
// synchronously on the thread driving the render loop. It owns all
// intermediate and output buffers; the smoothed output arrays are double
// buffered and swapped, not copied, so steady-state processing allocates
// nothing. The caller's Data.Buffer is treated as a private snapshot valid
// for the duration of one Process call.
package pipeline
