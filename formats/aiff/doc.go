// Package aiff decodes AIFF files into the visualizer's normalized sample
// stream, streaming PCM chunks and scaling 8 to 32 bit samples to [-1, 1].
package aiff
