// Package wav decodes RIFF/WAVE files into the visualizer's normalized
// sample stream. PCM data is streamed chunk by chunk rather than loaded
// whole, and 8, 16, 24 and 32 bit depths are scaled to [-1, 1].
package wav
