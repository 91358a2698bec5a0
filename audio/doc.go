// Package audio defines the decoded-sample interfaces the visualizer
// consumes: a Source of interleaved float64 PCM, a Decoder registry keyed
// by file extension, channel remixing, and a Sampler that maintains the
// sliding analysis frame the processing pipeline reads from.
//
// Format decoders live in the formats subpackages; this package knows
// nothing about any container or codec.
package audio
