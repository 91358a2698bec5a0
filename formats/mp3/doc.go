// Package mp3 decodes MPEG-1 Layer III streams into the visualizer's
// normalized sample stream. The underlying decoder always emits 16-bit
// stereo, so every Source from this package reports two channels.
package mp3
