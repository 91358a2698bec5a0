// Package vorbis decodes Ogg Vorbis streams into the visualizer's
// normalized sample stream.
package vorbis
