package audio

import "errors"

var (
	// ErrUnknownFormat is returned by Registry.Get when no decoder is
	// registered for the requested extension.
	ErrUnknownFormat = errors.New("audio: no decoder registered for format")

	// ErrChannelCount is returned by Remix for unsupported channel layouts.
	ErrChannelCount = errors.New("audio: unsupported channel count")
)
