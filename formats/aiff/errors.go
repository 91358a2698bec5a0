package aiff

import "errors"

var (
	// ErrNotAIFF is returned when the stream is not an AIFF file.
	ErrNotAIFF = errors.New("aiff: not an AIFF stream")

	// ErrMalformed is returned when the headers parse but describe an
	// unusable format.
	ErrMalformed = errors.New("aiff: malformed common chunk")

	// ErrBitDepth is returned for sample widths other than 8, 16, 24 or
	// 32 bits.
	ErrBitDepth = errors.New("aiff: unsupported bit depth")
)
