package wav

import "errors"

var (
	// ErrNotWAV is returned when the stream is not a RIFF/WAVE file.
	ErrNotWAV = errors.New("wav: not a RIFF/WAVE stream")

	// ErrMalformed is returned when the headers parse but describe an
	// unusable format.
	ErrMalformed = errors.New("wav: malformed format chunk")

	// ErrBitDepth is returned for sample widths other than 8, 16, 24 or
	// 32 bits.
	ErrBitDepth = errors.New("wav: unsupported bit depth")
)
