package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/jjYBdx4IL/Vkav/audio"
)

// pcmReader is the slice of oggvorbis.Reader the source needs; tests swap
// in a fake.
type pcmReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	buf        []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis reads interleaved float32 values and returns the value
	// count, so the widths map one to one.
	if cap(s.buf) < len(dst) {
		s.buf = make([]float32, len(dst))
	}
	s.buf = s.buf[:len(dst)]

	n, err := s.dec.Read(s.buf)
	for i := 0; i < n; i++ {
		dst[i] = float64(s.buf[i])
	}

	if err == io.EOF {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("vorbis: %w", err)
	}
	return n, nil
}

// Decoder decodes Ogg Vorbis streams. The zero value is ready to use.
type Decoder struct{}

// Decode parses the Ogg headers of r and returns a streaming Source over
// the decoded PCM.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
