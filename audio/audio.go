package audio

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Source is a decoded stream of interleaved PCM samples normalized to
// [-1, 1].
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int

	// Channels is the interleave count, 1 for mono or 2 for stereo.
	Channels() int

	// ReadSamples fills dst with up to len(dst) samples and returns the
	// number written. It returns io.EOF once the stream is exhausted.
	ReadSamples(dst []float64) (int, error)
}

// Decoder constructs a Source from an encoded byte stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions to decoders. The zero value is not usable;
// construct with NewRegistry.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register associates a decoder with a file extension such as ".wav".
// The extension is matched case-insensitively; a missing leading dot is
// added. Registering the same extension twice replaces the earlier decoder.
func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

// Get returns the decoder registered for ext.
func (r *Registry) Get(ext string) (Decoder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[normalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return d, nil
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
