package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// encodeTestFile writes a 16-bit PCM file holding the given samples and
// returns its path.
func encodeTestFile(t *testing.T, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, sampleRate, 16, channels, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	return path
}

func readAll(t *testing.T, src interface {
	ReadSamples([]float64) (int, error)
}) []float64 {
	t.Helper()

	var out []float64
	buf := make([]float64, 300)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples: %v", err)
		}
		if n == 0 {
			return out
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	const sampleRate = 8000
	data := make([]int, 1000)
	for i := range data {
		data[i] = int(16000 * math.Sin(2*math.Pi*float64(i)*50/sampleRate))
	}

	path := encodeTestFile(t, sampleRate, 1, data)
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if src.SampleRate() != sampleRate {
		t.Fatalf("SampleRate: got %d, want %d", src.SampleRate(), sampleRate)
	}
	if src.Channels() != 1 {
		t.Fatalf("Channels: got %d, want 1", src.Channels())
	}

	got := readAll(t, src)
	if len(got) != len(data) {
		t.Fatalf("sample count: got %d, want %d", len(got), len(data))
	}
	for i := range got {
		want := float64(data[i]) / 32768
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestDecodeStereoInterleave(t *testing.T) {
	// Left channel counts up, right channel counts down.
	data := make([]int, 200)
	for f := 0; f < 100; f++ {
		data[2*f] = f
		data[2*f+1] = -f
	}

	path := encodeTestFile(t, 44100, 2, data)
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if src.Channels() != 2 {
		t.Fatalf("Channels: got %d, want 2", src.Channels())
	}

	got := readAll(t, src)
	for frame := 0; frame < 100; frame++ {
		if got[2*frame] != float64(frame)/32768 || got[2*frame+1] != float64(-frame)/32768 {
			t.Fatalf("frame %d: got (%v, %v)", frame, got[2*frame], got[2*frame+1])
		}
	}
}

func TestDecodeBuffersPlainReaders(t *testing.T) {
	path := encodeTestFile(t, 8000, 1, []int{1, 2, 3, 4})
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	// Strip the Seeker so Decode has to buffer.
	src, err := Decoder{}.Decode(struct{ io.Reader }{bytes.NewReader(raw)})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := readAll(t, src); len(got) != 4 {
		t.Fatalf("sample count: got %d, want 4", len(got))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not audio data")))
	if !errors.Is(err, ErrNotWAV) {
		t.Fatalf("expected ErrNotWAV, got %v", err)
	}
}

func TestSampleScale(t *testing.T) {
	cases := map[int]float64{8: 128, 16: 32768, 24: 8388608, 32: 2147483648, 12: 0, 0: 0}
	for depth, want := range cases {
		if got := sampleScale(depth); got != want {
			t.Fatalf("sampleScale(%d): got %v, want %v", depth, got, want)
		}
	}
}
