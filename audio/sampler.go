package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Sampler maintains the sliding analysis frame over a Source. Each
// Advance reads one block of fresh samples and shifts it into the tail of
// the frame, so consecutive frames overlap by frameLen-blockLen samples.
//
// The frame is guarded for concurrent use: a capture goroutine may pump
// Advance (via Start) while the render loop calls CopyFrame.
type Sampler struct {
	src   Source
	block []float64

	mu    sync.Mutex
	frame []float64
	err   error

	modified atomic.Bool
	updates  atomic.Uint64

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewSampler returns a Sampler holding a zeroed frame of frameLen samples
// that advances by blockLen samples per update. Both lengths must be
// multiples of the source's channel count and blockLen must not exceed
// frameLen.
func NewSampler(src Source, frameLen, blockLen int) (*Sampler, error) {
	ch := src.Channels()
	if frameLen < 1 || frameLen%ch != 0 {
		return nil, fmt.Errorf("audio: frame length must be a positive multiple of %d channels: %d", ch, frameLen)
	}
	if blockLen < 1 || blockLen > frameLen || blockLen%ch != 0 {
		return nil, fmt.Errorf("audio: block length must be a multiple of %d channels in [1, %d]: %d", ch, frameLen, blockLen)
	}

	return &Sampler{
		src:   src,
		block: make([]float64, blockLen),
		frame: make([]float64, frameLen),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}, nil
}

// Advance reads the next block from the source and slides it into the
// frame. At the end of the stream a final partial block is still shifted
// in; once no samples remain, Advance returns io.EOF.
func (s *Sampler) Advance() error {
	n, err := readFull(s.src, s.block)
	if n > 0 {
		s.mu.Lock()
		copy(s.frame, s.frame[n:])
		copy(s.frame[len(s.frame)-n:], s.block[:n])
		s.mu.Unlock()

		s.modified.Store(true)
		s.updates.Add(1)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("audio: reading samples: %w", err)
	}
	if n == 0 {
		return io.EOF
	}
	return nil
}

// CopyFrame copies the current frame into dst and reports whether the
// frame changed since the previous copy. dst should be FrameLen samples;
// extra capacity is ignored, shorter slices receive a prefix.
func (s *Sampler) CopyFrame(dst []float64) bool {
	s.mu.Lock()
	copy(dst, s.frame)
	s.mu.Unlock()

	return s.modified.Swap(false)
}

// FrameLen returns the length of the sliding frame in samples.
func (s *Sampler) FrameLen() int {
	return len(s.frame)
}

// Updates returns the number of blocks shifted in so far. Callers derive
// an updates-per-second figure by sampling it over time.
func (s *Sampler) Updates() uint64 {
	return s.updates.Load()
}

// Start launches a goroutine pumping Advance until the source is
// exhausted, an error occurs, or Stop is called.
func (s *Sampler) Start() {
	go func() {
		defer close(s.done)
		for {
			select {
			case <-s.stop:
				return
			default:
			}

			if err := s.Advance(); err != nil {
				if !errors.Is(err, io.EOF) {
					s.mu.Lock()
					s.err = err
					s.mu.Unlock()
				}
				return
			}
		}
	}()
}

// Stop ends a Start-ed capture loop and waits for it to exit. It must not
// be called unless Start was.
func (s *Sampler) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// Done is closed when a Start-ed capture loop has exited.
func (s *Sampler) Done() <-chan struct{} {
	return s.done
}

// Err returns the first non-EOF error the capture loop hit, if any.
func (s *Sampler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// readFull keeps reading until dst is full or the source ends.
func readFull(src Source, dst []float64) (int, error) {
	total := 0
	for total < len(dst) {
		n, err := src.ReadSamples(dst[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.EOF
		}
	}
	return total, nil
}
