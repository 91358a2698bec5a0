package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/jjYBdx4IL/Vkav/dsp/buffer"
	"github.com/jjYBdx4IL/Vkav/dsp/demux"
	"github.com/jjYBdx4IL/Vkav/dsp/equalize"
	"github.com/jjYBdx4IL/Vkav/dsp/fourier"
	"github.com/jjYBdx4IL/Vkav/dsp/level"
	"github.com/jjYBdx4IL/Vkav/dsp/smooth"
	"github.com/jjYBdx4IL/Vkav/dsp/window"
)

// ErrFrameLength indicates a Data.Buffer whose length does not match the
// configured frame length.
var ErrFrameLength = errors.New("pipeline: frame length mismatch")

// Config holds the construction-time parameters of a Pipeline. All fields
// are fixed for the pipeline's lifetime; changing any of them requires
// building a new Pipeline.
type Config struct {
	// InputSize is the number of samples per processing window. It must be
	// a power of two >= 4 so both the mono half-size and the stereo
	// full-size transforms stay within the FFT's contract.
	InputSize int

	// OutputSize is the display resolution of the smoothed spectra.
	OutputSize int

	// Channels is 1 for mono or 2 for interleaved stereo frames.
	Channels int

	// Amplitude is the user-configured equalizer gain, >= 0.
	Amplitude float64

	// SmoothingLevel controls the Gaussian kernel width; 0 disables
	// smoothing.
	SmoothingLevel float64
}

func (c Config) validate() error {
	if !isPowerOfTwo(c.InputSize) || c.InputSize < 4 {
		return fmt.Errorf("pipeline: input size must be a power of two >= 4: %d", c.InputSize)
	}
	if c.OutputSize < 1 {
		return fmt.Errorf("pipeline: output size must be >= 1: %d", c.OutputSize)
	}
	if c.Channels != 1 && c.Channels != 2 {
		return fmt.Errorf("pipeline: channel count must be 1 or 2: %d", c.Channels)
	}
	return nil
}

// Data is the per-frame carrier shared with the capture and render
// collaborators. The caller fills Buffer with one frame of interleaved PCM
// samples; Process windows it in place and publishes the smoothed spectra
// and volumes back into the same carrier.
type Data struct {
	// Buffer holds InputSize*Channels samples: raw mono samples, or
	// interleaved stereo pairs.
	Buffer []float64

	// Left and Right are the smoothed magnitude spectra, each OutputSize
	// long. They alias pipeline-owned storage that is swapped on the next
	// Process call; copy them out if they must outlive the frame.
	Left  []float64
	Right []float64

	// LVolume and RVolume are the per-channel mean-magnitude volumes.
	LVolume float64
	RVolume float64
}

// Pipeline runs the five processing stages over one audio frame at a time.
type Pipeline struct {
	cfg  Config
	half int

	win      *window.Window
	dmx      *demux.Demuxer
	eq       *equalize.Equalizer
	smoother *smooth.Smoother

	work  []complex128
	left  *buffer.Pair
	right *buffer.Pair

	start time.Time
}

// New builds a Pipeline from cfg. The returned Pipeline records its
// construction time as the origin for Elapsed.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	win, err := window.New(cfg.InputSize)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	dmx, err := demux.New(cfg.InputSize)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	eq, err := equalize.New(cfg.InputSize, cfg.Amplitude)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	smoother, err := smooth.New(cfg.InputSize, cfg.OutputSize, cfg.SmoothingLevel)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	half := cfg.InputSize / 2

	workLen := cfg.InputSize
	if cfg.Channels == 1 {
		workLen = half
	}

	capacity := half
	if cfg.OutputSize > capacity {
		capacity = cfg.OutputSize
	}

	return &Pipeline{
		cfg:      cfg,
		half:     half,
		win:      win,
		dmx:      dmx,
		eq:       eq,
		smoother: smoother,
		work:     make([]complex128, workLen),
		left:     buffer.NewPair(capacity),
		right:    buffer.NewPair(capacity),
		start:    time.Now(),
	}, nil
}

// Config returns the construction-time configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// FrameLen returns the expected length of Data.Buffer,
// InputSize*Channels.
func (p *Pipeline) FrameLen() int {
	return p.cfg.InputSize * p.cfg.Channels
}

// NewData returns a Data carrier with a Buffer sized for this pipeline.
func (p *Pipeline) NewData() *Data {
	return &Data{Buffer: make([]float64, p.FrameLen())}
}

// Elapsed returns the time since the pipeline was constructed. The
// renderer uses it for its time-varying uniform instead of consulting a
// process-wide clock.
func (p *Pipeline) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Process runs one frame through all stages and publishes the results
// into d. It holds no references into d.Buffer after returning and
// allocates nothing in steady state.
func (p *Pipeline) Process(d *Data) error {
	if len(d.Buffer) != p.FrameLen() {
		return fmt.Errorf("%w: got %d samples, want %d", ErrFrameLength, len(d.Buffer), p.FrameLen())
	}

	p.left.Front().Resize(p.half)
	p.right.Front().Resize(p.half)
	lSpec := p.left.Front().Samples()
	rSpec := p.right.Front().Samples()

	if p.cfg.Channels == 1 {
		// Mono: taper the raw samples, then pack sample pairs into half as
		// many complex values for the half-size transform.
		p.win.Apply(d.Buffer)
		for i := 0; i < p.half; i++ {
			p.work[i] = complex(d.Buffer[2*i], d.Buffer[2*i+1])
		}
		fourier.Transform(p.work)
		p.dmx.Mono(p.work, lSpec, rSpec)
	} else {
		// Stereo: each complex value carries one left/right sample pair and
		// the taper applies per frame position.
		for i := 0; i < p.cfg.InputSize; i++ {
			p.work[i] = complex(d.Buffer[2*i], d.Buffer[2*i+1])
		}
		p.win.ApplyComplex(p.work)
		fourier.Transform(p.work)
		p.dmx.Stereo(p.work, lSpec, rSpec)
	}

	p.eq.Process(lSpec, rSpec)

	d.LVolume = level.Volume(lSpec, p.cfg.InputSize)
	d.RVolume = level.Volume(rSpec, p.cfg.InputSize)

	p.left.Back().Resize(p.cfg.OutputSize)
	p.right.Back().Resize(p.cfg.OutputSize)

	// The smoothing factor is constant per instance, so the degenerate
	// (disabled) case costs one branch per frame.
	if p.smoother.Enabled() {
		p.smoother.Process(p.left.Back().Samples(), lSpec)
		p.smoother.Process(p.right.Back().Samples(), rSpec)
	} else {
		smooth.Nearest(p.left.Back().Samples(), lSpec)
		smooth.Nearest(p.right.Back().Samples(), rSpec)
	}

	p.left.Swap()
	p.right.Swap()

	d.Left = p.left.Front().Samples()
	d.Right = p.right.Front().Samples()

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
