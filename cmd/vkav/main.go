// Command vkav runs an audio file through the visualizer's signal chain
// and prints one row per analysis frame: elapsed time, per-channel
// volumes, and the dominant frequency, optionally with an ASCII rendering
// of the smoothed spectrum.
//
// Usage:
//
//	vkav [flags] file
//
// Supported inputs are WAV, AIFF, MP3 and Ogg Vorbis files, selected by
// extension.
//
// Examples:
//
//	vkav track.mp3
//	vkav -input 2048 -output 32 -bars track.wav
//	vkav -channels 1 -smoothing 0 voice.ogg
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/jjYBdx4IL/Vkav/audio"
	"github.com/jjYBdx4IL/Vkav/dsp/level"
	"github.com/jjYBdx4IL/Vkav/dsp/pipeline"
	"github.com/jjYBdx4IL/Vkav/formats/aiff"
	"github.com/jjYBdx4IL/Vkav/formats/mp3"
	"github.com/jjYBdx4IL/Vkav/formats/vorbis"
	"github.com/jjYBdx4IL/Vkav/formats/wav"
)

const barGlyphs = " .:-=+*#%@"

func main() {
	input := flag.Int("input", 1024, "analysis window length in samples per channel (power of two)")
	output := flag.Int("output", 16, "smoothed spectrum resolution")
	channels := flag.Int("channels", 2, "channels to analyze (1 or 2)")
	amplitude := flag.Float64("amplitude", 1.0, "equalizer gain")
	smoothing := flag.Float64("smoothing", 4.0, "smoothing level (0 disables)")
	block := flag.Int("block", 256, "frames to slide between analyses")
	every := flag.Int("every", 1, "print every Nth analysis row")
	bars := flag.Bool("bars", false, "render the left spectrum as ASCII bars")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vkav [flags] file\n\n")
		fmt.Fprintf(os.Stderr, "Analyzes an audio file frame by frame and prints volume and\n")
		fmt.Fprintf(os.Stderr, "spectrum information per frame.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vkav track.mp3\n")
		fmt.Fprintf(os.Stderr, "  vkav -input 2048 -output 32 -bars track.wav\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	if *block < 1 {
		fmt.Fprintf(os.Stderr, "error: -block must be >= 1\n")
		os.Exit(1)
	}
	if *every < 1 {
		fmt.Fprintf(os.Stderr, "error: -every must be >= 1\n")
		os.Exit(1)
	}

	registry := newRegistry()

	dec, err := registry.Get(filepath.Ext(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (supported: %s)\n", err, strings.Join(registry.Extensions(), " "))
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	src, err = audio.Remix(src, *channels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	pipe, err := pipeline.New(pipeline.Config{
		InputSize:      *input,
		OutputSize:     *output,
		Channels:       *channels,
		Amplitude:      *amplitude,
		SmoothingLevel: *smoothing,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sampler, err := audio.NewSampler(src, pipe.FrameLen(), (*block)*(*channels))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := analyze(os.Stdout, pipe, sampler, src.SampleRate(), *block, *every, *bars); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRegistry() *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register(".wav", wav.Decoder{})
	registry.Register(".aiff", aiff.Decoder{})
	registry.Register(".aif", aiff.Decoder{})
	registry.Register(".mp3", mp3.Decoder{})
	registry.Register(".ogg", vorbis.Decoder{})
	registry.Register(".oga", vorbis.Decoder{})
	return registry
}

func analyze(w io.Writer, pipe *pipeline.Pipeline, sampler *audio.Sampler, sampleRate, block, every int, bars bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if bars {
		fmt.Fprintf(tw, "Frame\tTime [s]\tL-Vol\tR-Vol\tPeak [Hz]\tSpectrum\n")
	} else {
		fmt.Fprintf(tw, "Frame\tTime [s]\tL-Vol\tR-Vol\tPeak [Hz]\n")
	}

	cfg := pipe.Config()
	d := pipe.NewData()

	for frame := 0; ; frame++ {
		if err := sampler.Advance(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		sampler.CopyFrame(d.Buffer)

		if err := pipe.Process(d); err != nil {
			return err
		}
		if frame%every != 0 {
			continue
		}

		elapsed := float64((frame+1)*block) / float64(sampleRate)
		peakHz := peakFrequency(d.Left, cfg, sampleRate)

		if bars {
			fmt.Fprintf(tw, "%d\t%.3f\t%.5f\t%.5f\t%.1f\t%s\n",
				frame, elapsed, d.LVolume, d.RVolume, peakHz, renderBars(d.Left))
		} else {
			fmt.Fprintf(tw, "%d\t%.3f\t%.5f\t%.5f\t%.1f\n",
				frame, elapsed, d.LVolume, d.RVolume, peakHz)
		}
	}

	return tw.Flush()
}

// peakFrequency maps the strongest output bin back to a frequency in Hz.
func peakFrequency(bins []float64, cfg pipeline.Config, sampleRate int) float64 {
	idx, mag := level.Peak(bins)
	if idx < 0 || mag <= 0 {
		return 0
	}

	// Output bin -> source spectrum bin -> Hz.
	srcBin := float64(idx) * float64(cfg.InputSize/2) / float64(cfg.OutputSize)
	return srcBin * float64(sampleRate) / float64(cfg.InputSize)
}

// renderBars maps the spectrum onto one glyph per bin, scaled to the
// frame's own maximum.
func renderBars(bins []float64) string {
	_, max := level.Peak(bins)

	var sb strings.Builder
	sb.Grow(len(bins))
	for _, v := range bins {
		g := 0
		if max > 0 {
			g = int(v / max * float64(len(barGlyphs)-1))
		}
		sb.WriteByte(barGlyphs[g])
	}
	return sb.String()
}
