package pipeline_test

import (
	"fmt"
	"log"

	"github.com/jjYBdx4IL/Vkav/dsp/pipeline"
	"github.com/jjYBdx4IL/Vkav/internal/testutil"
)

// ExamplePipeline_Process processes one mono frame holding a pure tone and
// locates the corresponding peak in the downsampled spectrum.
func ExamplePipeline_Process() {
	p, err := pipeline.New(pipeline.Config{
		InputSize:      128,
		OutputSize:     16,
		Channels:       1,
		Amplitude:      1.0,
		SmoothingLevel: 0,
	})
	if err != nil {
		log.Fatal(err)
	}

	// A 16 Hz tone sampled at 128 Hz lands exactly on spectrum bin 16,
	// which the 128->16 resample maps to output index 4.
	d := p.NewData()
	copy(d.Buffer, testutil.Sine(16, 128, 1, 128))

	if err := p.Process(d); err != nil {
		log.Fatal(err)
	}

	peak := 0
	for i, v := range d.Left {
		if v > d.Left[peak] {
			peak = i
		}
	}
	fmt.Println(peak)
	// Output: 4
}
