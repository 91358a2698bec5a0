package audio

// Remix adapts src to the requested channel count. A stereo source is
// averaged down to mono; a mono source is duplicated into identical left
// and right channels, matching how silent capture devices fake stereo.
// When the counts already match, src is returned unchanged.
func Remix(src Source, channels int) (Source, error) {
	switch {
	case channels == src.Channels():
		return src, nil
	case channels == 1 && src.Channels() == 2:
		return &monoMixer{src: src}, nil
	case channels == 2 && src.Channels() == 1:
		return &duplicator{src: src}, nil
	default:
		return nil, ErrChannelCount
	}
}

// monoMixer averages stereo sample pairs into single mono samples.
type monoMixer struct {
	src Source
	tmp []float64
}

func (m *monoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *monoMixer) Channels() int   { return 1 }

func (m *monoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(m.tmp) < need {
		m.tmp = make([]float64, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	frames := n / 2
	for f := 0; f < frames; f++ {
		dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
	}
	return frames, err
}

// duplicator writes each mono sample to both channels of a stereo pair.
type duplicator struct {
	src Source
	tmp []float64
}

func (d *duplicator) SampleRate() int { return d.src.SampleRate() }
func (d *duplicator) Channels() int   { return 2 }

func (d *duplicator) ReadSamples(dst []float64) (int, error) {
	if len(dst) < 2 {
		return 0, nil
	}

	frames := len(dst) / 2
	if cap(d.tmp) < frames {
		d.tmp = make([]float64, frames)
	}
	d.tmp = d.tmp[:frames]

	n, err := d.src.ReadSamples(d.tmp)
	for f := 0; f < n; f++ {
		dst[2*f] = d.tmp[f]
		dst[2*f+1] = d.tmp[f]
	}
	return n * 2, err
}
