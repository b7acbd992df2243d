// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds a multichannel Source into a single front-center channel,
// either by averaging every channel or by extracting one of them.
type MonoMixer struct {
	src  Source
	tmp  []float32
	pick int // -1 averages
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:  src,
		tmp:  make([]float32, 4096),
		pick: -1,
	}
}

// NewChannelExtractor keeps only channel ch of src. It is used to feed the
// echo canceller from a single microphone capsule or loudspeaker feed.
func NewChannelExtractor(src Source, ch Channel) (*MonoMixer, error) {
	idx := PortOf(src).Map.Index(ch)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, ch)
	}

	m := NewMonoMixer(src)
	m.pick = idx
	return m, nil
}

func (m *MonoMixer) SampleRate() int        { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int          { return 1 }
func (m *MonoMixer) BufSize() int           { return m.src.BufSize() }
func (m *MonoMixer) ChannelMap() ChannelMap { return ChannelMap{FrontCenter} }
func (m *MonoMixer) Encoding() Encoding     { return NativeEncoding(m.src) }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mono source: %w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// grow, never shrink
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	if m.pick >= 0 {
		for f := range frames {
			dst[f] = m.tmp[f*channels+m.pick]
		}
		return frames, err
	}

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (m.tmp[idx] + m.tmp[idx+1]) * 0.5
		}
	default:
		inv := float32(1.0) / float32(channels)
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += m.tmp[base+c]
			}
			dst[f] = sum * inv
		}
	}

	return frames, err
}
