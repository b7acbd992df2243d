// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audalgo/audio"
)

// MockSource is a test helper that generates audio data for testing.
// It implements audio.Source and audio.Describer.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32
	channelMap   audio.ChannelMap
	encoding     audio.Encoding
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	m, _ := audio.DefaultChannelMap(channels)
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		channelMap:   m,
		encoding:     audio.Int16,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewSliceSource plays back interleaved samples.
func NewSliceSource(sampleRate int, m audio.ChannelMap, samples []float32) *MockSource {
	channels := len(m)
	s := NewMockSource(sampleRate, channels, len(samples)/channels, func(sample int, channel int) float32 {
		return samples[sample*channels+channel]
	})
	s.channelMap = m
	return s
}

// WithChannelMap overrides the reported layout. The map length must match
// the channel count.
func (m *MockSource) WithChannelMap(cm audio.ChannelMap) *MockSource {
	m.channelMap = cm
	return m
}

// WithEncoding overrides the reported native encoding.
func (m *MockSource) WithEncoding(e audio.Encoding) *MockSource {
	m.encoding = e
	return m
}

func (m *MockSource) SampleRate() int              { return m.sampleRate }
func (m *MockSource) Channels() int                { return m.channels }
func (m *MockSource) BufSize() int                 { return 4096 }
func (m *MockSource) ChannelMap() audio.ChannelMap { return m.channelMap }
func (m *MockSource) Encoding() audio.Encoding     { return m.encoding }
func (m *MockSource) Closed() bool                 { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// ReadAll drains src and returns every sample it produced.
func ReadAll(src audio.Source, bufSize int) ([]float32, error) {
	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// StallingSource returns 0, nil for its first Stalls reads, then reads
// through to the wrapped source. A negative Stalls stalls forever.
type StallingSource struct {
	*MockSource
	Stalls int
	Calls  int
}

func NewStallingSource(src *MockSource, stalls int) *StallingSource {
	return &StallingSource{MockSource: src, Stalls: stalls}
}

func (s *StallingSource) ReadSamples(dst []float32) (int, error) {
	s.Calls++
	if s.Stalls != 0 {
		if s.Stalls > 0 {
			s.Stalls--
		}
		return 0, nil
	}
	return s.MockSource.ReadSamples(dst)
}

// SplitSource plays back interleaved samples at most Chunk samples per read,
// ignoring frame boundaries.
type SplitSource struct {
	sampleRate int
	channelMap audio.ChannelMap
	samples    []float32
	Chunk      int
}

func NewSplitSource(sampleRate int, m audio.ChannelMap, samples []float32, chunk int) *SplitSource {
	return &SplitSource{sampleRate: sampleRate, channelMap: m, samples: samples, Chunk: chunk}
}

func (s *SplitSource) SampleRate() int              { return s.sampleRate }
func (s *SplitSource) Channels() int                { return len(s.channelMap) }
func (s *SplitSource) BufSize() int                 { return s.Chunk }
func (s *SplitSource) ChannelMap() audio.ChannelMap { return s.channelMap }
func (s *SplitSource) Encoding() audio.Encoding     { return audio.Float32 }
func (s *SplitSource) Close() error                 { return nil }

func (s *SplitSource) ReadSamples(dst []float32) (int, error) {
	if len(s.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), s.Chunk)], s.samples)
	s.samples = s.samples[n:]
	if len(s.samples) == 0 {
		return n, io.EOF
	}
	return n, nil
}
