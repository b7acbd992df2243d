// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audalgo/audio"
)

// mockOggReader mimics oggvorbis.Reader, returning at most step values per
// call.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	step       int
	err        error
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	n := len(buf)
	if m.step > 0 {
		n = min(n, m.step)
	}
	n = copy(buf[:n], m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func newTestSource(t *testing.T, m *mockOggReader) *source {
	t.Helper()

	cm, err := audio.VorbisChannelMap(m.channels)
	if err != nil {
		t.Fatalf("VorbisChannelMap(%d) error = %v", m.channels, err)
	}
	return &source{dec: m, sampleRate: m.sampleRate, channelMap: cm}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not Ogg data"), nil} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_ChannelLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels int
		want     audio.ChannelMap
	}{
		{1, audio.ChannelMap{audio.FrontCenter}},
		{2, audio.ChannelMap{audio.FrontLeft, audio.FrontRight}},
		{3, audio.ChannelMap{audio.FrontLeft, audio.FrontCenter, audio.FrontRight}},
		{6, audio.ChannelMap{audio.FrontLeft, audio.FrontCenter, audio.FrontRight, audio.RearLeft, audio.RearRight, audio.LFE}},
	}

	for _, tt := range tests {
		src := newTestSource(t, &mockOggReader{sampleRate: 48000, channels: tt.channels})

		port := audio.PortOf(src)
		if !port.Map.Equal(tt.want) {
			t.Errorf("%d channels: map = %s, want %s", tt.channels, port.Map, tt.want)
		}
		if audio.NativeEncoding(src) != audio.Float32 {
			t.Errorf("%d channels: NativeEncoding() = %s, want float", tt.channels, audio.NativeEncoding(src))
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	src := newTestSource(t, &mockOggReader{sampleRate: 44100, channels: 2, samples: samples})

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}
	for i := range samples {
		if dst[i] != samples[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], samples[i])
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_WholeFramesRequested(t *testing.T) {
	t.Parallel()

	m := &mockOggReader{sampleRate: 44100, channels: 3, samples: make([]float32, 30)}
	src := newTestSource(t, m)

	// 7 values fit two 3 channel frames
	n, err := src.ReadSamples(make([]float32, 7))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}
	if len(m.samples) != 24 {
		t.Errorf("decoder consumed %d values, want 6", 30-len(m.samples))
	}
}

func TestSource_ReadSamples_SmallSteps(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 20)
	for i := range samples {
		samples[i] = float32(i) / 20
	}
	src := newTestSource(t, &mockOggReader{sampleRate: 22050, channels: 1, samples: samples, step: 3})

	var got []float32
	dst := make([]float32, 8)
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %d values, want %d", len(got), len(samples))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], samples[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, &mockOggReader{sampleRate: 8000, channels: 2, samples: []float32{1, 1}})

	n, err := src.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(t, &mockOggReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF})

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want wrapped ErrUnexpectedEOF", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	dst := make([]float32, 4096)
	samples := make([]float32, 44100*2)
	cm := audio.ChannelMap{audio.FrontLeft, audio.FrontRight}

	b.ReportAllocs()
	for b.Loop() {
		src := &source{dec: &mockOggReader{sampleRate: 44100, channels: 2, samples: samples}, sampleRate: 44100, channelMap: cm}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
