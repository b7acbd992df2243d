// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/internal/audiotest"
)

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	encodings := []audio.Encoding{audio.Int16, audio.Int24, audio.Int32}
	for _, enc := range encodings {
		t.Run(enc.String(), func(t *testing.T) {
			t.Parallel()

			m := audio.ChannelMap{audio.FrontLeft, audio.FrontRight, audio.FrontCenter}
			port := audio.Port{Encoding: enc, Map: m, Frequency: 44100}
			samples := []float32{0, 0.5, -0.5, -1, 0.25, -0.25}

			f := &audiotest.MemFile{}
			w, err := NewWriter(f, port)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if !w.Port().Equal(port) {
				t.Errorf("Port() = %s, want %s", w.Port(), port)
			}
			if err := w.Write(samples); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			src, err := Decoder{}.Decode(bytes.NewReader(f.Bytes()))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := audio.NativeEncoding(src); got != enc {
				t.Errorf("NativeEncoding() = %s, want %s", got, enc)
			}
			if src.SampleRate() != 44100 || src.Channels() != 3 {
				t.Errorf("decoded %dHz/%dch, want 44100Hz/3ch", src.SampleRate(), src.Channels())
			}

			got, err := audiotest.ReadAll(src, 64)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if len(got) != len(samples) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
			}
			for i := range samples {
				if got[i] != samples[i] {
					t.Errorf("sample[%d] = %v, want %v", i, got[i], samples[i])
				}
			}
		})
	}
}

func TestNewWriter_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		port audio.Port
		want error
	}{
		{"int8", audio.Port{Encoding: audio.Int8, Map: audio.ChannelMap{audio.FrontCenter}, Frequency: 8000}, ErrUnsupportedEncoding},
		{"float", audio.Port{Encoding: audio.Float32, Map: audio.ChannelMap{audio.FrontCenter}, Frequency: 8000}, ErrUnsupportedEncoding},
		{"no channels", audio.Port{Encoding: audio.Int16, Frequency: 8000}, ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewWriter(&audiotest.MemFile{}, tt.port)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewWriter() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWriter_PartialFrame(t *testing.T) {
	t.Parallel()

	port := audio.Port{Encoding: audio.Int16, Map: audio.ChannelMap{audio.FrontLeft, audio.FrontRight}, Frequency: 8000}
	w, err := NewWriter(&audiotest.MemFile{}, port)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if err := w.Write([]float32{0, 0, 0}); !errors.Is(err, ErrPartialFrame) {
		t.Errorf("Write() error = %v, want ErrPartialFrame", err)
	}
}

func TestWriteSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(16000, 2, 500, 0.5)

	f := &audiotest.MemFile{}
	frames, err := WriteSource(f, src, audio.Int16, 256)
	if err != nil {
		t.Fatalf("WriteSource() error = %v", err)
	}
	if frames != 500 {
		t.Errorf("WriteSource() frames = %d, want 500", frames)
	}

	dec, err := Decoder{}.Decode(bytes.NewReader(f.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, err := audiotest.ReadAll(dec, 128)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 1000 {
		t.Fatalf("decoded %d samples, want 1000", len(got))
	}
	for i, v := range got {
		if v != 0.5 {
			t.Fatalf("sample[%d] = %v, want 0.5", i, v)
		}
	}
}

type errSource struct{ audiotest.MockSource }

func (*errSource) ReadSamples([]float32) (int, error) { return 0, io.ErrNoProgress }

func TestWriteSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &errSource{MockSource: *audiotest.NewSilentSource(8000, 1, 10)}

	_, err := WriteSource(&audiotest.MemFile{}, src, audio.Int16, 64)
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("WriteSource() error = %v, want wrapped ErrNoProgress", err)
	}
}
