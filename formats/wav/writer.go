// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audalgo/audio"
)

// Writer encodes normalized samples to a PCM WAV file laid out as port. The
// file has no channel mask, so decoders report audio.DefaultChannelMap for
// its channel count whatever port.Map was.
type Writer struct {
	enc  *wav.Encoder
	port audio.Port
	bits int
	buf  *goaudio.IntBuffer
}

// NewWriter starts a WAV file on w. The port encoding selects the bit depth
// (int16, int24 or int32); the header is completed by Close.
func NewWriter(w io.WriteSeeker, port audio.Port) (*Writer, error) {
	bits := port.Encoding.BitDepth()
	if bits < 16 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, port.Encoding)
	}
	if port.Channels() == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrUnsupportedWavLayout)
	}

	return &Writer{
		enc:  wav.NewEncoder(w, port.Frequency, bits, port.Channels(), formatPCM),
		port: port,
		bits: bits,
		buf: &goaudio.IntBuffer{
			Format:         port.GoAudioFormat(),
			SourceBitDepth: bits,
		},
	}, nil
}

func (w *Writer) Port() audio.Port { return w.port }

// Write appends interleaved samples; len(samples) must hold whole frames.
func (w *Writer) Write(samples []float32) error {
	if len(samples)%w.port.Channels() != 0 {
		return ErrPartialFrame
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	for i, v := range samples {
		w.buf.Data[i] = audio.FloatToInt(v, w.bits)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav pcm: %w", err)
	}
	return nil
}

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}

// WriteSource drains src into a WAV file of the given encoding and returns
// the number of frames written.
func WriteSource(w io.WriteSeeker, src audio.Source, enc audio.Encoding, bufSize int) (int, error) {
	port := audio.PortOf(src)
	port.Encoding = enc

	ww, err := NewWriter(w, port)
	if err != nil {
		return 0, err
	}

	channels := port.Channels()
	buf := make([]float32, max(bufSize/channels, 1)*channels)
	frames := 0
	for {
		n, rerr := src.ReadSamples(buf)
		if n > 0 {
			if err := ww.Write(buf[:n]); err != nil {
				return frames, err
			}
			frames += n / channels
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return frames, fmt.Errorf("reading source: %w", rerr)
		}
	}

	return frames, ww.Close()
}
