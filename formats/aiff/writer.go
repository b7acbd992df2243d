// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audalgo/audio"
)

// Writer encodes normalized samples to an AIFF file laid out as port.
type Writer struct {
	enc  *aiff.Encoder
	port audio.Port
	bits int
	buf  *goaudio.IntBuffer
}

// NewWriter starts an AIFF file on w. The header is completed by Close.
func NewWriter(w io.WriteSeeker, port audio.Port) (*Writer, error) {
	bits := port.Encoding.BitDepth()
	if bits < 16 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, port.Encoding)
	}
	if port.Channels() == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrUnsupportedAiffLayout)
	}

	return &Writer{
		enc:  aiff.NewEncoder(w, port.Frequency, bits, port.Channels()),
		port: port,
		bits: bits,
		buf: &goaudio.IntBuffer{
			Format:         port.GoAudioFormat(),
			SourceBitDepth: bits,
		},
	}, nil
}

func (w *Writer) Port() audio.Port { return w.port }

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
		return fmt.Errorf("writing aiff pcm: %w", err)
	}
	return nil
}

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing aiff encoder: %w", err)
	}
	return nil
}
