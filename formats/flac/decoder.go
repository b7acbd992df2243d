// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audalgo/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream the source needs, to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameParser
	sampleRate int
	channelMap audio.ChannelMap
	encoding   audio.Encoding
	bits       int

	cur *frame.Frame
	pos int // next sample of cur to hand out
}

func (s *source) SampleRate() int              { return s.sampleRate }
func (s *source) Channels() int                { return len(s.channelMap) }
func (s *source) ChannelMap() audio.ChannelMap { return s.channelMap }
func (s *source) Encoding() audio.Encoding     { return s.encoding }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int                 { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := len(s.channelMap)
	frames := len(dst) / ch

	n := 0
	for n < frames {
		if s.cur == nil || s.pos >= int(s.cur.BlockSize) {
			f, err := s.dec.ParseNext()
			if err == io.EOF {
				if n == 0 {
					return 0, io.EOF
				}
				break
			}
			if err != nil {
				return n * ch, fmt.Errorf("decoding flac frame: %w", err)
			}
			if len(f.Subframes) != ch {
				return n * ch, fmt.Errorf("%w: frame has %d channels, stream %d", ErrChannelMismatch, len(f.Subframes), ch)
			}
			s.cur, s.pos = f, 0
			continue
		}

		take := min(frames-n, int(s.cur.BlockSize)-s.pos)
		for c, sub := range s.cur.Subframes {
			for i, v := range sub.Samples[s.pos : s.pos+take] {
				dst[(n+i)*ch+c] = audio.IntToFloat(int(v), s.bits)
			}
		}
		n += take
		s.pos += take
	}

	return n * ch, nil
}

// Decoder reads FLAC streams of 4 to 32 bits. Channels are reported in the
// FLAC order, which matches audio.DefaultChannelMap.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	m, err := audio.DefaultChannelMap(int(info.NChannels))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFlacLayout, err)
	}

	bits := int(info.BitsPerSample)
	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channelMap: m,
		encoding:   encodingFor(bits),
		bits:       bits,
	}, nil
}

// encodingFor picks the narrowest container for odd depths such as 12 or 20.
func encodingFor(bits int) audio.Encoding {
	switch {
	case bits <= 8:
		return audio.Int8
	case bits <= 16:
		return audio.Int16
	case bits <= 24:
		return audio.Int24
	default:
		return audio.Int32
	}
}
