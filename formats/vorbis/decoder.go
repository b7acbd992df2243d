// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audalgo/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source needs, to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channelMap audio.ChannelMap
}

func (s *source) SampleRate() int              { return s.sampleRate }
func (s *source) Channels() int                { return len(s.channelMap) }
func (s *source) ChannelMap() audio.ChannelMap { return s.channelMap }
func (s *source) Encoding() audio.Encoding     { return audio.Float32 }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int                 { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := len(s.channelMap)
	want := len(dst) / ch * ch
	if want == 0 {
		return 0, nil
	}

	// Read counts values, not frames
	n, err := s.dec.Read(dst[:want])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}
	return n, nil
}

// Decoder reads Ogg Vorbis streams. Channels are reported in Vorbis order
// (see audio.VorbisChannelMap).
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	m, err := audio.VorbisChannelMap(dec.Channels())
	if err != nil {
		return nil, err
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channelMap: m,
	}, nil
}
