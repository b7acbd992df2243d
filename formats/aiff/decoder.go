// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audalgo/audio"
)

// aiffReader is the part of aiff.Decoder the source needs, to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        aiffReader
	sampleRate int
	channelMap audio.ChannelMap
	encoding   audio.Encoding
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int              { return s.sampleRate }
func (s *source) Channels() int                { return len(s.channelMap) }
func (s *source) ChannelMap() audio.ChannelMap { return s.channelMap }
func (s *source) Encoding() audio.Encoding     { return s.encoding }
func (s *source) Close() error                 { return nil }

func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data: make([]int, len(dst)),
			Format: &goaudio.Format{
				NumChannels: len(s.channelMap),
				SampleRate:  s.sampleRate,
			},
			SourceBitDepth: s.encoding.BitDepth(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading aiff pcm: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	bits := s.encoding.BitDepth()
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = audio.IntToFloat(v, bits)
	}

	return n, nil
}

// Decoder reads uncompressed AIFF files of 16, 24 or 32 bits. Channels are
// reported in the default order.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	if dec.BitDepth == 8 {
		return nil, fmt.Errorf("%w: 8 bits", ErrUnsupportedBitDepth)
	}
	enc, err := audio.EncodingForBitDepth(int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedBitDepth, err)
	}

	m, err := audio.DefaultChannelMap(format.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channelMap: m,
		encoding:   enc,
	}, nil
}
