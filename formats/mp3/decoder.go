// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audalgo/audio"
)

// go-mp3 always produces interleaved stereo little-endian int16
const (
	channels   = 2
	frameBytes = channels * 2
)

var stereo = audio.ChannelMap{audio.FrontLeft, audio.FrontRight}

// mp3Reader is the part of gomp3.Decoder the source needs, to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	carry      int // bytes of an incomplete frame at the start of buf
}

func (s *source) SampleRate() int              { return s.sampleRate }
func (s *source) Channels() int                { return channels }
func (s *source) ChannelMap() audio.ChannelMap { return stereo }
func (s *source) Encoding() audio.Encoding     { return audio.Int16 }
func (s *source) Close() error                 { return nil }
func (s *source) BufSize() int                 { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	need := frames * frameBytes
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.carry])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	n += s.carry
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	whole := n - n%frameBytes
	for i := range whole / 2 {
		dst[i] = audio.IntToFloat(int(int16(binary.LittleEndian.Uint16(s.buf[i*2:]))), 16)
	}
	s.carry = copy(s.buf, s.buf[whole:n])

	if whole == 0 && err == io.EOF {
		return 0, io.EOF
	}
	return whole / 2, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
