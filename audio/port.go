// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// Port describes one side of a processing unit.
type Port struct {
	Encoding  Encoding
	Map       ChannelMap
	Frequency int
}

// Compatible reports whether samples can move between the two ports without
// format or rate conversion.
func (p Port) Compatible(o Port) bool {
	return p.Encoding == o.Encoding && p.Frequency == o.Frequency
}

func (p Port) Equal(o Port) bool {
	return p.Compatible(o) && p.Map.Equal(o.Map)
}

func (p Port) Channels() int { return len(p.Map) }

// FrameSize is the size in bytes of one interleaved frame.
func (p Port) FrameSize() int {
	return len(p.Map) * p.Encoding.ByteWidth()
}

func (p Port) String() string {
	return fmt.Sprintf("%s %dHz %s", p.Encoding, p.Frequency, p.Map)
}

// GoAudioFormat converts the port to the go-audio format descriptor.
func (p Port) GoAudioFormat() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: len(p.Map),
		SampleRate:  p.Frequency,
	}
}

// PortFromGoAudio builds a Port from a go-audio format, using the default
// layout for its channel count.
func PortFromGoAudio(f *goaudio.Format, enc Encoding) (Port, error) {
	if f == nil {
		return Port{}, ErrNilFormat
	}

	m, err := DefaultChannelMap(f.NumChannels)
	if err != nil {
		return Port{}, err
	}

	return Port{
		Encoding:  enc,
		Map:       m,
		Frequency: f.SampleRate,
	}, nil
}
