// SPDX-License-Identifier: EPL-2.0

package audalgo

import (
	"github.com/ik5/audalgo/algo"
	"github.com/ik5/audalgo/audio"
)

// NewRemapper returns src with its channels put in the order of m. Channels
// of m the source lacks are silent; a mono source feeds every output.
//
// The reorder runs on the native word width of src, so int16 or int24
// samples are copied exactly.
func NewRemapper(src audio.Source, m audio.ChannelMap, opts ...algo.Option) (*algo.Stage, error) {
	out := audio.PortOf(src)
	out.Map = m
	out.Encoding = audio.NativeEncoding(src)
	return algo.NewStage(src, algo.NewChannelReorder(opts...), out)
}

// Remap reorders all of src into m and returns the interleaved samples with
// the port describing them.
func Remap(src audio.Source, m audio.ChannelMap, bufferSize int, opts ...algo.Option) ([]float32, audio.Port, error) {
	st, err := NewRemapper(src, m, opts...)
	if err != nil {
		return nil, audio.Port{}, err
	}

	samples, err := collect(st, bufferSize)
	if err != nil {
		return nil, audio.Port{}, err
	}
	return samples, audio.PortOf(st), nil
}
