// SPDX-License-Identifier: EPL-2.0

package algo

import (
	"encoding/binary"
	"time"
)

// Silence marks an output channel with no source in a remap plan.
const Silence = -1

// ChannelReorder moves samples between two channel layouts of the same
// encoding and frequency. Samples are copied as opaque words; the encoding
// only selects the word width.
type ChannelReorder struct {
	Algo

	plan []int
	out  []byte
}

func NewChannelReorder(opts ...Option) *ChannelReorder {
	return &ChannelReorder{
		Algo: newAlgo("ChannelReorder", opts...),
	}
}

func (r *ChannelReorder) ConfigurationChange() {
	r.configurationChange()
	r.plan = nil

	in, out := r.input, r.output
	if in.Encoding != out.Encoding {
		r.disable("can not support format change %s => %s", in.Encoding, out.Encoding)
	}
	if in.Frequency != out.Frequency {
		r.disable("can not support frequency change %d => %d", in.Frequency, out.Frequency)
	}
	if in.Map.Equal(out.Map) {
		r.disable("no need to convert %s => %s", in.Map, out.Map)
		return
	}
	if !r.needProcess {
		return
	}

	// A mono front-center input feeds every output channel.
	mono := in.Map.IsMono()
	plan := make([]int, len(out.Map))
	for k, id := range out.Map {
		if mono {
			plan[k] = 0
			continue
		}
		plan[k] = in.Map.Index(id)
	}
	r.plan = plan
	r.logf("convert %s => %s plan=%v", in.Map, out.Map, plan)
}

// Plan returns a copy of the current plan: one entry per output channel
// holding the input channel index or Silence. It is nil while the unit is
// disabled.
func (r *ChannelReorder) Plan() []int {
	if r.plan == nil {
		return nil
	}
	return append([]int(nil), r.plan...)
}

// Process remaps frames frames. In passthrough the returned slice is input
// itself; otherwise it is the unit's buffer, overwritten by the next call.
func (r *ChannelReorder) Process(_ time.Time, input []byte, frames int) ([]byte, int, bool) {
	if input == nil || frames < 0 {
		return r.out, 0, false
	}
	if !r.needProcess {
		return input, frames, true
	}

	width := r.output.Encoding.ByteWidth()
	inCh, outCh := len(r.input.Map), len(r.output.Map)
	if len(input) < frames*inCh*width {
		return r.out, 0, false
	}

	need := frames * outCh * width
	if cap(r.out) < need {
		r.out = make([]byte, need)
	}
	r.out = r.out[:need]

	switch width {
	case 1:
		remap8(r.out, input, r.plan, inCh, outCh, frames)
	case 4:
		remap32(r.out, input, r.plan, inCh, outCh, frames)
	case 8:
		remap64(r.out, input, r.plan, inCh, outCh, frames)
	default:
		remap16(r.out, input, r.plan, inCh, outCh, frames)
	}

	return r.out, frames, true
}

func remap8(out, in []byte, plan []int, inCh, outCh, frames int) {
	for k, src := range plan {
		if src == Silence {
			for i := range frames {
				out[i*outCh+k] = 0
			}
			continue
		}
		for i := range frames {
			out[i*outCh+k] = in[i*inCh+src]
		}
	}
}

func remap16(out, in []byte, plan []int, inCh, outCh, frames int) {
	for k, src := range plan {
		if src == Silence {
			for i := range frames {
				binary.NativeEndian.PutUint16(out[(i*outCh+k)*2:], 0)
			}
			continue
		}
		for i := range frames {
			w := binary.NativeEndian.Uint16(in[(i*inCh+src)*2:])
			binary.NativeEndian.PutUint16(out[(i*outCh+k)*2:], w)
		}
	}
}

func remap32(out, in []byte, plan []int, inCh, outCh, frames int) {
	for k, src := range plan {
		if src == Silence {
			for i := range frames {
				binary.NativeEndian.PutUint32(out[(i*outCh+k)*4:], 0)
			}
			continue
		}
		for i := range frames {
			w := binary.NativeEndian.Uint32(in[(i*inCh+src)*4:])
			binary.NativeEndian.PutUint32(out[(i*outCh+k)*4:], w)
		}
	}
}

func remap64(out, in []byte, plan []int, inCh, outCh, frames int) {
	for k, src := range plan {
		if src == Silence {
			for i := range frames {
				binary.NativeEndian.PutUint64(out[(i*outCh+k)*8:], 0)
			}
			continue
		}
		for i := range frames {
			w := binary.NativeEndian.Uint64(in[(i*inCh+src)*8:])
			binary.NativeEndian.PutUint64(out[(i*outCh+k)*8:], w)
		}
	}
}
