// SPDX-License-Identifier: EPL-2.0

package algo

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/utils"
)

// Resampler converts the frequency of interleaved Float32 blocks using cubic
// interpolation. State carries across Process calls, so the number of output
// frames of a call depends on what was left over from the previous one.
type Resampler struct {
	Algo

	ratio    float64 // input frames per output frame
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames [4][]float32
	primed int
	pos    float64

	// one-pole low-pass applied to input frames when downsampling
	filterState []float32
	useFilter   bool
	filterAlpha float32

	out []byte
}

func NewResampler(opts ...Option) *Resampler {
	return &Resampler{
		Algo: newAlgo("Resampler", opts...),
	}
}

func (r *Resampler) ConfigurationChange() {
	r.configurationChange()

	in, out := r.input, r.output
	if in.Encoding != out.Encoding || out.Encoding != audio.Float32 {
		r.disable("can not support format %s => %s", in.Encoding, out.Encoding)
	}
	if !in.Map.Equal(out.Map) {
		r.disable("can not support channel map change %s => %s", in.Map, out.Map)
	}
	if in.Frequency <= 0 || out.Frequency <= 0 {
		r.disable("invalid frequency %d => %d", in.Frequency, out.Frequency)
	}
	if in.Frequency == out.Frequency {
		r.disable("no need to resample %dHz", in.Frequency)
		return
	}
	if !r.needProcess {
		return
	}

	r.channels = len(out.Map)
	r.ratio = float64(in.Frequency) / float64(out.Frequency)
	r.useFilter = r.ratio > 1.0
	r.filterAlpha = 0.5
	r.filterState = make([]float32, r.channels)
	for i := range r.frames {
		r.frames[i] = make([]float32, r.channels)
	}
	r.primed = 0
	r.pos = 0
	r.logf("resample %dHz => %dHz ratio=%.4f", in.Frequency, out.Frequency, r.ratio)
}

// Process resamples frames input frames. The output buffer is owned by the
// unit unless the unit is in passthrough.
func (r *Resampler) Process(_ time.Time, input []byte, frames int) ([]byte, int, bool) {
	if input == nil || frames < 0 {
		return r.out, 0, false
	}
	if !r.needProcess {
		return input, frames, true
	}

	frameSize := r.channels * 4
	if len(input) < frames*frameSize {
		return r.out, 0, false
	}

	maxOut := int(math.Ceil(float64(frames)/r.ratio)) + 2
	if need := maxOut * frameSize; cap(r.out) < need {
		r.out = make([]byte, need)
	}
	r.out = r.out[:cap(r.out)]

	written := 0
	for i := range frames {
		r.push(input[i*frameSize:])
		if r.primed < 3 {
			continue
		}

		for r.pos < 1.0 {
			r.interpolate(r.out[written*frameSize:], float32(r.pos))
			written++
			r.pos += r.ratio
		}
		r.pos -= 1.0
	}

	r.out = r.out[:written*frameSize]
	return r.out, written, true
}

// Reset drops the interpolation history.
func (r *Resampler) Reset() {
	r.primed = 0
	r.pos = 0
	clear(r.filterState)
}

// push shifts the history and appends one input frame.
func (r *Resampler) push(frame []byte) {
	if r.primed == 0 {
		for c := range r.channels {
			v := math.Float32frombits(binary.NativeEndian.Uint32(frame[c*4:]))
			r.filterState[c] = v
			for i := range r.frames {
				r.frames[i][c] = v
			}
		}
		r.primed = 1
		return
	}

	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	for c := range r.channels {
		v := math.Float32frombits(binary.NativeEndian.Uint32(frame[c*4:]))
		if r.useFilter {
			// y[n] = alpha * x[n] + (1-alpha) * y[n-1]
			v = r.filterAlpha*v + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = v
		}
		r.frames[3][c] = v
	}
	if r.primed < 3 {
		r.primed++
	}
}

func (r *Resampler) interpolate(dst []byte, alpha float32) {
	for c := range r.channels {
		v := utils.CubicInterpolate(r.frames[0][c], r.frames[1][c], r.frames[2][c], r.frames[3][c], alpha)
		binary.NativeEndian.PutUint32(dst[c*4:], math.Float32bits(v))
	}
}
