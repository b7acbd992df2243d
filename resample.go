// SPDX-License-Identifier: EPL-2.0

package audalgo

import (
	"fmt"
	"io"

	"github.com/ik5/audalgo/algo"
	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/utils"
)

// Resample returns src converted to targetRate with its channel layout kept.
// When the rates already match the stage passes samples through untouched.
func Resample(src audio.Source, targetRate int, opts ...algo.Option) (*algo.Stage, error) {
	out := audio.PortOf(src)
	out.Frequency = targetRate
	return algo.NewStage(src, algo.NewResampler(opts...), out)
}

// ResampleToMono16 mixes src down to mono, resamples it to targetRate and
// collects the result as 16-bit PCM.
//
//	src, _ := wav.Decoder{}.Decode(f)
//	pcm16, rate, err := audalgo.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	// mixing first leaves one channel to interpolate
	st, err := Resample(audio.NewMonoMixer(src), targetRate)
	if err != nil {
		return nil, targetRate, err
	}

	pcm16, err := collect16(st, bufferSize)
	if err != nil {
		return nil, targetRate, err
	}
	return pcm16, targetRate, nil
}

// collect16 drains a mono source into int16 PCM.
func collect16(src audio.Source, bufferSize int) ([]int16, error) {
	pcm16 := make([]int16, 0, src.SampleRate()*2)
	buf := make([]float32, max(bufferSize, 1))

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}
}

// collect drains src keeping the buffer a whole number of frames.
func collect(src audio.Source, bufferSize int) ([]float32, error) {
	ch := max(src.Channels(), 1)
	buf := make([]float32, max(bufferSize/ch, 1)*ch)

	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}
}
