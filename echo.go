// SPDX-License-Identifier: EPL-2.0

package audalgo

import (
	"fmt"

	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/echo"
)

// NewEchoCanceller prepares mic and ref for an echo.Canceller: both are mixed
// down to mono and ref is resampled to the microphone rate when needed.
func NewEchoCanceller(mic, ref audio.Source, opts ...echo.Option) (*echo.Canceller, error) {
	m := audio.NewMonoMixer(mic)

	var r audio.Source = audio.NewMonoMixer(ref)
	if r.SampleRate() != m.SampleRate() {
		st, err := Resample(r, m.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("resampling reference: %w", err)
		}
		r = st
	}

	return echo.NewCanceller(m, r, opts...)
}

// CancelEcho removes the echo of ref from mic and collects the residual as
// 16-bit PCM at the microphone rate. The filter runs on 16-bit samples unless
// an option turns it off.
func CancelEcho(mic, ref audio.Source, bufferSize int, opts ...echo.Option) ([]int16, int, error) {
	opts = append([]echo.Option{echo.WithInt16(true)}, opts...)

	c, err := NewEchoCanceller(mic, ref, opts...)
	if err != nil {
		return nil, 0, err
	}

	pcm16, err := collect16(c, bufferSize)
	if err != nil {
		return nil, c.SampleRate(), err
	}
	return pcm16, c.SampleRate(), nil
}
