// SPDX-License-Identifier: EPL-2.0

package echo

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/utils"
)

// Canceller removes the echo of a reference stream from a microphone stream.
// It is a Source of the residual signal and ends with the microphone.
type Canceller struct {
	mic audio.Source
	ref audio.Source
	lms *LMS
	cfg Config

	refBuf []float32
	refEOF bool

	mic16, ref16, out16 []int16
}

// NewCanceller pairs two mono sources of the same rate. The reference is the
// signal sent to the loudspeaker; once it ends it is treated as silence.
func NewCanceller(mic, ref audio.Source, opts ...Option) (*Canceller, error) {
	if mic.Channels() != 1 || ref.Channels() != 1 {
		return nil, fmt.Errorf("%w: mic=%d ref=%d channels", ErrNotMono, mic.Channels(), ref.Channels())
	}
	if mic.SampleRate() != ref.SampleRate() {
		return nil, fmt.Errorf("%w: mic=%dHz ref=%dHz", ErrRateMismatch, mic.SampleRate(), ref.SampleRate())
	}

	cfg := ApplyOptions(opts...)
	return &Canceller{
		mic: mic,
		ref: ref,
		lms: NewLMS(cfg.Taps(mic.SampleRate()), cfg.Mu),
		cfg: cfg,
	}, nil
}

// Filter gives access to the adaptive filter, e.g. to Reset it or change µ
// between reads.
func (c *Canceller) Filter() *LMS { return c.lms }

func (c *Canceller) SampleRate() int              { return c.mic.SampleRate() }
func (c *Canceller) Channels() int                { return 1 }
func (c *Canceller) BufSize() int                 { return c.mic.BufSize() }
func (c *Canceller) ChannelMap() audio.ChannelMap { return audio.ChannelMap{audio.FrontCenter} }

func (c *Canceller) Encoding() audio.Encoding {
	if c.cfg.Int16 {
		return audio.Int16
	}
	return audio.NativeEncoding(c.mic)
}

func (c *Canceller) Close() error {
	return errors.Join(c.mic.Close(), c.ref.Close())
}

func (c *Canceller) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, micErr := c.mic.ReadSamples(dst)
	if n == 0 {
		return 0, micErr
	}
	if err := c.readReference(n); err != nil {
		return 0, err
	}

	if c.cfg.Int16 {
		c.process16(dst[:n])
	} else {
		c.lms.ProcessFloat(dst, c.refBuf, dst, n)
	}

	return n, micErr
}

// readReference fills refBuf with exactly n samples, padding with silence.
func (c *Canceller) readReference(n int) error {
	if cap(c.refBuf) < n {
		c.refBuf = make([]float32, n)
	}
	c.refBuf = c.refBuf[:n]

	got := 0
	for got < n && !c.refEOF {
		m, err := c.ref.ReadSamples(c.refBuf[got:])
		got += m
		if err == io.EOF {
			c.refEOF = true
			break
		}
		if err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
		if m == 0 {
			break
		}
	}
	clear(c.refBuf[got:])

	return nil
}

func (c *Canceller) process16(buf []float32) {
	n := len(buf)
	if cap(c.mic16) < n {
		c.mic16 = make([]int16, n)
		c.ref16 = make([]int16, n)
		c.out16 = make([]int16, n)
	}
	c.mic16, c.ref16, c.out16 = c.mic16[:n], c.ref16[:n], c.out16[:n]

	for i := range n {
		c.mic16[i] = utils.Float32ToInt16(buf[i])
		c.ref16[i] = utils.Float32ToInt16(c.refBuf[i])
	}

	c.lms.Process16(c.out16, c.ref16, c.mic16, n)

	for i, v := range c.out16 {
		buf[i] = utils.Int16ToFloat32(v)
	}
}
