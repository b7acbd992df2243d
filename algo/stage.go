// SPDX-License-Identifier: EPL-2.0

package algo

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audalgo/audio"
)

// Stage drives a Unit from a Source and exposes the unit output as a Source.
//
// The source samples are encoded into the encoding of the requested output
// port before each Process call, so a ChannelReorder runs on the same word
// width the stream was stored with.
type Stage struct {
	src  audio.Source
	unit Unit
	in   audio.Port
	out  audio.Port

	tmp     []float32
	partial int // samples of an incomplete frame kept at the start of tmp
	raw     []byte
	pending []float32
	read    int // index of the next pending sample
	frames  int64
	eof     bool
	srcErr  error
}

// NewStage configures u to convert from src to out. out.Encoding selects the
// encoding the unit works on.
func NewStage(src audio.Source, u Unit, out audio.Port) (*Stage, error) {
	if u == nil {
		return nil, ErrNilUnit
	}

	in := audio.PortOf(src)
	in.Encoding = out.Encoding
	if src.Channels() <= 0 || len(in.Map) != src.Channels() {
		return nil, fmt.Errorf("%w: %d channels without a layout", ErrPortMismatch, src.Channels())
	}

	u.SetInputPort(in)
	u.SetOutputPort(out)
	u.ConfigurationChange()

	// A disabled unit passes its input through, so the stage output is the input.
	if !u.NeedProcess() {
		out = in
	}

	return &Stage{
		src:  src,
		unit: u,
		in:   in,
		out:  out,
		tmp:  make([]float32, 4096),
	}, nil
}

func (s *Stage) SampleRate() int              { return s.out.Frequency }
func (s *Stage) Channels() int                { return len(s.out.Map) }
func (s *Stage) BufSize() int                 { return s.src.BufSize() }
func (s *Stage) ChannelMap() audio.ChannelMap { return s.out.Map }
func (s *Stage) Encoding() audio.Encoding     { return audio.NativeEncoding(s.src) }
func (s *Stage) Unit() Unit                   { return s.unit }

func (s *Stage) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("closing stage source: %w", err)
	}
	return nil
}

// ReadSamples returns at most len(dst) samples, always a whole number of
// frames. It returns 0, nil when the source delivered nothing.
func (s *Stage) ReadSamples(dst []float32) (int, error) {
	outCh := len(s.out.Map)
	if outCh == 0 || len(dst)%outCh != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	for s.read >= len(s.pending) {
		if s.eof {
			return 0, s.endErr()
		}
		got, err := s.fill(len(dst) / outCh)
		if err != nil {
			return 0, err
		}
		// the source has nothing yet; let the caller come back
		if got == 0 && !s.eof {
			return 0, nil
		}
	}

	n := copy(dst, s.pending[s.read:])
	s.read += n
	if s.read >= len(s.pending) && s.eof {
		return n, s.endErr()
	}
	return n, nil
}

func (s *Stage) endErr() error {
	if s.srcErr != nil {
		return s.srcErr
	}
	return io.EOF
}

// fill reads one block from the source and runs it through the unit. It
// returns the number of samples the source delivered. Samples of an
// incomplete frame wait for the next block; at the end of the stream they
// are dropped.
func (s *Stage) fill(frames int) (int, error) {
	inCh := s.src.Channels()
	want := max(frames, 1)*inCh + s.partial
	if cap(s.tmp) < want {
		tmp := make([]float32, want)
		copy(tmp, s.tmp[:s.partial])
		s.tmp = tmp
	}
	s.tmp = s.tmp[:want]

	n, err := s.src.ReadSamples(s.tmp[s.partial:])
	if err != nil {
		s.eof = true
		if err != io.EOF {
			s.srcErr = fmt.Errorf("reading stage source: %w", err)
		}
	}

	s.pending = s.pending[:0]
	s.read = 0

	total := s.partial + n
	inFrames := total / inCh
	whole := inFrames * inCh
	if inFrames > 0 {
		s.raw = audio.EncodeFloat32(s.raw, s.tmp[:whole], s.in.Encoding)
	}
	s.partial = copy(s.tmp, s.tmp[whole:total])
	if inFrames == 0 {
		return n, nil
	}

	t := s.timestamp()
	s.frames += int64(inFrames)

	out, outFrames, ok := s.unit.Process(t, s.raw, inFrames)
	if !ok {
		return n, fmt.Errorf("%w: %s %s", ErrProcessFailed, s.unit.Type(), s.unit.ID())
	}

	s.pending = audio.DecodeFloat32(s.pending, out[:outFrames*s.out.FrameSize()], s.out.Encoding)
	return n, nil
}

// timestamp is the stream time of the next input frame, counted from the
// Unix epoch.
func (s *Stage) timestamp() time.Time {
	rate := int64(max(s.in.Frequency, 1))
	return time.Unix(s.frames/rate, s.frames%rate*int64(time.Second)/rate)
}
