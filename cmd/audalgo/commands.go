// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ik5/audalgo"
	"github.com/ik5/audalgo/algo"
	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/echo"
	"github.com/ik5/audalgo/utils"
)

func runInfo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: info needs one file", errUsage)
	}

	src, f, err := openSource(newRegistry(), fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	port := audio.PortOf(src)
	frames, err := countFrames(src)
	if err != nil {
		return err
	}

	d := time.Duration(frames) * time.Second / time.Duration(max(port.Frequency, 1))
	fmt.Fprintf(stdout, "%s: %dHz %s %s, %d frames (%s)\n",
		fs.Arg(0), port.Frequency, port.Map, audio.NativeEncoding(src), frames, d.Round(time.Millisecond))
	return nil
}

func runRemap(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("remap", flag.ContinueOnError)
	mapping := fs.String("map", "", "output channel map, e.g. fl,fr,fc")
	bits := fs.Int("bits", 0, "output bit depth 16, 24 or 32 (default: the input depth)")
	bufSize := fs.Int("buf", 4096, "samples per read")
	play := fs.Bool("play", false, "play the result")
	verbose := fs.Bool("v", false, "log unit configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 || *mapping == "" {
		return fmt.Errorf("%w: remap needs -map, an input and an output", errUsage)
	}

	m, err := audio.ParseChannelMap(*mapping)
	if err != nil {
		return err
	}

	src, f, err := openSource(newRegistry(), fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()
	defer src.Close()

	enc, err := outputEncoding(*bits, audio.NativeEncoding(src))
	if err != nil {
		return err
	}

	samples, port, err := audalgo.Remap(src, m, *bufSize, algo.WithLogger(unitLogger(*verbose)))
	if err != nil {
		return err
	}
	port.Encoding = enc

	if msg := layoutWarning(port.Map); msg != "" {
		log.Print(msg)
	}
	if err := writeSamples(fs.Arg(1), stdout, port, samples); err != nil {
		return err
	}
	log.Printf("wrote %s: %s, %d frames", fs.Arg(1), port, len(samples)/max(port.Channels(), 1))

	if *play {
		pcm := make([]int16, len(samples))
		for i, v := range samples {
			pcm[i] = utils.Float32ToInt16(v)
		}
		return playPCM16(pcm, port.Frequency, port.Channels())
	}
	return nil
}

func runAEC(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("aec", flag.ContinueOnError)
	mu := fs.Float64("mu", float64(echo.DefaultMu), "LMS step size")
	taps := fs.Int("taps", echo.DefaultFilterSize, "filter size in samples")
	length := fs.Duration("length", 0, "filter size in time, overrides -taps")
	int16Path := fs.Bool("int16", true, "run the filter on 16-bit samples")
	bufSize := fs.Int("buf", 4096, "samples per read")
	play := fs.Bool("play", false, "play the result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("%w: aec needs a mic, a reference and an output", errUsage)
	}

	reg := newRegistry()
	mic, mf, err := openSource(reg, fs.Arg(0))
	if err != nil {
		return err
	}
	defer mf.Close()
	defer mic.Close()

	ref, rf, err := openSource(reg, fs.Arg(1))
	if err != nil {
		return err
	}
	defer rf.Close()
	defer ref.Close()

	opts := echoOptions(float32(*mu), *taps, *length, *int16Path)
	pcm, rate, err := audalgo.CancelEcho(mic, ref, *bufSize, opts...)
	if err != nil {
		return err
	}

	if err := writePCM16(fs.Arg(2), stdout, rate, pcm); err != nil {
		return err
	}
	log.Printf("wrote %s: %dHz mono, %d frames", fs.Arg(2), rate, len(pcm))

	if *play {
		return playPCM16(pcm, rate, 1)
	}
	return nil
}

// layoutWarning reports a layout the output file can not record. The writers
// store no channel mask, so readers assume the default order for the count.
func layoutWarning(m audio.ChannelMap) string {
	def, err := audio.DefaultChannelMap(len(m))
	if err == nil && def.Equal(m) {
		return ""
	}
	if err != nil {
		return fmt.Sprintf("warning: %d channels have no default layout, %s is not stored in the file", len(m), m)
	}
	return fmt.Sprintf("warning: layout %s is not stored in the file, readers will assume %s", m, def)
}

func echoOptions(mu float32, taps int, length time.Duration, int16Path bool) []echo.Option {
	opts := []echo.Option{
		echo.WithMu(mu),
		echo.WithFilterSize(taps),
		echo.WithInt16(int16Path),
	}
	if length > 0 {
		opts = append(opts, echo.WithFilterLength(length))
	}
	return opts
}

// outputEncoding resolves the -bits flag against the input encoding. Float
// and 8-bit inputs are written as 16-bit.
func outputEncoding(bits int, native audio.Encoding) (audio.Encoding, error) {
	if bits == 0 {
		switch native {
		case audio.Int24, audio.Int32:
			return native, nil
		default:
			return audio.Int16, nil
		}
	}
	if bits != 16 && bits != 24 && bits != 32 {
		return audio.Unknown, fmt.Errorf("%w: -bits %d", errUsage, bits)
	}
	return audio.EncodingForBitDepth(bits)
}

func countFrames(src audio.Source) (int, error) {
	ch := max(src.Channels(), 1)
	buf := make([]float32, max(src.BufSize()/ch, 1)*ch)
	total := 0
	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err == io.EOF {
			return total / ch, nil
		}
		if err != nil {
			return total / ch, fmt.Errorf("reading source: %w", err)
		}
	}
}
