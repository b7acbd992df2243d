// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audalgo/audio"
	"github.com/ik5/audalgo/formats/aiff"
	"github.com/ik5/audalgo/formats/flac"
	"github.com/ik5/audalgo/formats/mp3"
	"github.com/ik5/audalgo/formats/vorbis"
	"github.com/ik5/audalgo/formats/wav"
	"github.com/ik5/audalgo/utils"
)

var errUnsupportedFormat = errors.New("unsupported file format")

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// openSource decodes path. The file must stay open while src is read.
func openSource(reg *audio.Registry, path string) (audio.Source, *os.File, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s (known: %s)", errUnsupportedFormat, path, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return src, f, nil
}

// writeSamples stores interleaved samples laid out as port. The container is
// picked from the extension of path; "-" streams 16-bit WAV to stdout.
func writeSamples(path string, stdout io.Writer, port audio.Port, samples []float32) error {
	if path == "-" {
		pcm := make([]int16, len(samples))
		for i, v := range samples {
			pcm[i] = utils.Float32ToInt16(v)
		}
		return wav.WritePCM16(stdout, port.Frequency, port.Channels(), pcm)
	}

	type sampleWriter interface {
		Write([]float32) error
		Close() error
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w sampleWriter
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		w, err = wav.NewWriter(f, port)
	case ".aif", ".aiff":
		w, err = aiff.NewWriter(f, port)
	default:
		err = fmt.Errorf("%w: can not write %q", errUnsupportedFormat, ext)
	}
	if err != nil {
		return err
	}

	if err := w.Write(samples); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return f.Close()
}

func writePCM16(path string, stdout io.Writer, rate int, pcm []int16) error {
	if path == "-" {
		return wav.WritePCM16(stdout, rate, 1, pcm)
	}

	samples := make([]float32, len(pcm))
	for i, v := range pcm {
		samples[i] = utils.Int16ToFloat32(v)
	}
	port := audio.Port{Encoding: audio.Int16, Map: audio.ChannelMap{audio.FrontCenter}, Frequency: rate}
	return writeSamples(path, stdout, port, samples)
}
