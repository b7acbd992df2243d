// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Describer is implemented by sources that know the layout and the native
// sample encoding of the stream they decode.
type Describer interface {
	// ChannelMap is the interleaving order of the samples returned by ReadSamples.
	ChannelMap() ChannelMap
	// Encoding is the encoding the stream was stored with before normalization.
	Encoding() Encoding
}

// PortOf describes the samples a Source produces: always Float32, with the
// source's channel map when it exposes one and the default layout otherwise.
func PortOf(src Source) Port {
	p := Port{
		Encoding:  Float32,
		Frequency: src.SampleRate(),
	}

	if d, ok := src.(Describer); ok {
		p.Map = d.ChannelMap()
	}
	if len(p.Map) != src.Channels() {
		p.Map, _ = DefaultChannelMap(src.Channels())
	}

	return p
}

// NativeEncoding returns the encoding src was stored with, Float32 when unknown.
func NativeEncoding(src Source) Encoding {
	if d, ok := src.(Describer); ok {
		return d.Encoding()
	}
	return Float32
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// ForPath looks a decoder up by the extension of path.
func (r *Registry) ForPath(path string) (Decoder, bool) {
	return r.Get(filepath.Ext(path))
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
