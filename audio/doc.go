// SPDX-License-Identifier: EPL-2.0

// Package audio provides the value types and stream primitives shared by the
// processing units.
//
// # Descriptors
//
// A Port describes one side of a processing unit:
//
//	type Port struct {
//	    Encoding  Encoding   // int8, int16, int24, float, ...
//	    Map       ChannelMap // interleaving order, e.g. [fl,fr,fc]
//	    Frequency int        // Hz
//	}
//
// Encoding.ByteWidth gives the size of one sample word. Two ports are
// Compatible when they share encoding and frequency; only the channel layout
// may then differ.
//
// Channel maps can be parsed from the short names used by the CLI:
//
//	m, err := audio.ParseChannelMap("fl,fr,fc")
//
// DefaultChannelMap returns the WAV/FLAC layout for a channel count and
// VorbisChannelMap the order Vorbis streams are decoded in.
//
// # Source Interface
//
// Decoded streams are exposed as a Source of interleaved float32 samples in
// [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources that know their layout and stored encoding also implement
// Describer. PortOf builds the Port of any Source.
//
// # Channel Mixing
//
// MonoMixer folds a multichannel Source down to a single front-center
// channel by averaging, while NewChannelExtractor keeps a single channel:
//
//	mic := audio.NewMonoMixer(source)
//	ref, err := audio.NewChannelExtractor(playback, audio.FrontLeft)
//
// # PCM Words
//
// EncodeFloat32 and DecodeFloat32 move normalized samples in and out of raw
// interleaved buffers in any Encoding, using the machine byte order. The
// processing units operate on those raw buffers.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("speech.WAV")
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Descriptor
// parsing returns errors wrapping the sentinels in errors.go.
package audio
