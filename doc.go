// SPDX-License-Identifier: EPL-2.0

// Package audalgo wires the processing units of the algo and echo packages
// into ready made pipelines over audio.Source.
//
// # Formats
//
// Decoders live under formats/: WAV, AIFF, FLAC, MP3 and Ogg Vorbis. Each
// reports its channel layout and native encoding through audio.Describer.
//
// # Channel remapping
//
// NewRemapper reorders the channels of a stream into another layout, for
// example a Vorbis 5.1 file into WAV order:
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	wavOrder, _ := audio.DefaultChannelMap(6)
//	st, err := audalgo.NewRemapper(src, wavOrder)
//
// # Echo cancellation
//
// CancelEcho removes the loudspeaker signal picked up by a microphone. Both
// inputs are mixed to mono and the reference is resampled to the
// microphone rate first:
//
//	pcm16, rate, err := audalgo.CancelEcho(mic, speaker, 4096,
//		echo.WithFilterLength(32*time.Millisecond))
//
// # Resampling
//
// Resample and ResampleToMono16 convert the frequency of a stream with cubic
// interpolation.
package audalgo
