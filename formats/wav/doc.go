// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// Decoding and the seekable Writer use github.com/go-audio/wav. Files of 16,
// 24 and 32 bits are supported with up to eight channels, laid out in the
// default WAV order (see audio.DefaultChannelMap):
//
//	src, err := wav.Decoder{}.Decode(f)
//	port := audio.PortOf(src)                    // float, 48000Hz, [fl,fr,fc,lfe,rl,rr]
//	native := audio.NativeEncoding(src)          // int24
//
// Writing keeps the channel layout of a port:
//
//	w, err := wav.NewWriter(out, audio.Port{Encoding: audio.Int16, Map: m, Frequency: 48000})
//	err = w.Write(samples)
//	err = w.Close()
//
// WriteSource drains a whole audio.Source. WritePCM16 produces a 16-bit file
// on a plain io.Writer such as stdout.
package wav
