// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields stereo in [fl,fr] order with an int16 native
// encoding, whatever the channel mode of the stream:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(src)
//
// Writing is not supported.
package mp3
