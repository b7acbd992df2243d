// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Vorbis orders its channels differently from WAV once there are three or
// more of them: a 5.1 stream is [fl,fc,fr,rl,rr,lfe]. The source reports
// that layout through audio.Describer, so a remap stage can put it into
// any other order:
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	out := audio.PortOf(src)
//	out.Map, _ = audio.DefaultChannelMap(src.Channels())
//	stage, err := algo.NewStage(src, algo.NewChannelReorder(), out)
//
// Samples are decoded as float, which is also the native encoding.
package vorbis
