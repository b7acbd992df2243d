// SPDX-License-Identifier: EPL-2.0

// Package algo provides the processing units of the pipeline and the
// lifecycle they share.
//
// # Lifecycle
//
// Every Unit is used in two phases. On the control thread the caller sets
// the ports and calls ConfigurationChange, which derives the execution plan
// or disables the unit when it cannot perform the requested conversion. On
// the audio thread the caller then invokes Process once per block:
//
//	r := algo.NewChannelReorder()
//	r.SetInputPort(audio.Port{Encoding: audio.Int16, Map: stereo, Frequency: 48000})
//	r.SetOutputPort(audio.Port{Encoding: audio.Int16, Map: surround, Frequency: 48000})
//	r.ConfigurationChange()
//
//	out, frames, ok := r.Process(now, block, 480)
//
// Process never returns an error and never logs. A disabled unit hands back
// its input slice unchanged; otherwise the output is a buffer owned by the
// unit, reused by the next call. Callers must treat the output as borrowed.
//
// Units do no locking. Configuration must happen between blocks.
//
// # Units
//
//   - ChannelReorder moves channels between layouts of the same encoding and
//     frequency, filling channels without a source with silence.
//   - Resampler changes the frequency of Float32 blocks by cubic interpolation.
//
// # Stages
//
// Stage adapts a Unit to the audio.Source interface so it can sit between a
// decoder and a writer:
//
//	src, _ := vorbis.Decoder{}.Decode(f)
//	wavOrder, _ := audio.DefaultChannelMap(src.Channels())
//	st, err := algo.NewStage(src, algo.NewChannelReorder(), audio.Port{
//	    Encoding:  audio.Float32,
//	    Map:       wavOrder,
//	    Frequency: src.SampleRate(),
//	})
package algo
