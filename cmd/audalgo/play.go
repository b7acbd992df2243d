// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
)

// playPCM16 plays interleaved 16-bit samples on the default output device and
// blocks until they are done.
func playPCM16(pcm []int16, rate, channels int) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	buf := make([]byte, 0, len(pcm)*2)
	for _, v := range pcm {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	}

	log.Printf("playing %d frames at %dHz", len(pcm)/max(channels, 1), rate)
	p := ctx.NewPlayer(bytes.NewReader(buf))
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := p.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}
	return ctx.Suspend()
}
