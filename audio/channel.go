// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Channel identifies a speaker position.
type Channel uint8

const (
	ChannelUnknown Channel = iota
	FrontLeft
	FrontRight
	FrontCenter
	LFE
	RearLeft
	RearRight
	RearCenter
	SideLeft
	SideRight
	TopLeft
	TopRight
)

var channelNames = [...]string{
	ChannelUnknown: "unknown",
	FrontLeft:      "fl",
	FrontRight:     "fr",
	FrontCenter:    "fc",
	LFE:            "lfe",
	RearLeft:       "rl",
	RearRight:      "rr",
	RearCenter:     "rc",
	SideLeft:       "sl",
	SideRight:      "sr",
	TopLeft:        "tl",
	TopRight:       "tr",
}

func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// ParseChannel accepts the short names returned by String.
func ParseChannel(s string) (Channel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range channelNames {
		if i > 0 && n == name {
			return Channel(i), nil
		}
	}

	return ChannelUnknown, fmt.Errorf("%w: %q", ErrUnknownChannel, s)
}

// ChannelMap is the ordered list of channels of an interleaved frame.
type ChannelMap []Channel

func (m ChannelMap) Equal(o ChannelMap) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Index returns the position of the first occurrence of c, or -1.
func (m ChannelMap) Index(c Channel) int {
	for i, ch := range m {
		if ch == c {
			return i
		}
	}
	return -1
}

// IsMono reports whether the map is the single front-center channel.
func (m ChannelMap) IsMono() bool {
	return len(m) == 1 && m[0] == FrontCenter
}

func (m ChannelMap) Clone() ChannelMap {
	if m == nil {
		return nil
	}
	return append(ChannelMap(nil), m...)
}

func (m ChannelMap) String() string {
	names := make([]string, len(m))
	for i, c := range m {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ",") + "]"
}

// ParseChannelMap parses a comma separated list such as "fl,fr,fc".
func ParseChannelMap(s string) (ChannelMap, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	if s == "" {
		return nil, ErrEmptyChannelMap
	}

	parts := strings.Split(s, ",")
	m := make(ChannelMap, 0, len(parts))
	for _, p := range parts {
		c, err := ParseChannel(p)
		if err != nil {
			return nil, err
		}
		m = append(m, c)
	}

	return m, nil
}

// Default layouts, WAVE_FORMAT_EXTENSIBLE / FLAC order.
var defaultMaps = [...]ChannelMap{
	{FrontCenter},
	{FrontLeft, FrontRight},
	{FrontLeft, FrontRight, FrontCenter},
	{FrontLeft, FrontRight, RearLeft, RearRight},
	{FrontLeft, FrontRight, FrontCenter, RearLeft, RearRight},
	{FrontLeft, FrontRight, FrontCenter, LFE, RearLeft, RearRight},
	{FrontLeft, FrontRight, FrontCenter, LFE, RearCenter, SideLeft, SideRight},
	{FrontLeft, FrontRight, FrontCenter, LFE, RearLeft, RearRight, SideLeft, SideRight},
}

// Vorbis I channel order.
var vorbisMaps = [...]ChannelMap{
	{FrontCenter},
	{FrontLeft, FrontRight},
	{FrontLeft, FrontCenter, FrontRight},
	{FrontLeft, FrontRight, RearLeft, RearRight},
	{FrontLeft, FrontCenter, FrontRight, RearLeft, RearRight},
	{FrontLeft, FrontCenter, FrontRight, RearLeft, RearRight, LFE},
	{FrontLeft, FrontCenter, FrontRight, SideLeft, SideRight, RearCenter, LFE},
	{FrontLeft, FrontCenter, FrontRight, SideLeft, SideRight, RearLeft, RearRight, LFE},
}

// DefaultChannelMap returns the conventional layout for n channels.
func DefaultChannelMap(n int) (ChannelMap, error) {
	if n < 1 || n > len(defaultMaps) {
		return nil, fmt.Errorf("%w: %d channels", ErrNoDefaultChannelMap, n)
	}
	return defaultMaps[n-1].Clone(), nil
}

// VorbisChannelMap returns the layout Vorbis streams use for n channels.
func VorbisChannelMap(n int) (ChannelMap, error) {
	if n < 1 || n > len(vorbisMaps) {
		return nil, fmt.Errorf("%w: %d channels", ErrNoDefaultChannelMap, n)
	}
	return vorbisMaps[n-1].Clone(), nil
}
