// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestParseChannelMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ChannelMap
		wantErr error
	}{
		{"fl,fr", ChannelMap{FrontLeft, FrontRight}, nil},
		{" [FL, fr ,lfe] ", ChannelMap{FrontLeft, FrontRight, LFE}, nil},
		{"fc", ChannelMap{FrontCenter}, nil},
		{"tl,tr,sl,sr,rc", ChannelMap{TopLeft, TopRight, SideLeft, SideRight, RearCenter}, nil},
		{"", nil, ErrEmptyChannelMap},
		{"[]", nil, ErrEmptyChannelMap},
		{"fl,xx", nil, ErrUnknownChannel},
		{"unknown", nil, ErrUnknownChannel},
	}

	for _, tt := range tests {
		got, err := ParseChannelMap(tt.in)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseChannelMap(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseChannelMap(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestChannelMap_StringRoundTrip(t *testing.T) {
	t.Parallel()

	m := ChannelMap{FrontLeft, FrontRight, FrontCenter, LFE, RearLeft, RearRight, SideLeft, SideRight}
	got, err := ParseChannelMap(m.String())
	if err != nil {
		t.Fatalf("ParseChannelMap(%s) error = %v", m, err)
	}
	if !got.Equal(m) {
		t.Errorf("round trip = %s, want %s", got, m)
	}
}

func TestChannelMap_Index(t *testing.T) {
	t.Parallel()

	// duplicates resolve to the first occurrence
	m := ChannelMap{FrontLeft, FrontRight, FrontLeft}

	tests := []struct {
		c    Channel
		want int
	}{
		{FrontLeft, 0},
		{FrontRight, 1},
		{LFE, -1},
	}
	for _, tt := range tests {
		if got := m.Index(tt.c); got != tt.want {
			t.Errorf("Index(%s) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestChannelMap_IsMono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    ChannelMap
		want bool
	}{
		{ChannelMap{FrontCenter}, true},
		{ChannelMap{FrontLeft}, false},
		{ChannelMap{FrontCenter, LFE}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := tt.m.IsMono(); got != tt.want {
			t.Errorf("%s.IsMono() = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestChannelMap_Clone(t *testing.T) {
	t.Parallel()

	m := ChannelMap{FrontLeft, FrontRight}
	c := m.Clone()
	c[0] = LFE
	if m[0] != FrontLeft {
		t.Error("Clone() shares storage with the original")
	}
	if ChannelMap(nil).Clone() != nil {
		t.Error("Clone() of nil is not nil")
	}
}

func TestDefaultChannelMap(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		m, err := DefaultChannelMap(n)
		if err != nil {
			t.Fatalf("DefaultChannelMap(%d) error = %v", n, err)
		}
		if len(m) != n {
			t.Errorf("DefaultChannelMap(%d) has %d channels", n, len(m))
		}
	}

	six, _ := DefaultChannelMap(6)
	want := ChannelMap{FrontLeft, FrontRight, FrontCenter, LFE, RearLeft, RearRight}
	if !six.Equal(want) {
		t.Errorf("DefaultChannelMap(6) = %s, want %s", six, want)
	}

	// results must not alias the table
	six[0] = TopLeft
	if again, _ := DefaultChannelMap(6); again[0] != FrontLeft {
		t.Error("DefaultChannelMap() returned shared storage")
	}

	for _, n := range []int{0, -1, 9} {
		if _, err := DefaultChannelMap(n); !errors.Is(err, ErrNoDefaultChannelMap) {
			t.Errorf("DefaultChannelMap(%d) error = %v, want ErrNoDefaultChannelMap", n, err)
		}
	}
}

func TestVorbisChannelMap(t *testing.T) {
	t.Parallel()

	six, err := VorbisChannelMap(6)
	if err != nil {
		t.Fatalf("VorbisChannelMap(6) error = %v", err)
	}
	want := ChannelMap{FrontLeft, FrontCenter, FrontRight, RearLeft, RearRight, LFE}
	if !six.Equal(want) {
		t.Errorf("VorbisChannelMap(6) = %s, want %s", six, want)
	}

	// vorbis and wav agree up to two channels
	for n := 1; n <= 2; n++ {
		v, _ := VorbisChannelMap(n)
		d, _ := DefaultChannelMap(n)
		if !v.Equal(d) {
			t.Errorf("VorbisChannelMap(%d) = %s, DefaultChannelMap = %s", n, v, d)
		}
	}

	if _, err := VorbisChannelMap(9); !errors.Is(err, ErrNoDefaultChannelMap) {
		t.Errorf("VorbisChannelMap(9) error = %v, want ErrNoDefaultChannelMap", err)
	}
}

func TestChannel_String(t *testing.T) {
	t.Parallel()

	if got := LFE.String(); got != "lfe" {
		t.Errorf("LFE.String() = %q, want lfe", got)
	}
	if got := Channel(200).String(); got != "channel(200)" {
		t.Errorf("Channel(200).String() = %q", got)
	}
}
