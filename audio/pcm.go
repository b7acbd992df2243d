// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"math"
)

// IntToFloat normalizes a signed PCM integer of the given bit depth to [-1,1).
func IntToFloat(v int, bits int) float32 {
	return float32(float64(v) / fullScale(bits))
}

// FloatToInt scales a normalized sample to a signed PCM integer of the given
// bit depth, saturating at the integer range.
func FloatToInt(v float32, bits int) int {
	full := fullScale(bits)
	s := float64(v) * full
	if s > full-1 {
		return int(full - 1)
	}
	if s < -full {
		return int(-full)
	}
	return int(s)
}

func fullScale(bits int) float64 {
	if bits <= 0 || bits > 32 {
		bits = 16
	}
	return float64(int64(1) << (bits - 1))
}

// EncodeFloat32 writes normalized samples into dst using enc, growing dst if
// its capacity is too small. The returned slice holds exactly len(src) words.
func EncodeFloat32(dst []byte, src []float32, enc Encoding) []byte {
	w := enc.ByteWidth()
	dst = growBytes(dst, len(src)*w)

	switch enc {
	case Int8:
		for i, v := range src {
			dst[i] = byte(int8(FloatToInt(v, 8)))
		}
	case Int16On32:
		for i, v := range src {
			binary.NativeEndian.PutUint32(dst[i*4:], uint32(int32(FloatToInt(v, 16))))
		}
	case Int24:
		for i, v := range src {
			binary.NativeEndian.PutUint32(dst[i*4:], uint32(int32(FloatToInt(v, 24))))
		}
	case Int32:
		for i, v := range src {
			binary.NativeEndian.PutUint32(dst[i*4:], uint32(int32(FloatToInt(v, 32))))
		}
	case Float32:
		for i, v := range src {
			binary.NativeEndian.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	case Float64:
		for i, v := range src {
			binary.NativeEndian.PutUint64(dst[i*8:], math.Float64bits(float64(v)))
		}
	default:
		for i, v := range src {
			binary.NativeEndian.PutUint16(dst[i*2:], uint16(int16(FloatToInt(v, 16))))
		}
	}

	return dst
}

// DecodeFloat32 reads len(src)/width words of enc from src into dst,
// growing dst if needed.
func DecodeFloat32(dst []float32, src []byte, enc Encoding) []float32 {
	w := enc.ByteWidth()
	n := len(src) / w
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]

	switch enc {
	case Int8:
		for i := range n {
			dst[i] = IntToFloat(int(int8(src[i])), 8)
		}
	case Int16On32:
		for i := range n {
			dst[i] = IntToFloat(int(int32(binary.NativeEndian.Uint32(src[i*4:]))), 16)
		}
	case Int24:
		for i := range n {
			dst[i] = IntToFloat(int(int32(binary.NativeEndian.Uint32(src[i*4:]))), 24)
		}
	case Int32:
		for i := range n {
			dst[i] = IntToFloat(int(int32(binary.NativeEndian.Uint32(src[i*4:]))), 32)
		}
	case Float32:
		for i := range n {
			dst[i] = math.Float32frombits(binary.NativeEndian.Uint32(src[i*4:]))
		}
	case Float64:
		for i := range n {
			dst[i] = float32(math.Float64frombits(binary.NativeEndian.Uint64(src[i*8:])))
		}
	default:
		for i := range n {
			dst[i] = IntToFloat(int(int16(binary.NativeEndian.Uint16(src[i*2:]))), 16)
		}
	}

	return dst
}

func growBytes(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}
