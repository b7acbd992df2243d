// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
)

// Raw word builders. Units copy words opaquely, so the machine byte order is
// used on both sides.

func Int8Bytes(v ...int8) []byte {
	b := make([]byte, len(v))
	for i, s := range v {
		b[i] = byte(s)
	}
	return b
}

func Int16Bytes(v ...int16) []byte {
	b := make([]byte, len(v)*2)
	for i, s := range v {
		binary.NativeEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

func Int16s(b []byte) []int16 {
	v := make([]int16, len(b)/2)
	for i := range v {
		v[i] = int16(binary.NativeEndian.Uint16(b[i*2:]))
	}
	return v
}

func Int32Bytes(v ...int32) []byte {
	b := make([]byte, len(v)*4)
	for i, s := range v {
		binary.NativeEndian.PutUint32(b[i*4:], uint32(s))
	}
	return b
}

func Int32s(b []byte) []int32 {
	v := make([]int32, len(b)/4)
	for i := range v {
		v[i] = int32(binary.NativeEndian.Uint32(b[i*4:]))
	}
	return v
}

func Float32Bytes(v ...float32) []byte {
	b := make([]byte, len(v)*4)
	for i, s := range v {
		binary.NativeEndian.PutUint32(b[i*4:], math.Float32bits(s))
	}
	return b
}

func Float32s(b []byte) []float32 {
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:]))
	}
	return v
}

func Float64Bytes(v ...float64) []byte {
	b := make([]byte, len(v)*8)
	for i, s := range v {
		binary.NativeEndian.PutUint64(b[i*8:], math.Float64bits(s))
	}
	return b
}

func Float64s(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.NativeEndian.Uint64(b[i*8:]))
	}
	return v
}
