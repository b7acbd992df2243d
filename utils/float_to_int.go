// SPDX-License-Identifier: EPL-2.0

package utils

// Int16ToFloat32 normalizes a 16-bit sample to [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt16 scales a normalized sample back to 16 bits, saturating at
// the int16 range. The fractional part is truncated.
func Float32ToInt16(x float32) int16 {
	s := x * 32768.0
	if s > 32767 {
		return 32767
	}
	if s < -32768 {
		return -32768
	}
	return int16(s)
}
