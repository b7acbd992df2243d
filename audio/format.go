// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// Encoding is the numeric representation of one sample.
type Encoding uint8

const (
	Unknown Encoding = iota
	Int8
	Int16
	// Int16On32 carries an int16 value in a 32-bit word.
	Int16On32
	// Int24 carries a sign-extended 24-bit value in a 32-bit word.
	Int24
	Int32
	Float32
	Float64
)

var encodingNames = [...]string{
	Unknown:   "unknown",
	Int8:      "int8",
	Int16:     "int16",
	Int16On32: "int16-on-int32",
	Int24:     "int24",
	Int32:     "int32",
	Float32:   "float",
	Float64:   "double",
}

// ByteWidth is the size in bytes of one sample word. Encodings outside the
// known set fall back to the int16 width.
func (e Encoding) ByteWidth() int {
	switch e {
	case Int8:
		return 1
	case Int16On32, Int24, Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		return 2
	}
}

// BitDepth is the number of significant bits of an integer encoding, 0 for floats.
func (e Encoding) BitDepth() int {
	switch e {
	case Int8:
		return 8
	case Int16, Int16On32:
		return 16
	case Int24:
		return 24
	case Int32:
		return 32
	default:
		return 0
	}
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

// ParseEncoding accepts the names returned by String plus a few common aliases.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int8", "s8":
		return Int8, nil
	case "int16", "s16":
		return Int16, nil
	case "int16-on-int32", "int16on32":
		return Int16On32, nil
	case "int24", "s24":
		return Int24, nil
	case "int32", "s32":
		return Int32, nil
	case "float", "float32", "f32":
		return Float32, nil
	case "double", "float64", "f64":
		return Float64, nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// EncodingForBitDepth maps a PCM integer bit depth to its encoding.
func EncodingForBitDepth(bits int) (Encoding, error) {
	switch bits {
	case 8:
		return Int8, nil
	case 16:
		return Int16, nil
	case 24:
		return Int24, nil
	case 32:
		return Int32, nil
	}

	return Unknown, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
}
