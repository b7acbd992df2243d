// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes uncompressed AIFF files through
// github.com/go-audio/aiff.
//
// 16, 24 and 32 bit files are supported. The native encoding follows the
// file's bit depth and channels are reported in the default order:
//
//	src, err := aiff.Decoder{}.Decode(f)
//
//	port := audio.PortOf(src)
//	port.Encoding = audio.NativeEncoding(src)
//	w, err := aiff.NewWriter(out, port)
package aiff
