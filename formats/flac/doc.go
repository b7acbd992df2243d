// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams with github.com/mewkiz/flac.
//
// Frames are parsed one at a time and handed out across ReadSamples calls,
// so a read never drops the tail of a block. Samples are normalized using
// the stream's exact bit depth; the native encoding is the narrowest
// container that holds it (a 20 bit stream reports int24).
package flac
