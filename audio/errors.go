// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnknownEncoding     = errors.New("unknown sample encoding")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrUnknownChannel      = errors.New("unknown channel")
	ErrEmptyChannelMap     = errors.New("empty channel map")
	ErrNoDefaultChannelMap = errors.New("no default channel map")
	ErrNilFormat           = errors.New("nil format")
	ErrChannelNotFound     = errors.New("channel not present in source")
)
