// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrNotFlacFile           = errors.New("not a FLAC stream")
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
	ErrChannelMismatch       = errors.New("FLAC frame channel count differs from stream")
)
