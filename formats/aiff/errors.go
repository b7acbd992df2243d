// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
	ErrUnsupportedBitDepth   = errors.New("unsupported AIFF bit depth")
	ErrUnsupportedEncoding   = errors.New("encoding can not be written to AIFF")
	ErrPartialFrame          = errors.New("sample count is not a multiple of channels")
)
