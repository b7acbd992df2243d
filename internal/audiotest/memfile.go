// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// MemFile is an in-memory io.WriteSeeker for encoders that patch headers.
type MemFile struct {
	data []byte
	off  int64
}

func (f *MemFile) Write(p []byte) (int, error) {
	end := f.off + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.off:], p)
	f.off = end
	return len(p), nil
}

func (f *MemFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = f.off + offset
	case io.SeekEnd:
		abs = int64(len(f.data)) + offset
	default:
		return 0, errors.New("memfile: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("memfile: negative position")
	}
	f.off = abs
	return abs, nil
}

func (f *MemFile) Bytes() []byte { return f.data }
