// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

var errSeek = errors.New("audiotest: invalid seek")

// Buffer is an in-memory io.WriteSeeker, standing in for a file when testing
// encoders that rewrite their headers.
type Buffer struct {
	data []byte
	pos  int64
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}

	copy(b.data[b.pos:end], p)
	b.pos = end

	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.pos + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errSeek
	}

	if abs < 0 {
		return 0, errSeek
	}

	b.pos = abs

	return abs, nil
}

// Bytes returns everything written so far.
func (b *Buffer) Bytes() []byte {
	return b.data
}
