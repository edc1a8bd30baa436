// SPDX-License-Identifier: EPL-2.0

// Package seekable turns plain readers into io.ReadSeeker for container
// decoders that need to jump between chunks.
package seekable

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrWhence   = errors.New("invalid whence")
	ErrNegative = errors.New("negative position")
)

// Reader returns r itself when it can seek, otherwise it buffers all of r in
// memory.
func Reader(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return &memory{data: data}, nil
}

// memory implements io.ReadSeeker over a byte slice.
type memory struct {
	data   []byte
	offset int64
}

func (m *memory) Read(p []byte) (int, error) {
	if m.offset >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n := copy(p, m.data[m.offset:])
	m.offset += int64(n)

	return n, nil
}

func (m *memory) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.offset + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, fmt.Errorf("%w: %d", ErrWhence, whence)
	}

	if abs < 0 {
		return 0, ErrNegative
	}

	m.offset = abs

	return abs, nil
}
