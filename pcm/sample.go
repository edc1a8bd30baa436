// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/samplebox/utils"
)

// MaxValue is the largest signed value a width-byte sample can hold.
func MaxValue(width int) int64 {
	return int64(goaudio.IntMaxSignedValue(8 * width))
}

// MinValue is the smallest signed value a width-byte sample can hold.
func MinValue(width int) int64 {
	return -MaxValue(width) - 1
}

// CheckWidth reports ErrWidth for anything but 2, 3 or 4 byte samples.
func CheckWidth(width int) error {
	if width < 2 || width > 4 {
		return fmt.Errorf("%w: got %d", ErrWidth, width)
	}

	return nil
}

func checkBuffer(buf []byte, width int) error {
	if err := CheckWidth(width); err != nil {
		return err
	}

	if len(buf)%width != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrLength, len(buf), width)
	}

	return nil
}

// Count returns how many samples of the given width buf holds.
func Count(buf []byte, width int) int {
	return len(buf) / width
}

// Get decodes the i-th little-endian sample of buf.
func Get(buf []byte, width, i int) int32 {
	o := i * width

	switch width {
	case 2:
		return int32(int16(binary.LittleEndian.Uint16(buf[o:])))
	case 3:
		return goaudio.Int24LETo32(buf[o : o+3])
	default:
		return int32(binary.LittleEndian.Uint32(buf[o:]))
	}
}

// Put encodes v as the i-th little-endian sample of buf. v must already fit the width.
func Put(buf []byte, width, i int, v int32) {
	o := i * width

	switch width {
	case 2:
		binary.LittleEndian.PutUint16(buf[o:], uint16(v))
	case 3:
		// written in place, goaudio.Int32toInt24LEBytes allocates per call
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
	default:
		binary.LittleEndian.PutUint32(buf[o:], uint32(v))
	}
}

// clamp saturates v to the range of a width-byte sample.
func clamp(v int64, width int) int32 {
	return utils.ClampInt(v, width)
}

// Values decodes every sample of buf.
func Values(buf []byte, width int) ([]int32, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	out := make([]int32, Count(buf, width))
	for i := range out {
		out[i] = Get(buf, width, i)
	}

	return out, nil
}

// FromValues encodes values at the given width, saturating each one.
func FromValues(values []int64, width int) ([]byte, error) {
	if err := CheckWidth(width); err != nil {
		return nil, err
	}

	out := make([]byte, len(values)*width)
	for i, v := range values {
		Put(out, width, i, clamp(v, width))
	}

	return out, nil
}

// Silence returns n zeroed bytes.
func Silence(n int) []byte {
	if n <= 0 {
		return []byte{}
	}

	return make([]byte, n)
}
