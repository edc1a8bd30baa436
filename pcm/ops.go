// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"

	"github.com/ik5/samplebox/utils"
)

// Max returns the peak absolute sample value of buf.
func Max(buf []byte, width int) (int64, error) {
	if err := checkBuffer(buf, width); err != nil {
		return 0, err
	}

	var peak int64
	for i := range Count(buf, width) {
		v := int64(Get(buf, width, i))
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}

	return peak, nil
}

// RMS returns the root mean square of all samples in buf.
func RMS(buf []byte, width int) (int64, error) {
	if err := checkBuffer(buf, width); err != nil {
		return 0, err
	}

	n := Count(buf, width)
	if n == 0 {
		return 0, nil
	}

	var sum float64
	for i := range n {
		v := float64(Get(buf, width, i))
		sum += v * v
	}

	return int64(math.Sqrt(sum / float64(n))), nil
}

// Mul scales every sample by factor. Results are truncated toward zero and
// saturate at the limits of the width.
func Mul(buf []byte, width int, factor float64) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf))
	for i := range Count(buf, width) {
		Put(out, width, i, utils.TruncClamp(float64(Get(buf, width, i))*factor, width))
	}

	return out, nil
}

// Add sums a and b sample by sample, saturating instead of wrapping.
func Add(a, b []byte, width int) ([]byte, error) {
	if err := checkBuffer(a, width); err != nil {
		return nil, err
	}

	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d and %d bytes", ErrLength, len(a), len(b))
	}

	out := make([]byte, len(a))
	for i := range Count(a, width) {
		Put(out, width, i, clamp(int64(Get(a, width, i))+int64(Get(b, width, i)), width))
	}

	return out, nil
}

// Bias adds a constant offset to every sample, saturating at the width's limits.
func Bias(buf []byte, width int, bias int64) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf))
	for i := range Count(buf, width) {
		Put(out, width, i, clamp(int64(Get(buf, width, i))+bias, width))
	}

	return out, nil
}

// Lin2Lin converts between widths by shifting, so full scale stays full scale.
func Lin2Lin(buf []byte, from, to int) ([]byte, error) {
	return ConvertWidth(buf, from, to, true)
}

// ConvertWidth changes the sample width of buf. With rescale the amplitude is
// shifted to fill the new width; without it the numeric value is kept and only
// saturated when narrowing.
func ConvertWidth(buf []byte, from, to int, rescale bool) ([]byte, error) {
	if err := checkBuffer(buf, from); err != nil {
		return nil, err
	}

	if err := CheckWidth(to); err != nil {
		return nil, err
	}

	n := Count(buf, from)
	out := make([]byte, n*to)

	for i := range n {
		v := int64(Get(buf, from, i))

		if rescale {
			v <<= 8 * (4 - from)
			v >>= 8 * (4 - to)
			Put(out, to, i, int32(v))

			continue
		}

		Put(out, to, i, clamp(v, to))
	}

	return out, nil
}

// ToMono folds an interleaved stereo buffer into mono as left*lfactor + right*rfactor.
func ToMono(buf []byte, width int, lfactor, rfactor float64) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	if len(buf)%(2*width) != 0 {
		return nil, fmt.Errorf("%w: stereo buffer holds a partial frame", ErrLength)
	}

	frames := len(buf) / (2 * width)
	out := make([]byte, frames*width)

	for f := range frames {
		l := float64(Get(buf, width, 2*f))
		r := float64(Get(buf, width, 2*f+1))
		Put(out, width, f, utils.TruncClamp(l*lfactor+r*rfactor, width))
	}

	return out, nil
}

// ToStereo spreads a mono buffer to interleaved stereo with independent channel gains.
func ToStereo(buf []byte, width int, lfactor, rfactor float64) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	n := Count(buf, width)
	out := make([]byte, 2*len(buf))

	for i := range n {
		v := float64(Get(buf, width, i))
		Put(out, width, 2*i, utils.TruncClamp(v*lfactor, width))
		Put(out, width, 2*i+1, utils.TruncClamp(v*rfactor, width))
	}

	return out, nil
}

// Reverse reverses the order of the individual samples of buf.
func Reverse(buf []byte, width int) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	return ReverseFrames(buf, width)
}

// ReverseFrames reverses the order of frameSize-byte frames, keeping the bytes of
// each frame (and so its channel order) intact.
func ReverseFrames(buf []byte, frameSize int) ([]byte, error) {
	if frameSize <= 0 || len(buf)%frameSize != 0 {
		return nil, fmt.Errorf("%w: frame size %d", ErrLength, frameSize)
	}

	n := len(buf) / frameSize
	out := make([]byte, len(buf))

	for i := range n {
		copy(out[(n-1-i)*frameSize:(n-i)*frameSize], buf[i*frameSize:(i+1)*frameSize])
	}

	return out, nil
}

// ByteSwap flips the byte order of every sample, converting between little and
// big endian layouts.
func ByteSwap(buf []byte, width int) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf))
	for o := 0; o < len(buf); o += width {
		for j := range width {
			out[o+j] = buf[o+width-1-j]
		}
	}

	return out, nil
}
