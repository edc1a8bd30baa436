// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"

	"github.com/ik5/samplebox/utils"
)

// RateConvert resamples an interleaved buffer from inRate to outRate using
// Catmull-Rom interpolation between neighbouring frames. Edge frames are
// repeated where the interpolation window runs past the buffer.
// The output holds floor(frames*outRate/inRate) frames.
func RateConvert(buf []byte, width, channels, inRate, outRate int) ([]byte, error) {
	if err := checkBuffer(buf, width); err != nil {
		return nil, err
	}

	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("%w: got %d", ErrChannels, channels)
	}

	if inRate <= 1 || outRate <= 1 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrRate, inRate, outRate)
	}

	frameSize := width * channels
	if len(buf)%frameSize != 0 {
		return nil, fmt.Errorf("%w: partial frame", ErrLength)
	}

	if inRate == outRate {
		out := make([]byte, len(buf))
		copy(out, buf)

		return out, nil
	}

	inFrames := len(buf) / frameSize
	outFrames := int(int64(inFrames) * int64(outRate) / int64(inRate))
	out := make([]byte, outFrames*frameSize)

	if inFrames == 0 {
		return out, nil
	}

	// source frame index clamped to the buffer
	at := func(f, c int) float64 {
		f = max(0, min(inFrames-1, f))
		return float64(Get(buf, width, f*channels+c))
	}

	ratio := float64(inRate) / float64(outRate)

	for j := range outFrames {
		pos := float64(j) * ratio
		i := int(math.Floor(pos))
		x := pos - float64(i)

		for c := range channels {
			v := utils.CubicInterpolate(at(i-1, c), at(i, c), at(i+1, c), at(i+2, c), x)
			Put(out, width, j*channels+c, utils.RoundClamp(v, width))
		}
	}

	return out, nil
}
