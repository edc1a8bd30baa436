// SPDX-License-Identifier: EPL-2.0

package samplebox

import (
	"fmt"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
)

// Convert returns a copy of s at the given rate, width and channel count.
// Rates go through cubic resampling, widths are rescaled so full scale
// stays full scale, mono is duplicated to stereo and stereo is averaged to
// mono. s itself is not changed, so it may be locked.
func Convert(s *sample.Sample, rate, width, channels int) (*sample.Sample, error) {
	out := s.Copy()

	if out.SampleRate() != rate {
		if _, err := out.Resample(rate); err != nil {
			return nil, err
		}
	}

	if out.SampleWidth() != width {
		frames, err := pcm.ConvertWidth(out.Frames(), out.SampleWidth(), width, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", sample.ErrUnsupported, err)
		}

		converted, err := sample.FromRawFrames(frames, width, rate, out.Channels())
		if err != nil {
			return nil, err
		}

		out = converted.SetSource(s.Source())
	}

	switch {
	case out.Channels() == channels:
	case channels == 1:
		if _, err := out.Mono(0.5, 0.5); err != nil {
			return nil, err
		}
	case channels == 2:
		if _, err := out.Stereo(1, 1); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d channels", sample.ErrUnsupported, channels)
	}

	return out, nil
}
