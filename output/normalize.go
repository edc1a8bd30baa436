// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"iter"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
)

// Normalized converts each sample of seq to format f, lazily.
//
// Samples that are not 16 bit are amplified by the fixed amplification and
// narrowed to 16 bit, so loudness stays consistent across a stream that is
// never seen whole. Channels, rate and a non 16-bit target width are then
// converted as needed. Samples already in format f are passed through as
// they are; all others are converted on a copy, leaving the input samples
// untouched. The sequence stops after the first error.
func Normalized(seq iter.Seq[*sample.Sample], f Format, amplification float64) iter.Seq2[*sample.Sample, error] {
	return func(yield func(*sample.Sample, error) bool) {
		for s := range seq {
			out, err := normalize(s, f, amplification)
			if !yield(out, err) || err != nil {
				return
			}
		}
	}
}

func normalize(s *sample.Sample, f Format, amplification float64) (*sample.Sample, error) {
	if FormatOf(s) == f {
		return s, nil
	}

	out := s.Copy()

	if out.SampleWidth() != 2 {
		if _, err := out.Amplify(amplification); err != nil {
			return nil, err
		}

		if _, err := out.Make16Bit(false); err != nil {
			return nil, err
		}
	}

	switch {
	case out.Channels() == f.Channels:
	case f.Channels == 2:
		if _, err := out.Stereo(1, 1); err != nil {
			return nil, err
		}
	default:
		if _, err := out.Mono(0.5, 0.5); err != nil {
			return nil, err
		}
	}

	if _, err := out.Resample(f.Rate); err != nil {
		return nil, err
	}

	if f.Width == 2 {
		return out, nil
	}

	frames, err := pcm.Lin2Lin(out.Frames(), 2, f.Width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	widened, err := sample.FromRawFrames(frames, f.Width, f.Rate, f.Channels)
	if err != nil {
		return nil, err
	}

	return widened.SetSource(s.Source()), nil
}
