// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampler"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/utils"
)

// Quality selects the filter used by ResampleQuality.
type Quality = resampling.QualityPreset

const (
	QualityQuick    = resampling.QualityQuick
	QualityLow      = resampling.QualityLow
	QualityMedium   = resampling.QualityMedium
	QualityHigh     = resampling.QualityHigh
	QualityVeryHigh = resampling.QualityVeryHigh
)

// SetSampleRate changes the declared rate without touching the frames, so
// pitch and duration change with it.
func (s *Sample) SetSampleRate(rate int) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if rate <= 1 {
		return s, fmt.Errorf("%w: sample rate %d", ErrArgument, rate)
	}

	s.rate = rate

	return s, nil
}

// Amplify multiplies every value by factor, saturating at the width limits.
func (s *Sample) Amplify(factor float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	frames, err := pcm.Mul(s.frames, s.width, factor)
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	s.frames = frames

	return s, nil
}

// AmplifyMax scales the sample so its peak sits two steps below full scale.
func (s *Sample) AmplifyMax() (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	peak := s.Maximum()
	if peak == 0 {
		return s, nil
	}

	target := pcm.MaxValue(s.width) - 1

	return s.Amplify(float64(target) / float64(peak))
}

// AtVolume returns an amplified copy; s itself is left alone, so this works on
// locked samples too.
func (s *Sample) AtVolume(volume float64) (*Sample, error) {
	return s.Copy().Amplify(volume)
}

// Invert flips the polarity of every value.
func (s *Sample) Invert() (*Sample, error) {
	return s.Amplify(-1)
}

// Bias adds a DC offset to every value.
func (s *Sample) Bias(bias int64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	frames, err := pcm.Bias(s.frames, s.width, bias)
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	s.frames = frames

	return s, nil
}

// Get32BitFrames returns the frames widened to 4 bytes. With scale the amplitude
// is shifted to fill the 32-bit range; without it the values keep their range,
// leaving headroom for mixing. 4-byte samples are returned as they are.
func (s *Sample) Get32BitFrames(scale bool) []byte {
	if s.width == 4 {
		return s.Frames()
	}

	frames, _ := pcm.ConvertWidth(s.frames, s.width, 4, scale)

	return frames
}

// Make32Bit converts the sample to 4-byte width, see Get32BitFrames.
func (s *Sample) Make32Bit(scale bool) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	s.frames = s.Get32BitFrames(scale)
	s.width = 4

	return s, nil
}

// Make16Bit narrows the sample to 2-byte width. With maximize the sample is
// first run through AmplifyMax so the narrowed result uses the full range.
func (s *Sample) Make16Bit(maximize bool) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if maximize {
		if _, err := s.AmplifyMax(); err != nil {
			return s, err
		}
	}

	if s.width == 2 {
		return s, nil
	}

	frames, err := pcm.Lin2Lin(s.frames, s.width, 2)
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	s.frames = frames
	s.width = 2

	return s, nil
}

// Resample converts to rate using the kernel's cubic interpolation.
func (s *Sample) Resample(rate int) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if rate == s.rate {
		return s, nil
	}

	frames, err := pcm.RateConvert(s.frames, s.width, s.nch, s.rate, rate)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	s.frames = frames
	s.rate = rate

	return s, nil
}

// ResampleQuality converts to rate with a windowed-sinc resampler, one channel
// at a time. The result holds the same number of frames Resample would produce.
func (s *Sample) ResampleQuality(rate int, quality Quality) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if rate <= 1 {
		return s, fmt.Errorf("%w: sample rate %d", ErrArgument, rate)
	}

	if rate == s.rate {
		return s, nil
	}

	inFrames := s.FrameCount()
	outFrames := int(int64(inFrames) * int64(rate) / int64(s.rate))
	out := make([]byte, outFrames*s.FrameSize())

	if inFrames > 0 {
		channel := make([]float64, inFrames)

		for c := range s.nch {
			for f := range inFrames {
				channel[f] = float64(pcm.Get(s.frames, s.width, f*s.nch+c))
			}

			resampled, err := resampling.ResampleMono(channel, float64(s.rate), float64(rate), quality)
			if err != nil {
				return s, fmt.Errorf("resample channel %d: %w", c, err)
			}

			for f := range min(outFrames, len(resampled)) {
				pcm.Put(out, s.width, f*s.nch+c, utils.RoundClamp(resampled[f], s.width))
			}
		}
	}

	s.frames = out
	s.rate = rate

	return s, nil
}

// Speed plays the sample faster (factor > 1) or slower without changing its
// rate; pitch and duration change accordingly.
func (s *Sample) Speed(factor float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if factor <= 0 {
		return s, fmt.Errorf("%w: speed %v", ErrArgument, factor)
	}

	if factor == 1 {
		return s, nil
	}

	frames, err := pcm.RateConvert(s.frames, s.width, s.nch, int(float64(s.rate)*factor), s.rate)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	s.frames = frames

	return s, nil
}

// Normalize converts the sample to the norm format: 44100 Hz, 16 bit, stereo.
func (s *Sample) Normalize() (*Sample, error) {
	if _, err := s.Resample(NormRate); err != nil {
		return s, err
	}

	if s.width != NormWidth {
		frames, err := pcm.Lin2Lin(s.frames, s.width, NormWidth)
		if err != nil {
			return s, fmt.Errorf("%w", err)
		}

		s.frames = frames
		s.width = NormWidth
	}

	if s.nch == 1 {
		return s.Stereo(1, 1)
	}

	return s, nil
}
