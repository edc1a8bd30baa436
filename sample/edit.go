// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"

	"github.com/ik5/samplebox/pcm"
)

// Clip keeps only the part between start and end seconds.
func (s *Sample) Clip(start, end float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if start < 0 || end < start {
		return s, fmt.Errorf("%w: clip %v..%v", ErrArgument, start, end)
	}

	from := s.clampIdx(start)
	to := s.clampIdx(end)
	s.frames = append([]byte(nil), s.frames[from:to]...)

	return s, nil
}

// Split cuts the sample at seconds. s keeps the head and the returned sample
// holds the rest.
func (s *Sample) Split(seconds float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return nil, err
	}

	if seconds < 0 {
		return nil, fmt.Errorf("%w: split at %v", ErrArgument, seconds)
	}

	return s.splitAt(s.clampIdx(seconds)), nil
}

// splitAt cuts at a frame aligned byte offset.
func (s *Sample) splitAt(at int) *Sample {
	rest := &Sample{
		frames: append([]byte(nil), s.frames[at:]...),
		width:  s.width,
		rate:   s.rate,
		nch:    s.nch,
		source: s.source,
	}
	s.frames = s.frames[:at:at]

	return rest
}

// AddSilence grows the sample with seconds of silence at the end, or at the
// start when atStart is set.
func (s *Sample) AddSilence(seconds float64, atStart bool) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if seconds < 0 {
		return s, fmt.Errorf("%w: negative silence %v", ErrArgument, seconds)
	}

	silence := pcm.Silence(s.frameIdx(seconds))
	if atStart {
		s.frames = append(silence, s.frames...)
	} else {
		s.frames = append(s.frames, silence...)
	}

	return s, nil
}

// Join appends the frames of other.
func (s *Sample) Join(other *Sample) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if err := s.compatible(other); err != nil {
		return s, err
	}

	s.frames = append(s.frames, other.frames...)

	return s, nil
}

// Delay shifts the sample in time. A positive delay inserts silence at the
// start, a negative one drops audio from the start. With keepLength the
// duration is preserved: a positive delay cuts the end and a negative delay
// pads silence at the end.
func (s *Sample) Delay(seconds float64, keepLength bool) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	n := len(s.frames)

	switch {
	case seconds > 0:
		if _, err := s.AddSilence(seconds, true); err != nil {
			return s, err
		}
		if keepLength {
			s.frames = s.frames[:n:n]
		}
	case seconds < 0:
		if keepLength {
			if _, err := s.AddSilence(-seconds, false); err != nil {
				return s, err
			}
			s.frames = append([]byte(nil), s.frames[len(s.frames)-n:]...)

			return s, nil
		}

		s.frames = append([]byte(nil), s.frames[s.clampIdx(-seconds):]...)
	}

	return s, nil
}

// Reverse plays the sample backwards. Channel order within each frame is kept.
func (s *Sample) Reverse() (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	frames, err := pcm.ReverseFrames(s.frames, s.FrameSize())
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	s.frames = frames

	return s, nil
}
