// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"

	"github.com/ik5/samplebox/pcm"
)

// otherFrames returns the frames of other, limited to otherSeconds when that
// is positive.
func otherFrames(other *Sample, otherSeconds float64) []byte {
	if otherSeconds > 0 {
		return other.frames[:other.clampIdx(otherSeconds)]
	}

	return other.frames
}

// Mix adds other into s. otherSeconds > 0 limits how much of other is used.
// With padShortest the shorter buffer is extended with silence, otherwise the
// result is cut to the shorter of the two.
func (s *Sample) Mix(other *Sample, otherSeconds float64, padShortest bool) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if err := s.compatible(other); err != nil {
		return s, err
	}

	a := s.frames
	b := otherFrames(other, otherSeconds)

	if padShortest {
		n := max(len(a), len(b))
		a = padTo(a, n)
		b = padTo(b, n)
	} else {
		n := min(len(a), len(b))
		a = a[:n]
		b = b[:n]
	}

	mixed, err := pcm.Add(a, b, s.width)
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	s.frames = mixed

	return s, nil
}

func padTo(buf []byte, n int) []byte {
	if len(buf) >= n {
		return buf
	}

	out := make([]byte, n)
	copy(out, buf)

	return out
}

// MixAt adds other into s starting at seconds. s grows with silence when other
// runs past its end; audio outside the overlap is left untouched. MixAt at 0
// is Mix with padding.
func (s *Sample) MixAt(seconds float64, other *Sample, otherSeconds float64) (*Sample, error) {
	if seconds == 0 {
		return s.Mix(other, otherSeconds, true)
	}

	if err := s.mutable(); err != nil {
		return s, err
	}

	if err := s.compatible(other); err != nil {
		return s, err
	}

	if seconds < 0 {
		return s, fmt.Errorf("%w: mix at %v", ErrArgument, seconds)
	}

	b := otherFrames(other, otherSeconds)
	start := s.frameIdx(seconds)
	end := start + len(b)

	if end > len(s.frames) {
		s.frames = padTo(s.frames, end)
	}

	mixed, err := pcm.Add(s.frames[start:end], b, s.width)
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	copy(s.frames[start:end], mixed)

	return s, nil
}

// Echo mixes amount echoes of the last length seconds back into the sample.
// Echo k starts k*delay seconds after that tail begins and is scaled by
// decay^k. Echoes quieter than one quantization step at the current width are
// skipped, as are all that follow them.
func (s *Sample) Echo(length float64, amount int, delay, decay float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if length < 0 || delay < 0 || decay < 0 {
		return s, fmt.Errorf("%w: echo length %v delay %v decay %v", ErrArgument, length, delay, decay)
	}

	if amount <= 0 {
		return s, nil
	}

	start := max(0, s.Duration()-length)
	tail := s.Copy()
	tail.frames = append([]byte(nil), s.frames[s.clampIdx(start):]...)

	step := 1.0 / float64(int64(1)<<(8*s.width-1))
	amp := decay
	at := start

	for range amount {
		if amp < step {
			break
		}

		at += delay

		echo, err := tail.AtVolume(amp)
		if err != nil {
			return s, err
		}

		if _, err := s.MixAt(at, echo, 0); err != nil {
			return s, err
		}

		amp *= decay
	}

	return s, nil
}
