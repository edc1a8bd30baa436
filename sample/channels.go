// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"
	"math"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/utils"
)

// Channel selects the left or right side of a stereo sample.
type Channel int

const (
	Left Channel = iota
	Right
)

func (c Channel) String() string {
	switch c {
	case Left:
		return "L"
	case Right:
		return "R"
	}

	return fmt.Sprintf("Channel(%d)", int(c))
}

// Mono folds a stereo sample into one channel as left*lfactor + right*rfactor.
// Mono samples are left as they are.
func (s *Sample) Mono(lfactor, rfactor float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if s.nch == 1 {
		return s, nil
	}

	frames, err := pcm.ToMono(s.frames, s.width, lfactor, rfactor)
	if err != nil {
		return s, fmt.Errorf("%w", err)
	}

	s.frames = frames
	s.nch = 1

	return s, nil
}

func (s *Sample) requireStereo() error {
	if s.nch != 2 {
		return fmt.Errorf("%w: need 2 channels, have %d", ErrRange, s.nch)
	}

	return nil
}

// KeepLeft keeps only the left channel of a stereo sample.
func (s *Sample) KeepLeft() (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if err := s.requireStereo(); err != nil {
		return s, err
	}

	return s.Mono(1, 0)
}

// KeepRight keeps only the right channel of a stereo sample.
func (s *Sample) KeepRight() (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if err := s.requireStereo(); err != nil {
		return s, err
	}

	return s.Mono(0, 1)
}

// Stereo turns a mono sample into stereo with the given channel gains. On a
// stereo sample the gains are applied to the existing channels instead.
func (s *Sample) Stereo(lfactor, rfactor float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	switch s.nch {
	case 1:
		frames, err := pcm.ToStereo(s.frames, s.width, lfactor, rfactor)
		if err != nil {
			return s, fmt.Errorf("%w", err)
		}

		s.frames = frames
		s.nch = 2

		return s, nil
	case 2:
		gains := [2]float64{lfactor, rfactor}
		out := make([]byte, len(s.frames))

		for i := range pcm.Count(s.frames, s.width) {
			v := float64(pcm.Get(s.frames, s.width, i)) * gains[i%2]
			pcm.Put(out, s.width, i, utils.TruncClamp(v, s.width))
		}

		s.frames = out

		return s, nil
	}

	return s, fmt.Errorf("%w: %d channels", ErrRange, s.nch)
}

// StereoMix mixes the mono sample other into one channel of s, scaled by
// factor and starting at seconds. A mono s first becomes stereo with its audio
// on the opposite channel.
func (s *Sample) StereoMix(other *Sample, ch Channel, factor, seconds, otherSeconds float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if other.nch != 1 {
		return s, fmt.Errorf("%w: mixed-in sample must be mono, has %d channels", ErrRange, other.nch)
	}

	if other.width != s.width || other.rate != s.rate {
		return s, fmt.Errorf("%w: %d Hz/%d bytes vs %d Hz/%d bytes", ErrMismatch,
			s.rate, s.width, other.rate, other.width)
	}

	var own, mixed [2]float64

	switch ch {
	case Left:
		own, mixed = [2]float64{0, 1}, [2]float64{factor, 0}
	case Right:
		own, mixed = [2]float64{1, 0}, [2]float64{0, factor}
	default:
		return s, fmt.Errorf("%w: channel %s", ErrArgument, ch)
	}

	if s.nch == 1 {
		if _, err := s.Stereo(own[0], own[1]); err != nil {
			return s, err
		}
	}

	spread, err := other.Copy().Stereo(mixed[0], mixed[1])
	if err != nil {
		return s, err
	}

	return s.MixAt(seconds, spread, otherSeconds)
}

// Pan applies linear panning, -1 is full left and 1 is full right. The left
// gain is (1-panning)/2 and the right gain (1+panning)/2.
func (s *Sample) Pan(panning float64) (*Sample, error) {
	if panning < -1 || panning > 1 {
		return s, fmt.Errorf("%w: panning %v", ErrArgument, panning)
	}

	return s.Stereo((1-panning)/2, (1+panning)/2)
}

// PanLFO pans every frame by the next value of lfo, clamped to [-1,1]. The
// result is always stereo. If lfo runs out the sample is left unchanged.
func (s *Sample) PanLFO(lfo Modulator) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	n := s.FrameCount()
	out := make([]byte, n*2*s.width)

	for f := range n {
		p, ok := lfo.Next()
		if !ok {
			return s, fmt.Errorf("%w: after %d of %d frames", ErrModulatorExhausted, f, n)
		}

		p = math.Max(-1, math.Min(1, p))

		l := pcm.Get(s.frames, s.width, f*s.nch)
		r := l
		if s.nch == 2 {
			r = pcm.Get(s.frames, s.width, f*2+1)
		}

		pcm.Put(out, s.width, 2*f, utils.TruncClamp(float64(l)*(1-p)/2, s.width))
		pcm.Put(out, s.width, 2*f+1, utils.TruncClamp(float64(r)*(1+p)/2, s.width))
	}

	s.frames = out
	s.nch = 2

	return s, nil
}
