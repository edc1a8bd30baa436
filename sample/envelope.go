// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"fmt"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/utils"
)

// ramp applies a linear gain from `from` to `to` across the frames in
// buf[start:end]. The first frame gets `from` and the last gets `to`.
func (s *Sample) ramp(start, end int, from, to float64) {
	fs := s.FrameSize()
	n := (end - start) / fs

	for f := range n {
		vol := to
		if n > 1 {
			vol = utils.LinearInterpolate(from, to, float64(f)/float64(n-1))
		}

		for c := range s.nch {
			i := start/s.width + f*s.nch + c
			v := float64(pcm.Get(s.frames, s.width, i)) * vol
			pcm.Put(s.frames, s.width, i, utils.RoundClamp(v, s.width))
		}
	}
}

// FadeIn ramps the first seconds of the sample up from startVolume to full
// volume.
func (s *Sample) FadeIn(seconds, startVolume float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if seconds < 0 {
		return s, fmt.Errorf("%w: fade of %v seconds", ErrArgument, seconds)
	}

	end := s.clampIdx(seconds)
	if end == 0 {
		return s, nil
	}

	// a single faded frame sits at the edge volume
	n := end / s.FrameSize()
	if n == 1 {
		s.ramp(0, end, startVolume, startVolume)
		return s, nil
	}

	s.ramp(0, end, startVolume, 1)

	return s, nil
}

// FadeOut ramps the last seconds of the sample down to targetVolume.
func (s *Sample) FadeOut(seconds, targetVolume float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if seconds < 0 {
		return s, fmt.Errorf("%w: fade of %v seconds", ErrArgument, seconds)
	}

	length := s.clampIdx(seconds)
	if length == 0 {
		return s, nil
	}

	s.ramp(len(s.frames)-length, len(s.frames), 1, targetVolume)

	return s, nil
}

// Envelope applies an ADSR volume envelope. Attack, decay and release are
// durations in seconds and are cut to what the sample holds; sustain is the
// gain of the part between decay and release, in [0,1].
func (s *Sample) Envelope(attack, decay, sustain, release float64) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	if attack < 0 || decay < 0 || release < 0 {
		return s, fmt.Errorf("%w: envelope %v/%v/%v", ErrArgument, attack, decay, release)
	}

	if sustain < 0 || sustain > 1 {
		return s, fmt.Errorf("%w: sustain level %v", ErrArgument, sustain)
	}

	d, err := s.Split(attack)
	if err != nil {
		return s, err
	}

	sus, err := d.Split(decay)
	if err != nil {
		return s, err
	}

	if sustain < 1 {
		if _, err := sus.Amplify(sustain); err != nil {
			return s, err
		}
	}

	r := sus.splitAt(len(sus.frames) - sus.clampIdx(release))

	if attack > 0 {
		if _, err := s.FadeIn(attack, 0); err != nil {
			return s, err
		}
	}

	if decay > 0 {
		if _, err := d.FadeOut(decay, sustain); err != nil {
			return s, err
		}
	}

	if release > 0 {
		if _, err := r.FadeOut(release, 0); err != nil {
			return s, err
		}
	}

	s.frames = append(s.frames, d.frames...)
	s.frames = append(s.frames, sus.frames...)
	s.frames = append(s.frames, r.frames...)

	return s, nil
}

// ModulateAmp multiplies each frame by the next value of m. If m runs out
// before the last frame the sample is left unchanged and
// ErrModulatorExhausted is returned.
func (s *Sample) ModulateAmp(m Modulator) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	out := make([]byte, len(s.frames))

	for f := range s.FrameCount() {
		gain, ok := m.Next()
		if !ok {
			return s, fmt.Errorf("%w: after %d of %d frames", ErrModulatorExhausted, f, s.FrameCount())
		}

		for c := range s.nch {
			i := f*s.nch + c
			v := float64(pcm.Get(s.frames, s.width, i)) * gain
			pcm.Put(out, s.width, i, utils.TruncClamp(v, s.width))
		}
	}

	s.frames = out

	return s, nil
}
