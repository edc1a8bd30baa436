// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds deterministic samples for tests.
package audiotest

import (
	"math"

	"github.com/ik5/samplebox/sample"
	"github.com/ik5/samplebox/utils"
)

// Waveform returns the value of a frame on a channel, in [-1,1].
type Waveform func(frame, channel int) float64

// NewSample renders frames of waveform at the given format. It panics on an
// invalid format since it is only used with literal test parameters.
func NewSample(rate, width, channels, frames int, waveform Waveform) *sample.Sample {
	values := make([]int32, frames*channels)
	for f := range frames {
		for c := range channels {
			values[f*channels+c] = utils.FloatToPCM(waveform(f, c), width)
		}
	}

	s, err := sample.FromValues(values, width, rate, channels)
	if err != nil {
		panic(err)
	}

	return s
}

// Silence returns frames of zeros.
func Silence(rate, width, channels, frames int) *sample.Sample {
	return NewSample(rate, width, channels, frames, func(int, int) float64 { return 0 })
}

// Sine returns a sine tone at amplitude (0..1) on every channel.
func Sine(rate, width, channels, frames int, frequency, amplitude float64) *sample.Sample {
	return NewSample(rate, width, channels, frames, func(f, _ int) float64 {
		return amplitude * math.Sin(2*math.Pi*frequency*float64(f)/float64(rate))
	})
}

// Constant returns frames holding value on every channel.
func Constant(rate, width, channels, frames int, value int32) *sample.Sample {
	values := make([]int32, frames*channels)
	for i := range values {
		values[i] = value
	}

	s, err := sample.FromValues(values, width, rate, channels)
	if err != nil {
		panic(err)
	}

	return s
}

// Ramp returns a mono or stereo sample whose value on frame f is f+1, and
// -(f+1) on the right channel. Handy to follow frames through edits.
func Ramp(rate, width, channels, frames int) *sample.Sample {
	values := make([]int32, frames*channels)
	for f := range frames {
		values[f*channels] = int32(f + 1)
		if channels == 2 {
			values[f*channels+1] = -int32(f + 1)
		}
	}

	s, err := sample.FromValues(values, width, rate, channels)
	if err != nil {
		panic(err)
	}

	return s
}
