// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"iter"
	"math"
)

// Modulator yields one gain value per frame. ok is false once it has no more
// values.
type Modulator interface {
	Next() (value float64, ok bool)
}

// OscillatorFunc adapts an unbounded generator function. It never runs out.
type OscillatorFunc func() float64

func (f OscillatorFunc) Next() (float64, bool) { return f(), true }

// Cyclic repeats a finite waveform forever, scaled so its peak is 1.
type Cyclic struct {
	values []float64
	pos    int
}

// Cycle builds a Cyclic modulator from waveform values. An all-zero or empty
// waveform yields zeros.
func Cycle(values []float64) *Cyclic {
	var peak float64
	for _, v := range values {
		peak = math.Max(peak, math.Abs(v))
	}

	norm := make([]float64, len(values))
	if peak > 0 {
		for i, v := range values {
			norm[i] = v / peak
		}
	}

	return &Cyclic{values: norm}
}

// CycleSample uses the interleaved values of s as a cyclic waveform.
func CycleSample(s *Sample) *Cyclic {
	raw := s.Values()

	values := make([]float64, len(raw))
	for i, v := range raw {
		values[i] = float64(v)
	}

	return Cycle(values)
}

func (c *Cyclic) Next() (float64, bool) {
	if len(c.values) == 0 {
		return 0, true
	}

	v := c.values[c.pos]
	c.pos = (c.pos + 1) % len(c.values)

	return v, true
}

// Reset restarts the waveform at its first value.
func (c *Cyclic) Reset() { c.pos = 0 }

// SeqModulator consumes a lazy sequence one value per frame, without cycling.
// Call Stop when done with it before the sequence ends.
type SeqModulator struct {
	next func() (float64, bool)
	stop func()
}

// FromSeq wraps a possibly finite sequence as a one-shot modulator.
func FromSeq(seq iter.Seq[float64]) *SeqModulator {
	next, stop := iter.Pull(seq)
	return &SeqModulator{next: next, stop: stop}
}

func (m *SeqModulator) Next() (float64, bool) { return m.next() }
func (m *SeqModulator) Stop()                 { m.stop() }

// Sine returns an oscillator of the given frequency and amplitude at rate
// samples per second, useful as an LFO.
func Sine(frequency, amplitude float64, rate int) OscillatorFunc {
	var n int

	return func() float64 {
		v := amplitude * math.Sin(2*math.Pi*frequency*float64(n)/float64(rate))
		n++

		return v
	}
}
