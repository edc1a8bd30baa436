// SPDX-License-Identifier: EPL-2.0

// Package meter tracks the level of a stream of samples on a dB scale, with
// held peaks that decay over time.
package meter

import (
	"errors"
	"fmt"

	"github.com/ik5/samplebox/sample"
)

const (
	// PeakHold is how long, in seconds, a new peak is held before it decays.
	PeakHold = 0.4
	// PeakDecay is the decay rate of a held peak in dB per second.
	PeakDecay = 30.0
	// Floor is the lowest level a meter can be configured to show.
	Floor = -60.0
)

var ErrLowest = errors.New("lowest level must be in [-60, 0) dB")

// Levels are instantaneous and held peak levels in dB, 0 dB being full scale.
type Levels struct {
	Left      float64
	PeakLeft  float64
	Right     float64
	PeakRight float64
}

type channel struct {
	level float64
	peak  float64
	hold  float64
}

// LevelMeter measures consecutive sample fragments. Feed it the fragments in
// playback order without gaps; short fragments (under 0.1s) give the smoothest
// result. A LevelMeter is not safe for concurrent use.
type LevelMeter struct {
	rms    bool
	lowest float64
	time   float64
	left   channel
	right  channel
}

// New returns a meter using peak levels, or RMS levels with rms set. Levels
// below lowest are shown as lowest.
func New(rms bool, lowest float64) (*LevelMeter, error) {
	if lowest < Floor || lowest >= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrLowest, lowest)
	}

	m := &LevelMeter{rms: rms, lowest: lowest}
	m.Reset()

	return m, nil
}

// Reset returns the meter to silence.
func (m *LevelMeter) Reset() {
	m.time = 0
	m.left = channel{peak: m.lowest}
	m.right = channel{peak: m.lowest}
}

// Process measures s and advances the meter by its duration.
func (m *LevelMeter) Process(s *sample.Sample) Levels {
	var left, right float64
	if m.rms {
		left, right = s.LevelDBRMS()
	} else {
		left, right = s.LevelDBPeak()
	}

	dur := s.Duration()
	m.time += dur

	m.left.update(max(left, m.lowest), m.time, dur)
	m.right.update(max(right, m.lowest), m.time, dur)

	return m.Levels()
}

func (c *channel) update(level, now, dur float64) {
	if now-c.hold > PeakHold {
		c.peak -= dur * PeakDecay
	}

	if level >= c.peak {
		c.peak = level
		c.hold = now
	}

	c.level = level
}

// Levels returns the result of the last Process call.
func (m *LevelMeter) Levels() Levels {
	return Levels{
		Left:      m.left.level,
		PeakLeft:  m.left.peak,
		Right:     m.right.level,
		PeakRight: m.right.peak,
	}
}

// Time is the total duration processed since the last reset, in seconds.
func (m *LevelMeter) Time() float64 {
	return m.time
}
