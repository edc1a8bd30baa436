// SPDX-License-Identifier: EPL-2.0

package output

import (
	"github.com/ik5/samplebox/internal/log"
)

const (
	// DefaultQueueSize is the number of samples QueueSample accepts before it
	// blocks.
	DefaultQueueSize = 100

	// DefaultAmplification is the fixed gain applied to non 16-bit samples
	// when streams are normalized. It is relative to the 16-bit narrowing
	// that follows, which divides by 2^(8*width-16).
	DefaultAmplification = 26000
)

// Option configures an Output.
type Option func(*Output)

// WithFormat sets the device format. The default is Default.
func WithFormat(f Format) Option {
	return func(o *Output) {
		o.format = f
	}
}

// WithQueueSize sets the capacity of the playback queue.
func WithQueueSize(n int) Option {
	return func(o *Output) {
		o.queueSize = n
	}
}

// WithOpener replaces the device backend. A nil opener disables streaming.
func WithOpener(open Opener) Option {
	return func(o *Output) {
		o.open = open
	}
}

// WithFallback sets the player used by PlaySample when no device is open.
func WithFallback(p Player) Option {
	return func(o *Output) {
		o.fallback = p
	}
}

func WithLogger(l log.Logger) Option {
	return func(o *Output) {
		o.log = l
	}
}

// WithAmplification sets the gain used by PlaySamples and StreamToFile for
// samples that are not 16 bit.
func WithAmplification(a float64) Option {
	return func(o *Output) {
		o.amplification = a
	}
}
