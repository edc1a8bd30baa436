// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"

	"github.com/ik5/samplebox/sample"
)

// Format is the fixed frame layout of an output device.
type Format struct {
	Rate     int
	Width    int
	Channels int
}

// Default is the format samples are normalized to: 44.1 kHz, 16 bit, stereo.
var Default = Format{Rate: sample.NormRate, Width: sample.NormWidth, Channels: sample.NormChannels}

// FormatOf returns the format of s.
func FormatOf(s *sample.Sample) Format {
	return Format{Rate: s.SampleRate(), Width: s.SampleWidth(), Channels: s.Channels()}
}

// FrameSize is the number of bytes in one frame.
func (f Format) FrameSize() int {
	return f.Width * f.Channels
}

func (f Format) validate() error {
	if f.Rate <= 1 || f.Width < 2 || f.Width > 4 || f.Channels < 1 || f.Channels > 2 {
		return fmt.Errorf("%w: %s", ErrFormat, f)
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d bit, %d ch", f.Rate, 8*f.Width, f.Channels)
}

// Device is an open audio sink with a fixed Format.
type Device interface {
	// Write queues frames for playback, blocking until the device has taken
	// them.
	Write(frames []byte) error

	// Buffered is the number of bytes accepted but not yet played.
	Buffered() int

	Close() error
}

// Opener opens a device for a format.
type Opener func(Format) (Device, error)
