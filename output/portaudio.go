// SPDX-License-Identifier: EPL-2.0

//go:build portaudio

package output

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/samplebox/pcm"
)

const paFramesPerBuffer = 1024

// paDevice writes through a blocking PortAudio stream. Every width is widened
// to int32, which PortAudio narrows to the hardware format. Frames are
// collected until a whole host buffer is filled.
type paDevice struct {
	format Format
	stream *portaudio.Stream
	buf    []int32
	fill   int
}

// OpenPortAudio opens the default output device through PortAudio.
func OpenPortAudio(f Format) (Device, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	d := &paDevice{format: f, buf: make([]int32, paFramesPerBuffer*f.Channels)}

	stream, err := portaudio.OpenDefaultStream(0, f.Channels, float64(f.Rate), paFramesPerBuffer, &d.buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start stream: %w", err)
	}

	d.stream = stream

	return d, nil
}

func (d *paDevice) Write(frames []byte) error {
	width := d.format.Width
	shift := 8 * (4 - width)

	for i := range pcm.Count(frames, width) {
		d.buf[d.fill] = pcm.Get(frames, width, i) << shift
		d.fill++

		if d.fill < len(d.buf) {
			continue
		}

		d.fill = 0

		if err := d.stream.Write(); err != nil {
			return fmt.Errorf("portaudio write: %w", err)
		}
	}

	return nil
}

// Buffered counts the room left in the partly filled buffer plus the host
// buffer: that much silence pushes everything written so far to the speaker.
func (d *paDevice) Buffered() int {
	n, err := d.stream.AvailableToWrite()
	if err != nil {
		n = 0
	}

	if d.fill > 0 {
		n += (len(d.buf) - d.fill) / d.format.Channels
	}

	return n * d.format.FrameSize()
}

func (d *paDevice) Close() error {
	if err := d.stream.Stop(); err != nil {
		return fmt.Errorf("stopping stream: %w", err)
	}

	if err := d.stream.Close(); err != nil {
		return fmt.Errorf("closing stream: %w", err)
	}

	return portaudio.Terminate()
}
