// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/samplebox/sample"
)

// Encode writes s as a big-endian AIFF stream at its own width, rate and
// channel count.
func Encode(ws io.WriteSeeker, s *sample.Sample) error {
	enc := aiff.NewEncoder(ws, s.SampleRate(), 8*s.SampleWidth(), s.Channels())

	values := s.Values()
	data := make([]int, len(values))
	for i, v := range values {
		data[i] = int(v)
	}

	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: s.Channels(), SampleRate: s.SampleRate()},
		SourceBitDepth: 8 * s.SampleWidth(),
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff frames: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff header: %w", err)
	}

	return nil
}
