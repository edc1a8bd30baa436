// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/samplebox/sample"
)

func intBuffer(s *sample.Sample) *goaudio.IntBuffer {
	values := s.Values()

	data := make([]int, len(values))
	for i, v := range values {
		data[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: s.Channels(), SampleRate: s.SampleRate()},
		SourceBitDepth: 8 * s.SampleWidth(),
	}
}

// Encode writes s as a complete uncompressed WAV stream.
func Encode(ws io.WriteSeeker, s *sample.Sample) error {
	w, err := NewWriter(ws, s)
	if err != nil {
		return err
	}

	return w.Close()
}

// WriteFile writes s to path, replacing any existing file.
func WriteFile(path string, s *sample.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, s); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
