// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/samplebox/sample"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	width    = 2
	channels = 2
)

// ErrEmpty is returned when a stream decodes to no audio frames.
var ErrEmpty = errors.New("mp3 stream has no audio")

// mp3Reader is the part of gomp3.Decoder used here.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

// Decoder reads MP3 data into a 16-bit stereo Sample.
type Decoder struct{}

// Decode reads the whole stream.
func (Decoder) Decode(r io.Reader) (*sample.Sample, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decode(dec)
}

func decode(dec mp3Reader) (*sample.Sample, error) {
	frames, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	frames = frames[:len(frames)-len(frames)%(width*channels)]
	if len(frames) == 0 {
		return nil, ErrEmpty
	}

	return sample.FromRawFrames(frames, width, dec.SampleRate(), channels)
}

// ReadFile loads an MP3 file and records its base name as the sample source.
func ReadFile(path string) (*sample.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := Decoder{}.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s.SetSource(filepath.Base(path)), nil
}
