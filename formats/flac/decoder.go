// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
)

var (
	// ErrNotFlacFile indicates the input has no FLAC stream header
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrEmpty is returned when a stream decodes to no audio frames
	ErrEmpty = errors.New("flac stream has no audio")
)

// frameParser is the part of flac.Stream used here.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// Decoder reads FLAC data into a Sample.
type Decoder struct{}

// Decode reads the whole stream. Bit depths that are not whole bytes are
// widened to the next byte boundary; streams under 16 bits or with more than
// two channels fail with sample.ErrConstruction.
func (Decoder) Decode(r io.Reader) (*sample.Sample, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}
	defer stream.Close()

	info := stream.Info

	return decode(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample))
}

func decode(p frameParser, rate, nch, bitDepth int) (*sample.Sample, error) {
	width := (bitDepth + 7) / 8
	if bitDepth < 16 || width > 4 || nch < 1 || nch > 2 {
		return nil, fmt.Errorf("%w: %d bit, %d channels", sample.ErrConstruction, bitDepth, nch)
	}

	shift := 8*width - bitDepth

	var values []int64

	for {
		f, err := p.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decoding flac frame: %w", err)
		}

		if len(f.Subframes) < nch {
			return nil, fmt.Errorf("%w: frame has %d subframes", ErrNotFlacFile, len(f.Subframes))
		}

		n := int(f.BlockSize)
		for i := range n {
			for ch := range nch {
				values = append(values, int64(f.Subframes[ch].Samples[i])<<shift)
			}
		}
	}

	if len(values) == 0 {
		return nil, ErrEmpty
	}

	frames, err := pcm.FromValues(values, width)
	if err != nil {
		return nil, err
	}

	return sample.FromRawFrames(frames, width, rate, nch)
}

// ReadFile loads a FLAC file and records its base name as the sample source.
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
