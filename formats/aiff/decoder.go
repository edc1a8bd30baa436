// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/samplebox/internal/seekable"
	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
)

const chunkSize = 4096

// aiffReader is the part of aiff.Decoder used here, so tests can feed values
// without building files.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads integer PCM AIFF data into a Sample.
type Decoder struct{}

// Decode reads the whole AIFF stream. Widths other than 2, 3 or 4 bytes and
// channel counts other than 1 or 2 fail with sample.ErrConstruction.
func (Decoder) Decode(r io.Reader) (*sample.Sample, error) {
	rs, err := seekable.Reader(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decode(dec, int(dec.BitDepth))
}

func decode(dec aiffReader, bitDepth int) (*sample.Sample, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	width := bitDepth / 8
	nch := format.NumChannels

	if bitDepth%8 != 0 || width < 2 || width > 4 || nch < 1 || nch > 2 {
		return nil, fmt.Errorf("%w: %d bit, %d channels", sample.ErrConstruction, bitDepth, nch)
	}

	buf := &goaudio.IntBuffer{Data: make([]int, chunkSize*nch), Format: format}
	frames := make([]byte, 0, chunkSize*nch*width)
	scratch := make([]byte, width)

	for {
		n, err := dec.PCMBuffer(buf)
		for _, v := range buf.Data[:n] {
			pcm.Put(scratch, width, 0, int32(v))
			frames = append(frames, scratch...)
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}

		if n == 0 || err != nil {
			break
		}
	}

	frameSize := width * nch
	frames = frames[:len(frames)-len(frames)%frameSize]

	return sample.FromRawFrames(frames, width, format.SampleRate, nch)
}

// ReadFile loads an AIFF file and records its base name as the sample source.
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
