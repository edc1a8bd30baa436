// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
	"github.com/ik5/samplebox/utils"
)

const chunkSize = 4096

// ErrEmpty is returned when a stream decodes to no audio frames.
var ErrEmpty = errors.New("vorbis stream has no audio")

// oggReader is the part of oggvorbis.Reader used here.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder reads Ogg Vorbis data into a 16-bit Sample.
type Decoder struct{}

// Decode reads the whole stream. Streams with more than two channels fail
// with sample.ErrConstruction.
func (Decoder) Decode(r io.Reader) (*sample.Sample, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decode(dec)
}

func decode(dec oggReader) (*sample.Sample, error) {
	nch := dec.Channels()
	if nch < 1 || nch > 2 {
		return nil, fmt.Errorf("%w: %d channels", sample.ErrConstruction, nch)
	}

	buf := make([]float32, chunkSize*nch)
	frames := make([]byte, 0, len(buf)*2)
	scratch := make([]byte, 2)

	for {
		// n counts values, always a whole number of frames.
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			pcm.Put(scratch, 2, 0, int32(utils.Float32ToInt16(v)))
			frames = append(frames, scratch...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decoding vorbis: %w", err)
		}
	}

	frames = frames[:len(frames)-len(frames)%(2*nch)]
	if len(frames) == 0 {
		return nil, ErrEmpty
	}

	return sample.FromRawFrames(frames, 2, dec.SampleRate(), nch)
}

// ReadFile loads an Ogg Vorbis file and records its base name as the sample
// source.
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
