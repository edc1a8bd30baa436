// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/samplebox/internal/seekable"
	"github.com/ik5/samplebox/pcm"
	"github.com/ik5/samplebox/sample"
)

const formatPCM = 1

// Decoder reads uncompressed PCM WAV data into a Sample.
type Decoder struct{}

// Decode reads the whole WAV stream. Widths other than 2, 3 or 4 bytes and
// channel counts other than 1 or 2 fail with sample.ErrConstruction.
func (Decoder) Decode(r io.Reader) (*sample.Sample, error) {
	rs, err := seekable.Reader(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	width := int(dec.BitDepth) / 8
	nch := int(dec.NumChans)
	rate := int(dec.SampleRate)

	if int(dec.BitDepth)%8 != 0 || width < 2 || width > 4 || nch < 1 || nch > 2 {
		return nil, fmt.Errorf("%w: %d bit, %d channels", sample.ErrConstruction, dec.BitDepth, nch)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}

	return fromIntBuffer(buf, width, rate, nch)
}

// fromIntBuffer packs decoded values, dropping a trailing partial frame.
func fromIntBuffer(buf *goaudio.IntBuffer, width, rate, nch int) (*sample.Sample, error) {
	n := len(buf.Data) - len(buf.Data)%nch
	frames := make([]byte, n*width)

	for i, v := range buf.Data[:n] {
		pcm.Put(frames, width, i, int32(v))
	}

	return sample.FromRawFrames(frames, width, rate, nch)
}

// ReadFile loads a WAV file and records its base name as the sample source.
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
