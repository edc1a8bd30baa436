// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/ik5/samplebox/sample"
)

// Writer builds a WAV file one sample at a time. The first sample fixes the
// format and writes the header; Append adds frames only; Close rewrites the
// header lengths. A Writer is not safe for concurrent use.
type Writer struct {
	enc    *wav.Encoder
	format *sample.Sample
	frames int
	file   *os.File
	closed bool
}

// NewWriter starts a WAV stream on ws with the format of first and writes
// first's frames.
func NewWriter(ws io.WriteSeeker, first *sample.Sample) (*Writer, error) {
	w := &Writer{
		enc:    wav.NewEncoder(ws, first.SampleRate(), 8*first.SampleWidth(), first.Channels(), formatPCM),
		format: first,
	}

	if err := w.write(first); err != nil {
		return nil, err
	}

	return w, nil
}

// Create opens path for writing and starts a Writer on it. Close also closes
// the file.
func Create(path string, first *sample.Sample) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := NewWriter(f, first)
	if err != nil {
		f.Close()
		return nil, err
	}

	w.file = f

	return w, nil
}

// Append adds the frames of s, which must match the format of the first sample.
func (w *Writer) Append(s *sample.Sample) error {
	if w.closed {
		return ErrWriterClosed
	}

	if !w.format.SameFormat(s) {
		return fmt.Errorf("%w: writer is %d Hz/%d bytes/%d ch, got %d Hz/%d bytes/%d ch",
			sample.ErrMismatch, w.format.SampleRate(), w.format.SampleWidth(), w.format.Channels(),
			s.SampleRate(), s.SampleWidth(), s.Channels())
	}

	return w.write(s)
}

func (w *Writer) write(s *sample.Sample) error {
	if err := w.enc.Write(intBuffer(s)); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}

	w.frames += s.FrameCount()

	return nil
}

// Frames is the number of frames written so far.
func (w *Writer) Frames() int {
	return w.frames
}

// Close finalizes the header. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	w.closed = true

	err := w.enc.Close()
	if err != nil {
		err = fmt.Errorf("finalizing header: %w", err)
	}

	if w.file != nil {
		if cerr := w.file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}

	return err
}
