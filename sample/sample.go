// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/ik5/samplebox/pcm"
)

// Norm format: the layout Normalize converts to and New starts from.
const (
	NormRate     = 44100
	NormWidth    = 2
	NormChannels = 2
)

// Sample is a buffer of little-endian interleaved integer PCM frames together
// with its format. Transforms mutate the buffer in place and return the same
// instance. A locked sample refuses every mutation.
type Sample struct {
	frames []byte
	width  int
	rate   int
	nch    int
	locked bool
	source string
}

func validate(width, rate, nch int) error {
	if width < 2 || width > 4 {
		return fmt.Errorf("%w: sample width %d", ErrConstruction, width)
	}

	if nch < 1 || nch > 2 {
		return fmt.Errorf("%w: %d channels", ErrConstruction, nch)
	}

	if rate <= 1 {
		return fmt.Errorf("%w: sample rate %d", ErrConstruction, rate)
	}

	return nil
}

// New returns an empty sample in the norm format.
func New() *Sample {
	return &Sample{
		frames: []byte{},
		width:  NormWidth,
		rate:   NormRate,
		nch:    NormChannels,
	}
}

// NewSilence returns a sample holding seconds of silence in the given format.
func NewSilence(seconds float64, rate, width, nch int) (*Sample, error) {
	if err := validate(width, rate, nch); err != nil {
		return nil, err
	}

	if seconds < 0 {
		return nil, fmt.Errorf("%w: negative duration %v", ErrArgument, seconds)
	}

	s := &Sample{width: width, rate: rate, nch: nch}
	s.frames = pcm.Silence(s.frameIdx(seconds))

	return s, nil
}

// FromRawFrames wraps a copy of frames.
func FromRawFrames(frames []byte, width, rate, nch int) (*Sample, error) {
	if err := validate(width, rate, nch); err != nil {
		return nil, err
	}

	if len(frames)%(width*nch) != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte frames",
			ErrConstruction, len(frames), width*nch)
	}

	buf := make([]byte, len(frames))
	copy(buf, frames)

	return &Sample{frames: buf, width: width, rate: rate, nch: nch}, nil
}

// FromValues encodes interleaved sample values at the given width, saturating
// values that do not fit.
func FromValues(values []int32, width, rate, nch int) (*Sample, error) {
	if err := validate(width, rate, nch); err != nil {
		return nil, err
	}

	if len(values)%nch != 0 {
		return nil, fmt.Errorf("%w: %d values for %d channels", ErrConstruction, len(values), nch)
	}

	wide := make([]int64, len(values))
	for i, v := range values {
		wide[i] = int64(v)
	}

	frames, err := pcm.FromValues(wide, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	return &Sample{frames: frames, width: width, rate: rate, nch: nch}, nil
}

// FromArray builds a sample from an integer array. The width is 2 when every
// value fits in an int16 and 4 otherwise, whatever the element type.
func FromArray[T int16 | int32](values []T, rate, nch int) (*Sample, error) {
	width := 2

	wide := make([]int32, len(values))
	for i, v := range values {
		wide[i] = int32(v)
		if wide[i] > math.MaxInt16 || wide[i] < math.MinInt16 {
			width = 4
		}
	}

	return FromValues(wide, width, rate, nch)
}

// SetSource records where the sample came from.
func (s *Sample) SetSource(source string) *Sample {
	s.source = source
	return s
}

func (s *Sample) Source() string    { return s.source }
func (s *Sample) SampleWidth() int  { return s.width }
func (s *Sample) SampleRate() int   { return s.rate }
func (s *Sample) Channels() int     { return s.nch }
func (s *Sample) Locked() bool      { return s.locked }
func (s *Sample) FrameSize() int    { return s.width * s.nch }
func (s *Sample) FrameCount() int   { return len(s.frames) / s.FrameSize() }
func (s *Sample) ByteLen() int      { return len(s.frames) }
func (s *Sample) Duration() float64 { return float64(s.FrameCount()) / float64(s.rate) }

// Frames returns a copy of the raw frame data.
func (s *Sample) Frames() []byte {
	out := make([]byte, len(s.frames))
	copy(out, s.frames)

	return out
}

// Values decodes the interleaved sample values.
func (s *Sample) Values() []int32 {
	values, _ := pcm.Values(s.frames, s.width)
	return values
}

// SameFormat reports whether other has the same width, rate and channel count.
func (s *Sample) SameFormat(other *Sample) bool {
	return s.width == other.width && s.rate == other.rate && s.nch == other.nch
}

// Equal reports whether both samples hold the same format and frames.
func (s *Sample) Equal(other *Sample) bool {
	return s.SameFormat(other) && bytes.Equal(s.frames, other.frames)
}

func (s *Sample) String() string {
	name := s.source
	if name == "" {
		name = "<anonymous>"
	}

	locked := ""
	if s.locked {
		locked = " locked"
	}

	return fmt.Sprintf("Sample %s: %d Hz, %d bit, %d ch, %.3fs%s",
		name, s.rate, 8*s.width, s.nch, s.Duration(), locked)
}

// Lock marks the sample as shared. It cannot be undone.
func (s *Sample) Lock() *Sample {
	s.locked = true
	return s
}

// Copy returns an unlocked deep copy.
func (s *Sample) Copy() *Sample {
	return &Sample{
		frames: s.Frames(),
		width:  s.width,
		rate:   s.rate,
		nch:    s.nch,
		source: s.source,
	}
}

// CopyFrom replaces the contents and format of s with those of other.
func (s *Sample) CopyFrom(other *Sample) (*Sample, error) {
	if err := s.mutable(); err != nil {
		return s, err
	}

	s.frames = other.Frames()
	s.width = other.width
	s.rate = other.rate
	s.nch = other.nch
	s.source = other.source

	return s, nil
}

// WriteFrames writes the raw frame data to w.
func (s *Sample) WriteFrames(w io.Writer) error {
	_, err := w.Write(s.frames)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Maximum is the peak absolute sample value.
func (s *Sample) Maximum() int64 {
	peak, _ := pcm.Max(s.frames, s.width)
	return peak
}

// RMS is the root mean square of all sample values.
func (s *Sample) RMS() int64 {
	rms, _ := pcm.RMS(s.frames, s.width)
	return rms
}

// LevelDBPeak returns the per-channel peak level in dB relative to full scale,
// floored at -60 dB. Mono samples report the same level twice.
func (s *Sample) LevelDBPeak() (left, right float64) {
	return s.dbLevel(pcm.Max)
}

// LevelDBRMS is LevelDBPeak using the RMS value instead of the peak.
func (s *Sample) LevelDBRMS() (left, right float64) {
	return s.dbLevel(pcm.RMS)
}

const dbFloor = -60.0

func (s *Sample) dbLevel(measure func([]byte, int) (int64, error)) (float64, float64) {
	full := float64(int64(1) << (8*s.width - 1))
	db := func(buf []byte) float64 {
		v, _ := measure(buf, s.width)
		return math.Max(20*math.Log10(float64(v+1)/full), dbFloor)
	}

	if s.nch == 1 {
		l := db(s.frames)
		return l, l
	}

	left, _ := pcm.ToMono(s.frames, s.width, 1, 0)
	right, _ := pcm.ToMono(s.frames, s.width, 0, 1)

	return db(left), db(right)
}

func (s *Sample) mutable() error {
	if s.locked {
		return fmt.Errorf("%w: %s", ErrLocked, s)
	}

	return nil
}

func (s *Sample) compatible(other *Sample) error {
	if !s.SameFormat(other) {
		return fmt.Errorf("%w: %d Hz/%d bytes/%d ch vs %d Hz/%d bytes/%d ch", ErrMismatch,
			s.rate, s.width, s.nch, other.rate, other.width, other.nch)
	}

	return nil
}

// frameIdx converts a time offset into a byte offset aligned on a frame.
func (s *Sample) frameIdx(seconds float64) int {
	return s.FrameSize() * int(float64(s.rate)*seconds)
}

// clampIdx is frameIdx limited to the current buffer.
func (s *Sample) clampIdx(seconds float64) int {
	return max(0, min(len(s.frames), s.frameIdx(seconds)))
}
