// SPDX-License-Identifier: EPL-2.0

package samplebox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ik5/samplebox/formats/aiff"
	"github.com/ik5/samplebox/formats/flac"
	"github.com/ik5/samplebox/formats/mp3"
	"github.com/ik5/samplebox/formats/vorbis"
	"github.com/ik5/samplebox/formats/wav"
	"github.com/ik5/samplebox/sample"
)

// ErrUnknownFormat is returned when no decoder is registered for a file
// extension.
var ErrUnknownFormat = errors.New("no decoder registered for format")

// Decoder constructs a Sample from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*sample.Sample, error)
}

// Registry maps format keys (lower-case file extensions without the dot) to
// decoders. It is safe for concurrent use.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

func normalizeKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// Register adds or replaces the decoder for format. A leading dot and case
// are ignored, so "WAV", ".wav" and "wav" are the same key.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeKey(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[normalizeKey(format)]
	return d, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Decode picks a decoder by format key and reads r with it.
func (r *Registry) Decode(format string, in io.Reader) (*sample.Sample, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return d.Decode(in)
}

// LoadFile decodes path with the decoder registered for its extension and
// records the base name as the sample source.
func (r *Registry) LoadFile(path string) (*sample.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	s, err := r.Decode(filepath.Ext(path), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s.SetSource(filepath.Base(path)), nil
}

// DefaultRegistry knows every format shipped with this module.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}()

// LoadFile loads path through DefaultRegistry.
func LoadFile(path string) (*sample.Sample, error) {
	return DefaultRegistry.LoadFile(path)
}
