// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/ik5/samplebox/formats/wav"
	"github.com/ik5/samplebox/sample"
)

// StreamToFile normalizes the samples of seq like PlaySamples does and writes
// them one after another into a single WAV file at path. The first sample
// creates the file; the header is finalized once seq is exhausted. It does not
// need a device.
func (o *Output) StreamToFile(path string, seq iter.Seq[*sample.Sample]) (err error) {
	var w *wav.Writer

	defer func() {
		if w == nil {
			return
		}

		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}

		if err == nil {
			o.log.WithFields(logrus.Fields{"path": path, "frames": w.Frames()}).Debug("stream written")
		}
	}()

	for s, nerr := range o.NormalizedSamples(seq, o.amplification) {
		if nerr != nil {
			return nerr
		}

		if w == nil {
			w, err = wav.Create(path, s)
			if err != nil {
				return err
			}

			continue
		}

		if err := w.Append(s); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if w == nil {
		return ErrNoSamples
	}

	return nil
}
