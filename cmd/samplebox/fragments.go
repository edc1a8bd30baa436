// SPDX-License-Identifier: EPL-2.0

package main

import (
	"iter"

	"github.com/ik5/samplebox/sample"
)

// fragments cuts each sample into consecutive pieces of at most seconds, so
// the meter and the playback queue see the stream in small steps. The input
// samples are not changed.
func fragments(samples []*sample.Sample, seconds float64) iter.Seq[*sample.Sample] {
	return func(yield func(*sample.Sample) bool) {
		for _, s := range samples {
			head := s.Copy()

			for head.FrameCount() > 0 {
				rest, err := head.Split(seconds)
				if err != nil || head.FrameCount() == 0 {
					break
				}

				if !yield(head) {
					return
				}

				head = rest
			}
		}
	}
}
