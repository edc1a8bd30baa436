// SPDX-License-Identifier: EPL-2.0

//go:build !portaudio

package output

import "fmt"

// OpenPortAudio is only available when built with -tags portaudio.
func OpenPortAudio(Format) (Device, error) {
	return nil, fmt.Errorf("%w: PortAudio support not enabled (build with -tags portaudio)", ErrUnsupported)
}
