// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile   = errors.New("not a WAV file")
	ErrNotPCM       = errors.New("only linear PCM WAV is supported")
	ErrNoPCMData    = errors.New("WAV file has no data chunk")
	ErrWriterClosed = errors.New("WAV writer is closed")
)
