// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrWidth    = errors.New("sample width must be 2, 3 or 4 bytes")
	ErrLength   = errors.New("buffer length does not match the sample layout")
	ErrChannels = errors.New("channel count must be 1 or 2")
	ErrRate     = errors.New("sample rate must be greater than 1")
)
