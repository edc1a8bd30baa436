// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	// ErrUnsupported is returned for streaming playback when no device
	// backend could be opened.
	ErrUnsupported = errors.New("streaming playback needs an audio device backend")

	// ErrClosed is returned by every playback call after Close.
	ErrClosed = errors.New("output is closed")

	// ErrFormat is returned when a sample or device does not match the output
	// format, or the format itself is invalid.
	ErrFormat = errors.New("audio format mismatch")

	// ErrNoSamples is returned by StreamToFile for an empty sequence.
	ErrNoSamples = errors.New("no samples to write")

	// ErrNoPlayer is returned by the fallback when no external player is
	// installed.
	ErrNoPlayer = errors.New("no external audio player found")
)
