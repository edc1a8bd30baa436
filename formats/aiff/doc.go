// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// as samples, using github.com/go-audio/aiff.
//
// AIFF stores big-endian PCM; decoded samples are little-endian like every
// other Sample. Widths of 16, 24 and 32 bits in mono or stereo are
// accepted:
//
//	s, err := aiff.ReadFile("loop.aif")
//
// Input that is not an io.ReadSeeker is buffered in memory first.
package aiff
