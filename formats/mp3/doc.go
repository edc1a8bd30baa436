// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into samples using
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields 16-bit stereo at the stream's own sample rate;
// mono files come back with both channels equal.
//
//	s, err := mp3.ReadFile("song.mp3")
//
// There is no encoder.
package mp3
