// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV files as samples.
//
// Decoding accepts 16, 24 and 32 bit integer PCM in mono or stereo at any
// sample rate. Other bit depths and channel layouts are rejected with
// sample.ErrConstruction; non-PCM format tags with ErrNotPCM.
//
//	s, err := wav.ReadFile("drums.wav")
//
// Encoding writes the sample's own width, rate and channel count, so a
// decode followed by an encode reproduces the frame bytes exactly.
//
// # Streaming
//
// A Writer keeps a file open across many samples of one format:
//
//	w, err := wav.Create("out.wav", first)
//	...
//	err = w.Append(next)
//	...
//	err = w.Close()
//
// The header lengths are rewritten on Close, so the file is only valid once
// Close returns.
package wav
