// SPDX-License-Identifier: EPL-2.0

// Package samplebox loads audio files into samples and converts them between
// formats.
//
// The work itself happens in the subpackages:
//
//   - pcm: width-generic operations on raw little-endian PCM bytes
//   - sample: the Sample type with its editing, mixing and effect methods
//   - meter: a peak-hold level meter fed by samples
//   - output: playback and file streaming through a bounded queue
//   - formats/...: WAV, AIFF, MP3, Ogg Vorbis and FLAC codecs
//
// This package ties the codecs together in a Registry keyed by file
// extension:
//
//	s, err := samplebox.LoadFile("kick.flac")
//	if err != nil {
//	    return err
//	}
//
//	s, err = samplebox.Convert(s, 44100, 2, 2)
//
// Custom decoders can be added to DefaultRegistry, or kept in a Registry of
// their own:
//
//	r := samplebox.NewRegistry()
//	r.Register("raw", myDecoder{})
package samplebox
