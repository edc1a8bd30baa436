// SPDX-License-Identifier: EPL-2.0

// Package output plays samples on an audio device and renders sample streams
// to WAV files.
//
// An Output opens one device at a fixed Format. PlaySample writes a sample
// straight to the device and pads it with silence so its tail is heard.
// QueueSample hands samples to a background worker through a bounded queue:
// the worker writes them strictly in submission order, and QueueSample blocks
// while the queue is full. WipeQueue drops what has not started playing,
// which is how stale scheduled audio is cut off on a retrigger.
//
//	out, err := output.New()
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	err = out.PlaySamples(fragments, true)
//
// The default backend is oto. Building with -tags portaudio makes
// OpenPortAudio available for WithOpener. When no backend can be opened,
// SupportsStreaming is false, PlaySample falls back to an external command
// line player and the streaming calls return ErrUnsupported.
//
// PlaySamples and StreamToFile accept samples of any format and convert them
// with Normalized first.
package output
