// SPDX-License-Identifier: EPL-2.0

// Package sample provides Sample, an integer PCM buffer with in-place transforms.
//
// A Sample holds little-endian interleaved frames of 2, 3 or 4 byte signed
// integers, mono or stereo, at any rate above 1 Hz. Every transform mutates
// the buffer in place and returns the same instance together with an error:
//
//	s, err := wav.ReadFile("kick.wav")
//	if err != nil {
//	    return err
//	}
//	if _, err := s.Envelope(0.01, 0.05, 0.7, 0.2); err != nil {
//	    return err
//	}
//
// # Locking
//
// Lock marks a sample as shared, for example a cached instrument voice. Every
// later transform on it fails with ErrLocked and leaves it untouched. Use Copy
// or AtVolume to derive a mutable instance.
//
// # Mixing and headroom
//
// Mix, MixAt, StereoMix and Echo add sample values and saturate instead of
// wrapping. To mix many 16-bit voices without clipping, widen them first
// without rescaling, mix, then narrow back with maximized amplitude:
//
//	_, _ = a.Make32Bit(false)
//	_, _ = b.Make32Bit(false)
//	_, _ = a.Mix(b, 0, true)
//	_, _ = a.Make16Bit(true)
//
// # Modulators
//
// ModulateAmp and PanLFO take a Modulator. Cycle and CycleSample repeat a
// finite waveform normalized to unit peak; OscillatorFunc and Sine never run
// out; FromSeq consumes an iter.Seq once and reports ErrModulatorExhausted
// when it ends early.
//
// # Errors
//
// Misuse is reported with wrapped sentinels, test for them with errors.Is:
// ErrConstruction, ErrLocked, ErrMismatch, ErrRange, ErrArgument and
// ErrModulatorExhausted.
package sample
