// SPDX-License-Identifier: EPL-2.0

package sample_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/samplebox/internal/audiotest"
	"github.com/ik5/samplebox/sample"
)

func TestConstruction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames []byte
		width  int
		rate   int
		nch    int
	}{
		{name: "8-bit", frames: []byte{0, 0}, width: 1, rate: 8000, nch: 1},
		{name: "5-byte", frames: make([]byte, 10), width: 5, rate: 8000, nch: 1},
		{name: "no channels", frames: []byte{0, 0}, width: 2, rate: 8000, nch: 0},
		{name: "surround", frames: make([]byte, 12), width: 2, rate: 8000, nch: 3},
		{name: "rate 1", frames: []byte{0, 0}, width: 2, rate: 1, nch: 1},
		{name: "partial frame", frames: []byte{0, 0, 0}, width: 2, rate: 8000, nch: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := sample.FromRawFrames(tt.frames, tt.width, tt.rate, tt.nch)
			assert.ErrorIs(t, err, sample.ErrConstruction)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := sample.New()
	assert.Equal(t, sample.NormRate, s.SampleRate())
	assert.Equal(t, sample.NormWidth, s.SampleWidth())
	assert.Equal(t, sample.NormChannels, s.Channels())
	assert.Zero(t, s.FrameCount())
	assert.False(t, s.Locked())
}

func TestFromArrayPicksWidth(t *testing.T) {
	t.Parallel()

	s16, err := sample.FromArray([]int16{1, -2, 3, -4}, 8000, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s16.SampleWidth())
	assert.Equal(t, 2, s16.FrameCount())
	assert.Equal(t, []int32{1, -2, 3, -4}, s16.Values())

	s32, err := sample.FromArray([]int32{1 << 20, -5}, 8000, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, s32.SampleWidth())
	assert.Equal(t, []int32{1 << 20, -5}, s32.Values())

	small, err := sample.FromArray([]int32{1, math.MinInt16, math.MaxInt16}, 8000, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, small.SampleWidth())
	assert.Equal(t, []int32{1, math.MinInt16, math.MaxInt16}, small.Values())

	narrow, err := sample.FromArray([]int16{1, 2}, 8000, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, narrow.SampleWidth())

	edge, err := sample.FromArray([]int32{math.MaxInt16 + 1}, 8000, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, edge.SampleWidth())
}

func TestNewSilence(t *testing.T) {
	t.Parallel()

	s, err := sample.NewSilence(0.5, 8000, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4000, s.FrameCount())
	assert.InDelta(t, 0.5, s.Duration(), 1e-9)
	assert.Zero(t, s.Maximum())
}

func TestLockedRejectsMutation(t *testing.T) {
	t.Parallel()

	other := audiotest.Ramp(10, 2, 1, 10)

	ops := map[string]func(s *sample.Sample) error{
		"amplify":     func(s *sample.Sample) error { _, err := s.Amplify(2); return err },
		"amplify max": func(s *sample.Sample) error { _, err := s.AmplifyMax(); return err },
		"mix":         func(s *sample.Sample) error { _, err := s.Mix(other, 0, true); return err },
		"mix at":      func(s *sample.Sample) error { _, err := s.MixAt(0.5, other, 0); return err },
		"fade in":     func(s *sample.Sample) error { _, err := s.FadeIn(0.2, 0); return err },
		"fade out":    func(s *sample.Sample) error { _, err := s.FadeOut(0.2, 0); return err },
		"envelope":    func(s *sample.Sample) error { _, err := s.Envelope(0.1, 0.1, 0.5, 0.1); return err },
		"echo":        func(s *sample.Sample) error { _, err := s.Echo(0.2, 2, 0.1, 0.5); return err },
		"split":       func(s *sample.Sample) error { _, err := s.Split(0.5); return err },
		"clip":        func(s *sample.Sample) error { _, err := s.Clip(0.1, 0.5); return err },
		"join":        func(s *sample.Sample) error { _, err := s.Join(other); return err },
		"delay":       func(s *sample.Sample) error { _, err := s.Delay(0.1, false); return err },
		"reverse":     func(s *sample.Sample) error { _, err := s.Reverse(); return err },
		"invert":      func(s *sample.Sample) error { _, err := s.Invert(); return err },
		"bias":        func(s *sample.Sample) error { _, err := s.Bias(5); return err },
		"stereo":      func(s *sample.Sample) error { _, err := s.Stereo(1, 1); return err },
		"pan":         func(s *sample.Sample) error { _, err := s.Pan(0.5); return err },
		"resample":    func(s *sample.Sample) error { _, err := s.Resample(20); return err },
		"speed":       func(s *sample.Sample) error { _, err := s.Speed(2); return err },
		"make 32 bit": func(s *sample.Sample) error { _, err := s.Make32Bit(false); return err },
		"make 16 bit": func(s *sample.Sample) error { _, err := s.Make16Bit(true); return err },
		"normalize":   func(s *sample.Sample) error { _, err := s.Normalize(); return err },
		"silence":     func(s *sample.Sample) error { _, err := s.AddSilence(1, false); return err },
		"rate":        func(s *sample.Sample) error { _, err := s.SetSampleRate(20); return err },
		"modulate": func(s *sample.Sample) error {
			_, err := s.ModulateAmp(sample.Cycle([]float64{1, 0}))
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.Ramp(10, 2, 1, 10).Lock()
			before := s.Frames()

			assert.ErrorIs(t, op(s), sample.ErrLocked)
			assert.Equal(t, before, s.Frames())
			assert.Equal(t, 10, s.SampleRate())
		})
	}
}

func TestAtVolumeOnLocked(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(100, 2, 1, 4, 1000).Lock()

	quiet, err := s.AtVolume(0.5)
	require.NoError(t, err)
	assert.Equal(t, []int32{500, 500, 500, 500}, quiet.Values())
	assert.False(t, quiet.Locked())
	assert.Equal(t, []int32{1000, 1000, 1000, 1000}, s.Values())
}

func TestMismatch(t *testing.T) {
	t.Parallel()

	a := audiotest.Silence(8000, 2, 1, 10)

	tests := []struct {
		name  string
		other *sample.Sample
	}{
		{name: "rate", other: audiotest.Silence(16000, 2, 1, 10)},
		{name: "width", other: audiotest.Silence(8000, 4, 1, 10)},
		{name: "channels", other: audiotest.Silence(8000, 2, 2, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := a.Copy().Mix(tt.other, 0, true)
			assert.ErrorIs(t, err, sample.ErrMismatch)

			_, err = a.Copy().MixAt(0.1, tt.other, 0)
			assert.ErrorIs(t, err, sample.ErrMismatch)

			_, err = a.Copy().Join(tt.other)
			assert.ErrorIs(t, err, sample.ErrMismatch)
		})
	}
}

func TestMix(t *testing.T) {
	t.Parallel()

	t.Run("pad shortest", func(t *testing.T) {
		t.Parallel()

		a := audiotest.Ramp(10, 2, 1, 3)
		b := audiotest.Constant(10, 2, 1, 5, 100)

		_, err := a.Mix(b, 0, true)
		require.NoError(t, err)
		assert.Equal(t, []int32{101, 102, 103, 100, 100}, a.Values())
	})

	t.Run("cut to shortest", func(t *testing.T) {
		t.Parallel()

		a := audiotest.Ramp(10, 2, 1, 3)
		b := audiotest.Constant(10, 2, 1, 5, 100)

		_, err := a.Mix(b, 0, false)
		require.NoError(t, err)
		assert.Equal(t, []int32{101, 102, 103}, a.Values())
	})

	t.Run("other seconds", func(t *testing.T) {
		t.Parallel()

		a := audiotest.Ramp(10, 2, 1, 4)
		b := audiotest.Constant(10, 2, 1, 10, 100)

		_, err := a.Mix(b, 0.2, true)
		require.NoError(t, err)
		assert.Equal(t, []int32{101, 102, 3, 4}, a.Values())
	})

	t.Run("saturates", func(t *testing.T) {
		t.Parallel()

		a := audiotest.Constant(10, 2, 1, 2, 30000)

		_, err := a.Mix(a.Copy(), 0, true)
		require.NoError(t, err)
		assert.Equal(t, []int32{32767, 32767}, a.Values())
	})
}

func TestMixAtZeroEqualsMix(t *testing.T) {
	t.Parallel()

	for _, width := range []int{2, 3, 4} {
		for _, nch := range []int{1, 2} {
			a := audiotest.Sine(8000, width, nch, 800, 440, 0.4)
			b := audiotest.Sine(8000, width, nch, 1200, 660, 0.3)

			viaMix, err := a.Copy().Mix(b, 0, true)
			require.NoError(t, err)

			viaMixAt, err := a.Copy().MixAt(0, b, 0)
			require.NoError(t, err)

			assert.True(t, viaMix.Equal(viaMixAt), "width %d channels %d", width, nch)
		}
	}
}

func TestMixAtGrows(t *testing.T) {
	t.Parallel()

	s := audiotest.Ramp(10, 2, 1, 10)
	other := audiotest.Constant(10, 2, 1, 10, 100)

	_, err := s.MixAt(0.5, other, 0)
	require.NoError(t, err)

	assert.Equal(t, []int32{
		1, 2, 3, 4, 5,
		106, 107, 108, 109, 110,
		100, 100, 100, 100, 100,
	}, s.Values())

	_, err = s.MixAt(-1, other, 0)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestAmplifyMaxStaysInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		amp   float64
	}{
		{name: "quiet 16-bit", width: 2, amp: 0.1},
		{name: "loud 16-bit", width: 2, amp: 1},
		{name: "24-bit", width: 3, amp: 0.25},
		{name: "32-bit", width: 4, amp: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.Sine(8000, tt.width, 2, 4000, 220, tt.amp)

			_, err := s.AmplifyMax()
			require.NoError(t, err)

			full := int64(1)<<(8*tt.width-1) - 1
			assert.LessOrEqual(t, s.Maximum(), full-1)
			assert.GreaterOrEqual(t, s.Maximum(), full-3)
		})
	}

	silent := audiotest.Silence(8000, 2, 1, 10)
	_, err := silent.AmplifyMax()
	require.NoError(t, err)
	assert.Zero(t, silent.Maximum())
}

func TestHeadroomMixDoesNotClip(t *testing.T) {
	t.Parallel()

	tone := audiotest.Sine(44100, 2, 1, 44100, 440, 0.9)
	orig := tone.Values()
	peak := float64(tone.Maximum())

	naive, err := tone.Copy().Mix(tone, 0, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, naive.Maximum(), int64(32767), "plain 16-bit mix saturates")

	a := tone.Copy()
	_, err = a.Make32Bit(false)
	require.NoError(t, err)
	assert.Equal(t, orig[1000], a.Values()[1000], "widening without scaling keeps values")

	b := tone.Copy()
	_, err = b.Make32Bit(false)
	require.NoError(t, err)

	_, err = a.Mix(b, 0, true)
	require.NoError(t, err)

	_, err = a.Make16Bit(true)
	require.NoError(t, err)
	require.Equal(t, 2, a.SampleWidth())

	got := a.Values()
	require.Len(t, got, len(orig))

	for i, v := range orig {
		assert.InDelta(t, float64(v)*32768/peak, float64(got[i]), 2, "frame %d", i)
	}
}

func TestMake32BitScaled(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(100, 2, 1, 2, -2)

	frames := s.Get32BitFrames(true)
	wide, err := sample.FromRawFrames(frames, 4, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{-2 << 16, -2 << 16}, wide.Values())

	_, err = s.Make32Bit(true)
	require.NoError(t, err)
	assert.Equal(t, 4, s.SampleWidth())
	assert.Equal(t, frames, s.Frames())
	assert.Equal(t, frames, s.Get32BitFrames(false))
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(1000, 2, 1, 1000, 10000)

	_, err := s.Envelope(0.1, 0.2, 0.5, 0.3)
	require.NoError(t, err)

	v := s.Values()
	require.Len(t, v, 1000, "duration is preserved")

	assert.Equal(t, int32(0), v[0])
	assert.Equal(t, int32(10000), v[99])
	assert.Equal(t, int32(10000), v[100])
	assert.Equal(t, int32(5000), v[299])
	assert.Equal(t, int32(5000), v[500])
	assert.Equal(t, int32(5000), v[700])
	assert.Equal(t, int32(0), v[999])
}

func TestEnvelopeKeepsDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                           string
		attack, decay, sustain, release float64
	}{
		{name: "plain", attack: 0.05, decay: 0.1, sustain: 0.6, release: 0.2},
		{name: "no attack", decay: 0.1, sustain: 0.8, release: 0.5},
		{name: "full sustain", attack: 0.2, decay: 0.2, sustain: 1, release: 0.2},
		{name: "phases fill it", attack: 0.3, decay: 0.3, sustain: 0.5, release: 0.4},
		{name: "release longer than rest", attack: 0.1, sustain: 0.5, release: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.Sine(8000, 2, 2, 8000, 300, 0.5)

			_, err := s.Envelope(tt.attack, tt.decay, tt.sustain, tt.release)
			require.NoError(t, err)
			assert.Equal(t, 8000, s.FrameCount())
		})
	}

	_, err := audiotest.Silence(100, 2, 1, 10).Envelope(0.1, 0.1, 1.5, 0.1)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestFadeInThenOutReachesZero(t *testing.T) {
	t.Parallel()

	for _, width := range []int{2, 3, 4} {
		s := audiotest.Constant(1000, width, 2, 500, 7000)

		_, err := s.FadeIn(0.1, 0)
		require.NoError(t, err)

		_, err = s.FadeOut(0.1, 0)
		require.NoError(t, err)

		v := s.Values()
		assert.Equal(t, []int32{0, 0}, v[:2], "width %d start", width)
		assert.Equal(t, []int32{0, 0}, v[len(v)-2:], "width %d end", width)
		assert.Equal(t, int32(7000), v[500], "width %d middle", width)
	}
}

func TestFadeRamp(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(10, 2, 1, 10, 1000)

	_, err := s.FadeIn(0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int32{500, 625, 750, 875, 1000, 1000, 1000, 1000, 1000, 1000}, s.Values())

	s = audiotest.Constant(10, 2, 1, 10, 1000)
	_, err = s.FadeOut(0.3, 0.4)
	require.NoError(t, err)
	assert.Equal(t, []int32{1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 700, 400}, s.Values())

	s = audiotest.Constant(10, 2, 1, 10, 1000)
	_, err = s.FadeOut(30, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1000), s.Values()[0])
	assert.Equal(t, int32(0), s.Values()[9])
}

func TestEcho(t *testing.T) {
	t.Parallel()

	values := make([]int32, 100)
	for i := 90; i < 100; i++ {
		values[i] = 1000
	}

	s, err := sample.FromValues(values, 2, 100, 1)
	require.NoError(t, err)

	_, err = s.Echo(0.1, 3, 0.2, 0.5)
	require.NoError(t, err)

	v := s.Values()
	require.Len(t, v, 160)
	assert.Equal(t, int32(1000), v[95])
	assert.Equal(t, int32(0), v[105])
	assert.Equal(t, int32(500), v[115])
	assert.Equal(t, int32(0), v[125])
	assert.Equal(t, int32(250), v[135])
	assert.Equal(t, int32(125), v[155])
}

func TestEchoStopsBelowQuantization(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(100, 2, 1, 100, 1000)

	_, err := s.Echo(0.1, 5, 0.2, 0.00001)
	require.NoError(t, err)
	assert.Equal(t, 100, s.FrameCount())
}

func TestDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds float64
		keep    bool
		want    []int32
	}{
		{name: "forward grows", seconds: 0.3, want: []int32{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "forward keeps length", seconds: 0.3, keep: true, want: []int32{0, 0, 0, 1, 2, 3, 4, 5, 6, 7}},
		{name: "back shrinks", seconds: -0.3, want: []int32{4, 5, 6, 7, 8, 9, 10}},
		{name: "back keeps length", seconds: -0.3, keep: true, want: []int32{4, 5, 6, 7, 8, 9, 10, 0, 0, 0}},
		{name: "none", seconds: 0, keep: true, want: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.Ramp(10, 2, 1, 10)

			_, err := s.Delay(tt.seconds, tt.keep)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Values())
		})
	}
}

func TestSplitClipJoin(t *testing.T) {
	t.Parallel()

	s := audiotest.Ramp(10, 2, 1, 10)

	rest, err := s.Split(0.4)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4}, s.Values())
	assert.Equal(t, []int32{5, 6, 7, 8, 9, 10}, rest.Values())

	_, err = s.Join(rest)
	require.NoError(t, err)
	assert.Equal(t, 10, s.FrameCount())

	_, err = s.Clip(0.2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 4, 5}, s.Values())

	empty, err := s.Split(10)
	require.NoError(t, err)
	assert.Zero(t, empty.FrameCount())

	_, err = s.Clip(0.5, 0.2)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestAddSilence(t *testing.T) {
	t.Parallel()

	s := audiotest.Ramp(10, 3, 2, 2)

	_, err := s.AddSilence(0.1, true)
	require.NoError(t, err)
	_, err = s.AddSilence(0.2, false)
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 0, 1, -1, 2, -2, 0, 0, 0, 0}, s.Values())
}

func TestReverseKeepsChannels(t *testing.T) {
	t.Parallel()

	s := audiotest.Ramp(10, 2, 2, 3)

	_, err := s.Reverse()
	require.NoError(t, err)
	assert.Equal(t, []int32{3, -3, 2, -2, 1, -1}, s.Values())
}

func TestInvertAndBias(t *testing.T) {
	t.Parallel()

	s := audiotest.Ramp(10, 2, 1, 3)

	_, err := s.Invert()
	require.NoError(t, err)
	assert.Equal(t, []int32{-1, -2, -3}, s.Values())

	_, err = s.Bias(10)
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 8, 7}, s.Values())
}

func TestChannels(t *testing.T) {
	t.Parallel()

	t.Run("mono of opposite channels", func(t *testing.T) {
		t.Parallel()

		s := audiotest.Ramp(10, 2, 2, 3)

		_, err := s.Mono(0.5, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Channels())
		assert.Equal(t, []int32{0, 0, 0}, s.Values())
	})

	t.Run("keep left and right", func(t *testing.T) {
		t.Parallel()

		l := audiotest.Ramp(10, 2, 2, 3)
		_, err := l.KeepLeft()
		require.NoError(t, err)
		assert.Equal(t, []int32{1, 2, 3}, l.Values())

		r := audiotest.Ramp(10, 2, 2, 3)
		_, err = r.KeepRight()
		require.NoError(t, err)
		assert.Equal(t, []int32{-1, -2, -3}, r.Values())

		_, err = r.KeepRight()
		assert.ErrorIs(t, err, sample.ErrRange)
	})

	t.Run("stereo gains on stereo", func(t *testing.T) {
		t.Parallel()

		s := audiotest.Ramp(10, 2, 2, 2)

		_, err := s.Stereo(2, 0)
		require.NoError(t, err)
		assert.Equal(t, []int32{2, 0, 4, 0}, s.Values())
	})

	t.Run("mono to stereo", func(t *testing.T) {
		t.Parallel()

		s := audiotest.Constant(10, 3, 1, 2, 1000)

		_, err := s.Stereo(1, 0.25)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Channels())
		assert.Equal(t, []int32{1000, 250, 1000, 250}, s.Values())
	})
}

func TestStereoMix(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(10, 2, 1, 3, 100)
	voice := audiotest.Constant(10, 2, 1, 3, 40)

	_, err := s.StereoMix(voice, sample.Left, 0.5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{20, 100, 20, 100, 20, 100}, s.Values())

	_, err = s.StereoMix(voice, sample.Right, 1, 0.1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{20, 100, 20, 140, 20, 140, 0, 40}, s.Values())

	_, err = s.StereoMix(s.Copy(), sample.Left, 1, 0, 0)
	assert.ErrorIs(t, err, sample.ErrRange)

	_, err = s.StereoMix(voice, sample.Channel(7), 1, 0, 0)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestPan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		panning float64
		want    []int32
	}{
		{name: "left", panning: -1, want: []int32{1000, 0}},
		{name: "center", panning: 0, want: []int32{500, 500}},
		{name: "right", panning: 1, want: []int32{0, 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.Constant(10, 2, 1, 1, 1000)

			_, err := s.Pan(tt.panning)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Values())
		})
	}

	_, err := audiotest.Constant(10, 2, 1, 1, 1000).Pan(2)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestPanLFO(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(10, 2, 1, 3, 1000)

	lfo := sample.FromSeq(func(yield func(float64) bool) {
		for _, p := range []float64{-1, 0, 1} {
			if !yield(p) {
				return
			}
		}
	})
	defer lfo.Stop()

	_, err := s.PanLFO(lfo)
	require.NoError(t, err)
	assert.Equal(t, []int32{1000, 0, 500, 500, 0, 1000}, s.Values())

	short := sample.FromSeq(func(yield func(float64) bool) { yield(0) })
	defer short.Stop()

	_, err = s.PanLFO(short)
	require.ErrorIs(t, err, sample.ErrModulatorExhausted)
	assert.Equal(t, []int32{1000, 0, 500, 500, 0, 1000}, s.Values())
}

func TestModulateAmp(t *testing.T) {
	t.Parallel()

	s := audiotest.Constant(10, 2, 2, 4, 1000)

	_, err := s.ModulateAmp(sample.Cycle([]float64{0, 4}))
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 1000, 1000, 0, 0, 1000, 1000}, s.Values())

	wave, err := sample.FromValues([]int32{-200, 100}, 2, 10, 1)
	require.NoError(t, err)

	s = audiotest.Constant(10, 2, 1, 3, 1000)
	_, err = s.ModulateAmp(sample.CycleSample(wave))
	require.NoError(t, err)
	assert.Equal(t, []int32{-1000, 500, -1000}, s.Values())

	s = audiotest.Constant(10, 2, 1, 3, 1000)
	_, err = s.ModulateAmp(sample.OscillatorFunc(func() float64 { return 0.5 }))
	require.NoError(t, err)
	assert.Equal(t, []int32{500, 500, 500}, s.Values())
}

func TestResample(t *testing.T) {
	t.Parallel()

	s := audiotest.Sine(1000, 2, 2, 100, 50, 0.5)

	_, err := s.Resample(2000)
	require.NoError(t, err)
	assert.Equal(t, 2000, s.SampleRate())
	assert.Equal(t, 200, s.FrameCount())
	assert.InDelta(t, 0.1, s.Duration(), 1e-9)

	_, err = s.Resample(1)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestResampleQuality(t *testing.T) {
	t.Parallel()

	s := audiotest.Sine(8000, 2, 2, 8000, 440, 0.5)

	_, err := s.ResampleQuality(16000, sample.QualityMedium)
	require.NoError(t, err)
	assert.Equal(t, 16000, s.SampleRate())
	assert.Equal(t, 16000, s.FrameCount())
	assert.Equal(t, 2, s.Channels())
}

func TestSpeed(t *testing.T) {
	t.Parallel()

	s := audiotest.Ramp(1000, 2, 1, 100)

	_, err := s.Speed(2)
	require.NoError(t, err)
	assert.Equal(t, 50, s.FrameCount())
	assert.Equal(t, 1000, s.SampleRate())

	_, err = s.Speed(0)
	assert.ErrorIs(t, err, sample.ErrArgument)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	s := audiotest.Sine(22050, 3, 1, 2205, 440, 0.5)

	_, err := s.Normalize()
	require.NoError(t, err)
	assert.Equal(t, sample.NormRate, s.SampleRate())
	assert.Equal(t, sample.NormWidth, s.SampleWidth())
	assert.Equal(t, sample.NormChannels, s.Channels())
	assert.Equal(t, 4410, s.FrameCount())
}

func TestLevels(t *testing.T) {
	t.Parallel()

	full := audiotest.Constant(100, 2, 1, 10, 32767)
	l, r := full.LevelDBPeak()
	assert.InDelta(t, 0, l, 1e-9)
	assert.InDelta(t, 0, r, 1e-9)

	silent := audiotest.Silence(100, 2, 2, 10)
	l, r = silent.LevelDBRMS()
	assert.InDelta(t, -60, l, 1e-9)
	assert.InDelta(t, -60, r, 1e-9)

	half, err := audiotest.Constant(100, 2, 2, 10, 16383).Stereo(1, 0)
	require.NoError(t, err)
	l, r = half.LevelDBPeak()
	assert.InDelta(t, -6.02, l, 0.01)
	assert.InDelta(t, -60, r, 1e-9)
}

func TestStringAndSource(t *testing.T) {
	t.Parallel()

	s := audiotest.Silence(8000, 2, 1, 8000).SetSource("kick.wav").Lock()
	assert.Equal(t, "kick.wav", s.Source())
	assert.Equal(t, "Sample kick.wav: 8000 Hz, 16 bit, 1 ch, 1.000s locked", s.String())
}
