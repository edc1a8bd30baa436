// SPDX-License-Identifier: EPL-2.0

package meter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/samplebox/internal/audiotest"
	"github.com/ik5/samplebox/meter"
)

func TestNewRejectsLowest(t *testing.T) {
	t.Parallel()

	for _, lowest := range []float64{-61, 0, 3} {
		_, err := meter.New(false, lowest)
		assert.ErrorIs(t, err, meter.ErrLowest, "lowest %v", lowest)
	}

	m, err := meter.New(true, -60)
	require.NoError(t, err)
	assert.Equal(t, meter.Levels{PeakLeft: -60, PeakRight: -60}, m.Levels())
}

func TestSilenceIsFlooredAtLowest(t *testing.T) {
	t.Parallel()

	m, err := meter.New(false, -40)
	require.NoError(t, err)

	got := m.Process(audiotest.Silence(1000, 2, 2, 100))
	assert.Equal(t, meter.Levels{Left: -40, PeakLeft: -40, Right: -40, PeakRight: -40}, got)
}

func TestPeakHoldAndDecay(t *testing.T) {
	t.Parallel()

	m, err := meter.New(false, -60)
	require.NoError(t, err)

	loud := audiotest.Constant(1000, 2, 2, 100, 32767)
	silent := audiotest.Silence(1000, 2, 2, 100)

	got := m.Process(loud)
	assert.InDelta(t, 0, got.Left, 1e-9)
	assert.InDelta(t, 0, got.PeakLeft, 1e-9)

	// held for 0.4s, then 3 dB down per 0.1s fragment
	want := []float64{0, 0, 0, 0, -3, -6, -9, -12, -15, -18}
	for i, peak := range want {
		got = m.Process(silent)
		assert.InDelta(t, peak, got.PeakLeft, 1e-6, "fragment %d", i)
		assert.InDelta(t, peak, got.PeakRight, 1e-6, "fragment %d", i)
		assert.InDelta(t, -60, got.Left, 1e-9)
	}

	assert.InDelta(t, 1.1, m.Time(), 1e-9)
}

func TestNewPeakResetsHold(t *testing.T) {
	t.Parallel()

	m, err := meter.New(false, -60)
	require.NoError(t, err)

	half, err := audiotest.Constant(1000, 2, 2, 100, 16383).Stereo(1, 0)
	require.NoError(t, err)

	m.Process(audiotest.Constant(1000, 2, 2, 100, 32767))

	for range 6 {
		m.Process(audiotest.Silence(1000, 2, 2, 100))
	}

	got := m.Process(half)
	assert.InDelta(t, -6.02, got.Left, 0.01)
	assert.InDelta(t, -6.02, got.PeakLeft, 0.01, "level above the decayed peak takes over")
	assert.InDelta(t, -60, got.Right, 1e-9)
	assert.InDelta(t, -9, got.PeakRight, 1e-6)
}

func TestRMSMode(t *testing.T) {
	t.Parallel()

	m, err := meter.New(true, -60)
	require.NoError(t, err)

	got := m.Process(audiotest.Sine(8000, 2, 1, 800, 100, 1))
	assert.InDelta(t, -3.01, got.Left, 0.05)
	assert.Equal(t, got.Left, got.Right)

	m.Reset()
	assert.Zero(t, m.Time())
	assert.Equal(t, meter.Levels{PeakLeft: -60, PeakRight: -60}, m.Levels())
}
