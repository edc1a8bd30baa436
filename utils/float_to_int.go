// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 maps x in [-1,1] to the int16 range, clamping values outside it.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x == -1 {
		return math.MinInt16
	}

	return int16(x * math.MaxInt16)
}

// ClampInt saturates v to the signed range of a width-byte integer.
func ClampInt(v int64, width int) int32 {
	hi := int64(1)<<(8*width-1) - 1
	lo := -hi - 1

	switch {
	case v > hi:
		return int32(hi)
	case v < lo:
		return int32(lo)
	}

	return int32(v)
}

// RoundClamp rounds x to the nearest integer and saturates it like ClampInt.
func RoundClamp(x float64, width int) int32 {
	return TruncClamp(math.Round(x), width)
}

// TruncClamp truncates x toward zero and saturates it like ClampInt. NaN maps to 0.
func TruncClamp(x float64, width int) int32 {
	if math.IsNaN(x) {
		return 0
	}

	hi := float64(int64(1)<<(8*width-1) - 1)
	lo := -hi - 1

	switch {
	case x > hi:
		return int32(hi)
	case x < lo:
		return int32(lo)
	}

	return int32(x)
}

// FloatToPCM scales x in [-1,1] to a width-byte signed integer.
func FloatToPCM(x float64, width int) int32 {
	return RoundClamp(x*float64(int64(1)<<(8*width-1)-1), width)
}

// PCMToFloat scales a width-byte signed integer into [-1,1].
func PCMToFloat(v int32, width int) float64 {
	return float64(v) / float64(int64(1)<<(8*width-1))
}
