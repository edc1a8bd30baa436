// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/samplebox/meter"
)

const barWidth = 40

// bar draws level as filled cells and marks the held peak with '|'. Both are
// in dB between lowest and 0.
func bar(level, peak, lowest float64) string {
	cell := func(db float64) int {
		n := int(math.Round(float64(barWidth) * (db - lowest) / -lowest))
		return max(0, min(barWidth, n))
	}

	cells := []byte(strings.Repeat(" ", barWidth))
	for i := range cell(level) {
		cells[i] = '#'
	}

	if p := cell(peak); p > 0 {
		cells[p-1] = '|'
	}

	return string(cells)
}

// meterLine is one console line with both channels, ending in a carriage
// return so the next line overwrites it.
func meterLine(l meter.Levels, lowest float64) string {
	return fmt.Sprintf("L [%s] %6.1f  R [%s] %6.1f\r",
		bar(l.Left, l.PeakLeft, lowest), l.Left,
		bar(l.Right, l.PeakRight, lowest), l.Right)
}
